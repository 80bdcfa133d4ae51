package landing

import (
	"searchpage/models"
	"searchpage/web/pages/comps"

	"github.com/rohanthewiz/element"
)

// Toolbar holds the dialog trigger and a summary of the effective criteria.
type Toolbar struct {
	Criteria models.Criteria
}

func (t Toolbar) Render(b *element.Builder) any {
	b.HeaderClass("toolbar").R(
		b.DivClass("toolbar-left").R(
			b.Button("class", "btn btn-primary", "id", "btn-open-dialog",
				"hx-get", "/dialog/open",
				"hx-target", "#dialog-slot",
				"hx-swap", "outerHTML").T("Open search dialog"),
		),
		b.Div("class", "active-filters", "id", "active-filters").R(
			b.Wrap(func() {
				if t.Criteria.IsEmpty() {
					b.SpanClass("text-muted").T("No criteria set")
					return
				}
				if t.Criteria.Title != "" {
					b.SpanClass("filter-chip").T("Title: " + comps.Esc(t.Criteria.Title))
				}
				if t.Criteria.IsPublic {
					b.SpanClass("filter-chip").T("Public")
				}
				if t.Criteria.IsPrivate {
					b.SpanClass("filter-chip").T("Private")
				}
			}),
		),
	)
	return nil
}
