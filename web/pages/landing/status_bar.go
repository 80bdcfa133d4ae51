package landing

import (
	"searchpage/models"
	"searchpage/web/pages/comps"

	"github.com/rohanthewiz/element"
)

// StatusBar shows the canonical URL for the effective criteria. With OOB set
// it is swapped out-of-band by HTMX alongside another partial.
type StatusBar struct {
	Path     string
	Criteria models.Criteria
	OOB      bool
}

func (s StatusBar) Render(b *element.Builder) any {
	attrs := []string{"class", "status-bar", "id", "status-bar"}
	if s.OOB {
		attrs = append(attrs, "hx-swap-oob", "true")
	}
	b.Footer(attrs...).R(
		b.Div("class", "status-left").R(
			b.SpanClass("status-label").T("URL: "),
			b.Span("id", "criteria-url").T(comps.Esc(models.CriteriaURL(s.Path, s.Criteria))),
		),
	)
	return nil
}
