package landing

import (
	"searchpage/models"
	"searchpage/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Page is the criteria page: toolbar with the dialog trigger, the result
// slot, the status bar and the dialog slot.
type Page struct {
	shared.Page
	Criteria models.Criteria
	Dialog   DialogView
}

// NewPage builds the page for the given effective criteria and dialog state.
func NewPage(c models.Criteria, dialog DialogView) Page {
	return Page{
		Page:     shared.Page{Title: "Search", Active: "/"},
		Criteria: c,
		Dialog:   dialog,
	}
}

// Render generates the complete HTML document.
func (p Page) Render() string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		p.Head(b),
		b.Body().R(
			element.RenderComponents(b, p.Banner()),
			b.Div("class", "app-container", "id", "page-body").R(
				element.RenderComponents(b, Body{Criteria: p.Criteria, Dialog: p.Dialog}),
			),
			element.RenderComponents(b, p.Footer()),
		),
	)

	return b.String()
}

// Body is the swappable inner part of the page. A confirmed submit re-renders
// it for the new criteria.
type Body struct {
	Criteria models.Criteria
	Dialog   DialogView
}

func (bd Body) Render(b *element.Builder) any {
	element.RenderComponents(b,
		Toolbar{Criteria: bd.Criteria},
		ResultsSlot{Criteria: bd.Criteria},
		StatusBar{Path: "/", Criteria: bd.Criteria},
		SettingsDialog{View: bd.Dialog},
	)
	return nil
}

// RenderFragment renders a single component to a string, for HTMX partials.
func RenderFragment(c element.Component) string {
	b := element.NewBuilder()
	element.RenderComponents(b, c)
	return b.String()
}
