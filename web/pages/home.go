// Package pages holds the page documents that are not part of the criteria page.
// This file defines the live filter page, the second page shape: a plain
// text input bound to the title criterion with a trailing debounce.
package pages

import (
	"searchpage/models"
	"searchpage/web/pages/comps"
	"searchpage/web/pages/landing"
	"searchpage/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// LivePage is the live filter document.
type LivePage struct {
	shared.Page
	Criteria models.Criteria
	Debounce string
}

// NewLivePage builds the live filter page. Only the title of c is used.
func NewLivePage(c models.Criteria, debounce string) LivePage {
	return LivePage{
		Page:     shared.Page{Title: "Live filter", Active: "/live"},
		Criteria: models.Criteria{Title: c.Title},
		Debounce: debounce,
	}
}

func (lp LivePage) Render() (out string) {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		lp.Head(b),
		b.Body().R(
			element.RenderComponents(b,
				lp.Banner(),
				comps.Heading{Title: "Filter by title", Hint: "Results update after you stop typing."},
				landing.SearchBar{Title: lp.Criteria.Title, Debounce: lp.Debounce},
				landing.ResultsSlot{Criteria: lp.Criteria},
				landing.StatusBar{Path: "/live", Criteria: lp.Criteria},
				lp.Footer(),
			),
		),
	)

	return b.String()
}
