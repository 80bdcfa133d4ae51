package landing

import (
	"searchpage/models"
	"searchpage/web/pages/comps"

	"github.com/rohanthewiz/element"
)

// ResultsSlot is the container for the mock search result. When the criteria
// carry something to search for, it loads /partials/results once rendered;
// hx-sync replaces any request still in flight for this slot.
type ResultsSlot struct {
	Criteria models.Criteria
}

func (r ResultsSlot) Render(b *element.Builder) any {
	sc := models.ConditionsFrom(r.Criteria)
	if !sc.IsSearching() {
		b.Main("class", "results", "id", "results").R(
			b.DivClass("empty-state").R(
				b.PClass("empty-description").T("Enter a title to search."),
			),
		)
		return nil
	}

	b.Main("class", "results", "id", "results",
		"hx-get", comps.Esc(models.CriteriaURL("/partials/results", r.Criteria)),
		"hx-trigger", "load",
		"hx-sync", "this:replace").R(
		b.DivClass("empty-state").R(
			b.Div("class", "loading-spinner").R(),
			b.P().T("Searching..."),
		),
	)
	return nil
}

// ResultPanel renders one acknowledged search result.
type ResultPanel struct {
	Result models.SearchResult
}

func (p ResultPanel) Render(b *element.Builder) any {
	b.Div("class", "result-panel", "id", "result-panel").R(
		b.H3("class", "result-message").T(comps.Esc(p.Result.Message)),
		b.Wrap(func() {
			if p.Result.Title != "" {
				b.PClass("result-title").T("Title: " + comps.Esc(p.Result.Title))
			}
		}),
	)
	return nil
}
