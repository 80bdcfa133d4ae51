package landing

import (
	"searchpage/models"
	"searchpage/web/pages/comps"

	"github.com/rohanthewiz/element"
)

// SearchBar is the live filter input. The browser echoes keystrokes at once;
// HTMX waits for 300ms of quiet before asking the server, and a newer request
// replaces one still in flight. The server answers with HX-Replace-Url so the
// address bar follows without adding history entries.
type SearchBar struct {
	Title    string
	Debounce string // HTMX delay, e.g. "300ms"
}

func (s SearchBar) Render(b *element.Builder) (x any) {
	debounce := s.Debounce
	if debounce == "" {
		debounce = "300ms"
	}
	b.DivClass("search-bar", "id", "search-bar").R(
		b.DivClass("search-bar-input-wrapper").R(
			b.SpanClass("search-bar-icon").T("🔍"),
			b.Input("type", "text", "class", "search-bar-input", "id", "search-input",
				"name", models.ParamTitle,
				"value", comps.Esc(s.Title),
				"placeholder", "Enter a title",
				"autocomplete", "off",
				"hx-get", "/partials/live-results",
				"hx-trigger", "input changed delay:"+debounce,
				"hx-target", "#results",
				"hx-swap", "outerHTML",
				"hx-sync", "this:replace"),
		),
	)
	return
}
