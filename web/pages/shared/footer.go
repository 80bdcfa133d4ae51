package shared

import "github.com/rohanthewiz/element"

// Footer is stateless.
type Footer struct{}

func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "page-footer").R(
		b.PClass("text-muted").T("Search criteria live in the address bar. Share the URL to share the search."),
	)
	return nil
}
