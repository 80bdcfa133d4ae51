package shared

import "github.com/rohanthewiz/element"

// Banner is the page header with links to both search page shapes.
type Banner struct {
	Title  string
	Active string
}

// navLinks lists the page shapes in banner order.
var navLinks = []struct{ Path, Label string }{
	{"/", "Search dialog"},
	{"/live", "Live filter"},
}

func (bn Banner) Render(b *element.Builder) any {
	b.HeaderClass("banner").R(
		b.H1("class", "banner-title").T(bn.Title),
		b.DivClass("banner-nav").R(
			element.ForEach(navLinks, func(link struct{ Path, Label string }) {
				class := "banner-link"
				if link.Path == bn.Active {
					class += " active"
				}
				b.A("href", link.Path, "class", class).T(link.Label)
			}),
		),
	)
	return nil
}
