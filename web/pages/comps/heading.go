package comps

import "github.com/rohanthewiz/element"

// Heading is a section heading with an optional hint line below it.
type Heading struct {
	Title string
	Hint  string
}

func (h Heading) Render(b *element.Builder) (x any) {
	b.DivClass("section-heading").R(
		b.H2().T(Esc(h.Title)),
		b.Wrap(func() {
			if h.Hint != "" {
				b.PClass("text-muted").T(Esc(h.Hint))
			}
		}),
	)
	return
}
