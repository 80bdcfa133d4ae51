// Package shared contains the layout pieces used by every page: the document
// head, the banner with page navigation, and the footer.
package shared

import "github.com/rohanthewiz/element"

// htmxSrc pins the HTMX build the pages are written against.
const htmxSrc = "https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js"

// Page carries the data shared by all pages. Embed it in a page struct to get
// Head, Banner and Footer.
//
// Example usage:
//
//	type LivePage struct {
//	    shared.Page
//	    Criteria models.Criteria
//	}
type Page struct {
	Title string
	// Active is the path of the current page, highlighted in the banner
	Active string
}

// Head renders the <head> element.
func (p Page) Head(b *element.Builder) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T(p.Title),
		b.Link("rel", "stylesheet", "href", "/static/css/app.css?v=1"),
		b.Script("src", htmxSrc).R(),
	)
}

func (p Page) Banner() Banner {
	return Banner{Title: p.Title, Active: p.Active}
}

func (p Page) Footer() Footer {
	return Footer{}
}
