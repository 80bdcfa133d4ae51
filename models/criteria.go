package models

import (
	"strings"

	"github.com/rohanthewiz/serr"
)

// Criteria is the canonical search condition carried in the page URL.
// A zero Criteria is the "nothing selected" state.
type Criteria struct {
	Title     string `json:"title" msgpack:"title"`
	IsPublic  bool   `json:"is_public" msgpack:"is_public"`
	IsPrivate bool   `json:"is_private" msgpack:"is_private"`
}

// Field names as they appear in the URL query string
const (
	ParamTitle     = "title"
	ParamIsPublic  = "is_public"
	ParamIsPrivate = "is_private"
)

// maxTitleLen bounds the title accepted from a form or URL.
const maxTitleLen = 200

// Normalize returns a copy with the title whitespace-trimmed.
func (c Criteria) Normalize() Criteria {
	c.Title = strings.TrimSpace(c.Title)
	return c
}

// Equal compares field by field after normalization.
func (c Criteria) Equal(other Criteria) bool {
	return len(c.ChangedFields(other)) == 0
}

// ChangedFields lists the URL parameter names whose values differ between c and other.
func (c Criteria) ChangedFields(other Criteria) (fields []string) {
	a, b := c.Normalize(), other.Normalize()
	if a.Title != b.Title {
		fields = append(fields, ParamTitle)
	}
	if a.IsPublic != b.IsPublic {
		fields = append(fields, ParamIsPublic)
	}
	if a.IsPrivate != b.IsPrivate {
		fields = append(fields, ParamIsPrivate)
	}
	return
}

// IsEmpty reports whether no criteria field is set.
func (c Criteria) IsEmpty() bool {
	return c.Normalize() == Criteria{}
}

// Validate checks the criteria shape. Typed fields make the booleans always valid,
// so only the title is inspected.
func (c Criteria) Validate() error {
	title := c.Normalize().Title
	if len([]rune(title)) > maxTitleLen {
		return serr.New("title exceeds 200 characters")
	}
	if strings.ContainsAny(title, "\x00\r\n") {
		return serr.New("title contains control characters")
	}
	return nil
}
