package comps

import "html"

// Esc escapes user-supplied text before it goes into markup.
// The builder writes text and attribute values verbatim.
func Esc(s string) string {
	return html.EscapeString(s)
}

// Attrs collects attribute pairs, adding flag attributes like "disabled" only when set.
func Attrs(pairs []string, flags map[string]bool) []string {
	out := append([]string(nil), pairs...)
	for _, name := range []string{"checked", "disabled", "autofocus"} {
		if flags[name] {
			out = append(out, name, name)
		}
	}
	return out
}
