package api

import (
	"strings"

	"github.com/rohanthewiz/rweb"
)

// Header returns the value of the named request header. Names are matched
// case-insensitively: Go clients send "Hx-Current-Url" and HTTP/2 proxies
// lowercase everything, while rweb's own lookup is exact.
func Header(ctx rweb.Context, name string) string {
	for _, h := range ctx.Request().Headers() {
		if strings.EqualFold(h.Key, name) {
			return h.Value
		}
	}
	return ""
}
