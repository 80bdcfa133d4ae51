package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

//go:embed all:static
var staticFiles embed.FS

const staticPrefix = "/static/"

// faviconSVG is a magnifier glyph served inline at /favicon.ico.
const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500"><rect width="500" height="500" rx="40" fill="#2c3e50"/><circle cx="220" cy="220" r="110" fill="none" stroke="white" stroke-width="40"/><rect x="300" y="300" width="150" height="40" rx="20" transform="rotate(45 300 300)" fill="white"/></svg>`

// SetupStaticFiles serves the embedded stylesheet and the favicon.
// htmx itself is loaded from its CDN by the page head.
func SetupStaticFiles(s *rweb.Server) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(err, "failed to get static subdirectory")
		return
	}

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	s.Get("/static/*", func(c rweb.Context) error {
		name := strings.TrimPrefix(c.Request().Path(), staticPrefix)
		contentType, ok := staticTypes[path.Ext(name)]
		if !ok || strings.Contains(name, "..") {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		content, err := fs.ReadFile(staticFS, name)
		if err != nil {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		c.Response().SetHeader("Content-Type", contentType)
		c.Response().SetHeader("Cache-Control", "public, max-age=3600")
		return c.Bytes(content)
	})
}

// staticTypes lists the extensions the page ships.
var staticTypes = map[string]string{
	".css": "text/css; charset=utf-8",
	".js":  "application/javascript",
	".svg": "image/svg+xml",
}
