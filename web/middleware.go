package web

import (
	"net/http"
	"strings"
	"time"

	"searchpage/web/api"
	"searchpage/web/sessions"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// corsAllowHeaders are the request headers the page and API clients send.
var corsAllowHeaders = strings.Join([]string{
	"Content-Type", api.BodyEncodingHeader,
	hxRequest, hxCurrentURL, "HX-Target", "HX-Trigger",
}, ", ")

// CorsMiddleware lets other origins read the search API. Preflight requests
// end here.
func CorsMiddleware(c rweb.Context) error {
	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers", corsAllowHeaders)
	c.Response().SetHeader("Access-Control-Expose-Headers", hxReplaceURL+", "+api.BodyEncodingHeader)

	if c.Request().Method() == http.MethodOptions {
		c.SetStatus(http.StatusOK)
		return nil
	}
	return c.Next()
}

// SessionMiddleware attaches a session id to every request. The id keys the
// dialog draft and fetch generation kept in web/sessions.
func SessionMiddleware(c rweb.Context) error {
	// Get session cookie from header
	cookieValue, err := c.GetCookie("session_id")

	if err != nil || !sessions.ValidID(cookieValue) {
		// No usable session cookie - issue a new session id
		sessionID := sessions.NewID()
		err = c.SetCookie("session_id", sessionID)
		if err != nil {
			logger.LogErr(err, "failed to set session cookie")
		}
		c.Set("session_id", sessionID)
	} else {
		c.Set("session_id", cookieValue)
	}

	return c.Next()
}

// contentSecurityPolicy admits htmx from unpkg and the inline indicator
// styles htmx injects.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' https://unpkg.com",
	"style-src 'self' 'unsafe-inline'",
	"img-src 'self' data:",
	"connect-src 'self'",
}, "; ")

// SecurityHeadersMiddleware sets the CSP and the usual hardening headers.
func SecurityHeadersMiddleware(c rweb.Context) error {
	headers := c.Response()
	headers.SetHeader("X-Content-Type-Options", "nosniff")
	headers.SetHeader("X-Frame-Options", "DENY")
	headers.SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")
	headers.SetHeader("Content-Security-Policy", contentSecurityPolicy)
	return c.Next()
}

// LoggingMiddleware logs each request with the session it belongs to and,
// for HTMX partials, the page URL the browser was showing. Runs after
// SessionMiddleware.
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()
	sessionID, _ := c.Get("session_id").(string)
	fields := requestLogFields(c.Request().Method(), c.Request().Path(), sessionID, api.Header(c, hxCurrentURL))

	logger.Debug("Request started", fields...)
	err := c.Next()
	logger.Debug("Request completed", append(fields, "duration", time.Since(start), "error", err)...)

	return err
}

// requestLogFields builds the key/value pairs shared by the request log lines.
// Session ids are shortened to their first segment.
func requestLogFields(method, path, sessionID, currentURL string) []any {
	if i := strings.IndexByte(sessionID, '-'); i > 0 {
		sessionID = sessionID[:i]
	}
	fields := []any{"method", method, "path", path, "session", sessionID}
	if currentURL != "" {
		fields = append(fields, "page", currentURL)
	}
	return fields
}
