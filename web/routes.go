package web

import (
	"searchpage/web/api"

	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, p *Pages) {
	// Page routes - HTML responses
	s.Get("/", p.CriteriaPage) // Criteria page with the settings dialog
	s.Get("/live", p.LivePage) // Live filter page

	// Settings dialog - HTMX partials
	s.Get("/dialog/open", p.OpenDialog)
	s.Post("/dialog/draft", p.UpdateDraft)
	s.Post("/dialog/cancel", p.CancelDialog)
	s.Post("/dialog/submit", p.SubmitDialog)

	// Result slots - HTMX partials
	s.Get("/partials/results", p.Results)
	s.Get("/partials/live-results", p.LiveResults)

	// API v1 routes - JSON responses
	search := api.Search{API: p.API}
	s.Get("/api/v1/search", search.Get)
	s.Get("/api/v1/criteria", search.Criteria)

	// Health check endpoint
	s.Get("/health", HealthCheck)
}
