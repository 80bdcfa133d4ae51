package web

import (
	"searchpage/config"
	"searchpage/models"
	"searchpage/web/sessions"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewServer creates and configures the RWeb server
func NewServer(cfg config.Config) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: cfg.LogLevel == "debug",
	})

	// Apply middleware
	s.Use(rweb.RequestInfo)          // Logs request info
	s.Use(CorsMiddleware)            // Custom CORS middleware
	s.Use(SessionMiddleware)         // Session management
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(LoggingMiddleware)         // Request logging

	p := &Pages{
		Sessions: sessions.NewRegistry(sessions.DefaultIdleTimeout),
		API:      models.NewSearchAPI(cfg.FetchDelay),
		Debounce: cfg.Debounce,
	}
	setupRoutes(s, p)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, address string) error {
	logger.Info("Search page server starting", "address", address)
	return s.Run()
}
