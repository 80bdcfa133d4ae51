// Package tui is the terminal rendition of the search page: a live title
// filter with a debounced URL write, a settings dialog for all criteria and
// the mock lookup result.
package tui

import (
	"context"

	"searchpage/config"
	"searchpage/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// Run starts the terminal UI on startURL and blocks until the user quits.
// The final page URL is returned so the caller can print it.
func Run(ctx context.Context, cfg config.Config, startURL string) (string, error) {
	store, err := models.NewCriteriaStore(startURL, nil)
	if err != nil {
		return "", serr.Wrap(err, "invalid start URL")
	}

	m := NewModel(ctx, store, models.NewSearchAPI(cfg.FetchDelay), cfg.Debounce)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return "", serr.Wrap(err, "terminal UI failed")
	}

	logger.Debug("Terminal UI closed", "url", store.Location())
	return store.Location(), nil
}
