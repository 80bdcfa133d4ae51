package models

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// SearchConditions is the request derived from the criteria. Only meaningful
// fields are set; a zero value means there is nothing to search for.
type SearchConditions struct {
	Title string `json:"title,omitempty" msgpack:"title,omitempty"`
}

// ConditionsFrom keeps the title only when it is non-empty after trimming.
func ConditionsFrom(c Criteria) SearchConditions {
	var sc SearchConditions
	if title := strings.TrimSpace(c.Title); title != "" {
		sc.Title = title
	}
	return sc
}

// IsSearching reports whether any condition is set.
func (sc SearchConditions) IsSearching() bool {
	return sc.Title != ""
}

// SearchResult is the acknowledgement returned by the mock search API.
type SearchResult struct {
	Message string `json:"message" msgpack:"message"`
	Title   string `json:"title,omitempty" msgpack:"title,omitempty"`
}

// SearchAckMessage is the fixed acknowledgement text of the mock API.
const SearchAckMessage = "search results retrieved"

// DefaultFetchDelay is the flat latency of the mock API.
const DefaultFetchDelay = time.Second

// DefaultDebounce is the quiet period after the last keystroke before the live
// filter writes its title to the URL.
const DefaultDebounce = 300 * time.Millisecond

// SearchAPI is an in-process stand-in for a remote search endpoint.
// It never fails other than by context cancellation.
type SearchAPI struct {
	Delay time.Duration
}

// NewSearchAPI returns a mock API that answers after delay.
func NewSearchAPI(delay time.Duration) *SearchAPI {
	return &SearchAPI{Delay: delay}
}

// Search waits for the configured delay and echoes the conditions back.
func (api *SearchAPI) Search(ctx context.Context, sc SearchConditions) (SearchResult, error) {
	if api.Delay > 0 {
		timer := time.NewTimer(api.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return SearchResult{}, serr.Wrap(ctx.Err(), "search cancelled")
		case <-timer.C:
		}
	}
	logger.Debug("Mock search answered", "title", sc.Title)
	return SearchResult{Message: SearchAckMessage, Title: sc.Title}, nil
}

// ============================================================================
// Fetch Tracker
//
// Exactly one lookup is live per criteria change. Each new lookup takes the
// next generation; results that arrive for an older generation are dropped.
// The underlying operation is not cancelled, only ignored.
// ============================================================================

// FetchTracker guards the displayed result against superseded lookups.
type FetchTracker struct {
	mu         sync.Mutex
	generation uint64
	result     *SearchResult
	resultGen  uint64
}

// Begin starts a new lookup and returns its generation.
func (t *FetchTracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	return t.generation
}

// Clear supersedes any in-flight lookup and drops the shown result.
// Used when the criteria no longer warrant a lookup.
func (t *FetchTracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	t.result = nil
	t.resultGen = 0
}

// Commit stores res if gen is still the latest generation and reports
// whether it was kept.
func (t *FetchTracker) Commit(gen uint64, res SearchResult) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		logger.Debug("Discarding stale search result", "generation", gen, "latest", t.generation)
		return false
	}
	t.result = &res
	t.resultGen = gen
	return true
}

// Result returns the last committed result, if any.
func (t *FetchTracker) Result() (SearchResult, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.result == nil {
		return SearchResult{}, false
	}
	return *t.result, true
}

// Latest returns the most recently issued generation.
func (t *FetchTracker) Latest() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}

// Fetch runs a lookup for c through api under a new generation and commits the
// result if it is still current. No lookup is issued when c has nothing to
// search for; the tracker is cleared instead.
func (t *FetchTracker) Fetch(ctx context.Context, api *SearchAPI, c Criteria) (SearchResult, bool, error) {
	sc := ConditionsFrom(c)
	if !sc.IsSearching() {
		t.Clear()
		return SearchResult{}, false, nil
	}
	gen := t.Begin()
	res, err := api.Search(ctx, sc)
	if err != nil {
		return SearchResult{}, false, err
	}
	return res, t.Commit(gen, res), nil
}
