package models

import (
	"net/url"
	"sync"

	"github.com/rohanthewiz/serr"
)

// ============================================================================
// Criteria Store
//
// The page URL is the single source of truth for the current criteria.
// Reads decode the query string, writes replace it in place. Zero values are
// never written so the URL stays minimal.
// ============================================================================

// DecodeCriteria reads criteria from query values. Booleans are true only for
// the literal "true"; anything else, including absence, decodes to false.
func DecodeCriteria(values url.Values) Criteria {
	return Criteria{
		Title:     values.Get(ParamTitle),
		IsPublic:  values.Get(ParamIsPublic) == "true",
		IsPrivate: values.Get(ParamIsPrivate) == "true",
	}.Normalize()
}

// EncodeCriteria converts criteria to query values, omitting zero-valued fields.
func EncodeCriteria(c Criteria) url.Values {
	c = c.Normalize()
	values := url.Values{}
	if c.Title != "" {
		values.Set(ParamTitle, c.Title)
	}
	if c.IsPublic {
		values.Set(ParamIsPublic, "true")
	}
	if c.IsPrivate {
		values.Set(ParamIsPrivate, "true")
	}
	return values
}

// CriteriaURL returns path with the canonical query string for c appended.
func CriteriaURL(path string, c Criteria) string {
	if query := EncodeCriteria(c).Encode(); query != "" {
		return path + "?" + query
	}
	return path
}

// History records navigation of the location a CriteriaStore owns. Criteria
// writes only ever replace the current entry, so there is no push.
type History interface {
	Replace(u *url.URL)
}

// MemoryHistory is an in-process History, used by the terminal client and tests.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
}

// NewMemoryHistory starts a history whose only entry is initial.
func NewMemoryHistory(initial *url.URL) *MemoryHistory {
	return &MemoryHistory{entries: []string{initial.String()}}
}

func (h *MemoryHistory) Replace(u *url.URL) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		h.entries = append(h.entries, u.String())
		return
	}
	h.entries[len(h.entries)-1] = u.String()
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

// CriteriaStore is a URL-backed store for Criteria.
type CriteriaStore struct {
	mu       sync.RWMutex
	location *url.URL
	history  History
	onChange []func(Criteria)
}

// NewCriteriaStore parses rawURL as the initial location.
func NewCriteriaStore(rawURL string, history History) (*CriteriaStore, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, serr.Wrap(err, "invalid location url")
	}
	if history == nil {
		history = NewMemoryHistory(u)
	}
	return &CriteriaStore{location: u, history: history}, nil
}

// Read decodes the current criteria from the location.
func (s *CriteriaStore) Read() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return DecodeCriteria(s.location.Query())
}

// Location returns the current location as a string.
func (s *CriteriaStore) Location() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location.String()
}

// Write replaces the query string with the encoding of c. The history entry is
// replaced rather than pushed. Change listeners run only when the decoded
// criteria actually changed.
func (s *CriteriaStore) Write(c Criteria) {
	s.mu.Lock()
	prev := DecodeCriteria(s.location.Query())
	next := *s.location
	next.RawQuery = EncodeCriteria(c).Encode()
	next.ForceQuery = false
	s.location = &next
	s.history.Replace(&next)
	listeners := append([]func(Criteria){}, s.onChange...)
	s.mu.Unlock()

	current := DecodeCriteria(next.Query())
	if prev.Equal(current) {
		return
	}
	for _, fn := range listeners {
		fn(current)
	}
}

// OnChange registers fn to be called after each write that changes the criteria.
func (s *CriteriaStore) OnChange(fn func(Criteria)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}
