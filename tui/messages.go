package tui

import "searchpage/models"

// debounceMsg fires when the quiet period after a keystroke ends. Only the
// message carrying the latest generation writes to the store.
type debounceMsg struct {
	gen   uint64
	title string
}

// resultMsg carries a finished mock lookup tagged with its fetch generation.
type resultMsg struct {
	gen uint64
	res models.SearchResult
	err error
}
