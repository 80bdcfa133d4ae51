package models

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionsFrom(t *testing.T) {
	assert.Equal(t, SearchConditions{}, ConditionsFrom(Criteria{Title: "   ", IsPublic: true}))
	assert.False(t, ConditionsFrom(Criteria{}).IsSearching())

	sc := ConditionsFrom(Criteria{Title: " abc "})
	assert.Equal(t, "abc", sc.Title)
	assert.True(t, sc.IsSearching())
}

func TestSearchAPIAcknowledges(t *testing.T) {
	api := NewSearchAPI(0)
	res, err := api.Search(context.Background(), SearchConditions{Title: "abc"})
	require.NoError(t, err)
	assert.Equal(t, SearchResult{Message: SearchAckMessage, Title: "abc"}, res)
}

func TestSearchAPIHonorsCancellation(t *testing.T) {
	api := NewSearchAPI(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.Search(ctx, SearchConditions{Title: "abc"})
	assert.Error(t, err)
}

func TestFetchTrackerDropsSuperseded(t *testing.T) {
	var tr FetchTracker
	first := tr.Begin()
	second := tr.Begin()

	// The second lookup resolves first, then the stale first one arrives.
	assert.True(t, tr.Commit(second, SearchResult{Message: SearchAckMessage, Title: "second"}))
	assert.False(t, tr.Commit(first, SearchResult{Message: SearchAckMessage, Title: "first"}))

	res, ok := tr.Result()
	require.True(t, ok)
	assert.Equal(t, "second", res.Title)
}

func TestFetchTrackerClear(t *testing.T) {
	var tr FetchTracker
	gen := tr.Begin()
	tr.Clear()

	assert.False(t, tr.Commit(gen, SearchResult{Title: "late"}))
	_, ok := tr.Result()
	assert.False(t, ok)
}

func TestFetchTrackerOnlyLatestShown(t *testing.T) {
	var tr FetchTracker
	slow := NewSearchAPI(80 * time.Millisecond)
	fast := NewSearchAPI(5 * time.Millisecond)

	var wg sync.WaitGroup
	var firstKept, secondKept bool
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, firstKept, _ = tr.Fetch(context.Background(), slow, Criteria{Title: "first"})
	}()
	// Let the first lookup take its generation before the second one starts.
	time.Sleep(20 * time.Millisecond)
	go func() {
		defer wg.Done()
		_, secondKept, _ = tr.Fetch(context.Background(), fast, Criteria{Title: "second"})
	}()
	wg.Wait()

	assert.False(t, firstKept)
	assert.True(t, secondKept)
	res, ok := tr.Result()
	require.True(t, ok)
	assert.Equal(t, "second", res.Title)
}

func TestFetchTrackerSkipsEmptyCriteria(t *testing.T) {
	var tr FetchTracker
	_, kept, err := tr.Fetch(context.Background(), NewSearchAPI(0), Criteria{IsPublic: true})
	require.NoError(t, err)
	assert.False(t, kept)
	_, ok := tr.Result()
	assert.False(t, ok)
}
