package tui

import (
	"context"
	"net/url"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchpage/models"
)

// countingHistory records every URL the store writes.
type countingHistory struct {
	replaced []string
}

func (h *countingHistory) Replace(u *url.URL) { h.replaced = append(h.replaced, u.String()) }

func newTestModel(t *testing.T, start string) (*Model, *countingHistory) {
	t.Helper()
	h := &countingHistory{}
	store, err := models.NewCriteriaStore(start, h)
	require.NoError(t, err)
	return NewModel(context.Background(), store, models.NewSearchAPI(0), 300*time.Millisecond), h
}

func typeRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestKeystrokeEchoesBeforeWrite(t *testing.T) {
	m, h := newTestModel(t, "/")
	typeRunes(m, "ab")

	assert.Equal(t, "ab", m.input.Value())
	assert.Empty(t, h.replaced)
	assert.Equal(t, "", m.store.Read().Title)
}

func TestBurstProducesSingleWrite(t *testing.T) {
	m, h := newTestModel(t, "/")
	typeRunes(m, "abc")
	require.Equal(t, uint64(3), m.debounceGen)

	m.Update(debounceMsg{gen: 1, title: "a"})
	m.Update(debounceMsg{gen: 2, title: "ab"})
	m.Update(debounceMsg{gen: 3, title: "abc"})

	require.Len(t, h.replaced, 1)
	assert.Equal(t, "/?title=abc", h.replaced[0])
}

func TestPausedTypingWritesTwice(t *testing.T) {
	m, h := newTestModel(t, "/")

	typeRunes(m, "a")
	m.Update(debounceMsg{gen: m.debounceGen, title: "a"})
	typeRunes(m, "b")
	m.Update(debounceMsg{gen: m.debounceGen, title: "ab"})

	assert.Equal(t, []string{"/?title=a", "/?title=ab"}, h.replaced)
}

func TestWriteKeepsFlags(t *testing.T) {
	m, _ := newTestModel(t, "/?is_public=true")
	typeRunes(m, "x")
	m.Update(debounceMsg{gen: m.debounceGen, title: "x"})

	assert.Equal(t, models.Criteria{Title: "x", IsPublic: true}, m.store.Read())
}

func TestStaleResultIgnored(t *testing.T) {
	m, _ := newTestModel(t, "/")

	typeRunes(m, "a")
	m.Update(debounceMsg{gen: m.debounceGen, title: "a"})
	first := m.fetches.Latest()

	typeRunes(m, "b")
	m.Update(debounceMsg{gen: m.debounceGen, title: "ab"})
	second := m.fetches.Latest()
	require.Greater(t, second, first)

	m.Update(resultMsg{gen: first, res: models.SearchResult{Message: models.SearchAckMessage, Title: "a"}})
	assert.Nil(t, m.result)

	m.Update(resultMsg{gen: second, res: models.SearchResult{Message: models.SearchAckMessage, Title: "ab"}})
	require.NotNil(t, m.result)
	assert.Equal(t, "ab", m.result.Title)
}

func TestClearingTitleDropsResult(t *testing.T) {
	m, _ := newTestModel(t, "/?title=abc")
	gen := m.fetches.Begin()
	m.Update(resultMsg{gen: gen, res: models.SearchResult{Message: models.SearchAckMessage, Title: "abc"}})
	require.NotNil(t, m.result)

	for range 3 {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m.Update(debounceMsg{gen: m.debounceGen, title: ""})

	assert.Nil(t, m.result)
	assert.Equal(t, "/", m.store.Location())
	assert.Contains(t, m.View(), "Enter a title to search.")
}

func TestFetchCommandDeliversResult(t *testing.T) {
	m, _ := newTestModel(t, "/")
	typeRunes(m, "go")
	cmd := m.applyDebounced(debounceMsg{gen: m.debounceGen, title: "go"})
	require.NotNil(t, cmd)

	msg := cmd()
	res, ok := msg.(resultMsg)
	require.True(t, ok)
	m.Update(res)

	require.NotNil(t, m.result)
	assert.Equal(t, models.SearchAckMessage, m.result.Message)
	assert.Contains(t, m.View(), "go")
}

// awaitDebounce runs cmd, expanding batches, and returns the first
// debounceMsg any of its commands produce along with how long it took.
func awaitDebounce(t *testing.T, cmd tea.Cmd) (debounceMsg, time.Duration) {
	t.Helper()
	require.NotNil(t, cmd)

	found := make(chan debounceMsg, 8)
	var run func(c tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			switch msg := c().(type) {
			case debounceMsg:
				found <- msg
			case tea.BatchMsg:
				for _, sub := range msg {
					run(sub)
				}
			}
		}()
	}

	start := time.Now()
	run(cmd)
	select {
	case msg := <-found:
		return msg, time.Since(start)
	case <-time.After(2 * time.Second):
		t.Fatal("no debounced write was scheduled")
	}
	return debounceMsg{}, 0
}

func TestScheduledWriteWaitsForQuietPeriod(t *testing.T) {
	h := &countingHistory{}
	store, err := models.NewCriteriaStore("/", h)
	require.NoError(t, err)
	m := NewModel(context.Background(), store, models.NewSearchAPI(0), 120*time.Millisecond)

	var first, last tea.Cmd
	for i, r := range "abc" {
		cmd := m.updateInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if i == 0 {
			first = cmd
		}
		last = cmd
	}

	msg, waited := awaitDebounce(t, last)
	assert.GreaterOrEqual(t, waited, 120*time.Millisecond, "write must wait for the configured quiet period")
	assert.Equal(t, uint64(3), msg.gen)
	assert.Equal(t, "abc", msg.title)

	stale, _ := awaitDebounce(t, first)
	assert.Equal(t, uint64(1), stale.gen)

	m.Update(stale)
	assert.Empty(t, h.replaced, "a superseded tick must not write")
	m.Update(msg)
	assert.Equal(t, []string{"/?title=abc"}, h.replaced)
}
