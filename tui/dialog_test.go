package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchpage/models"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run feeds msg to the model. For enter and esc the dialog answers with a
// command whose message is fed back as well; other commands are cursor blinks
// and are dropped.
func run(m *Model, msg tea.KeyMsg) {
	_, cmd := m.Update(msg)
	if cmd == nil || (msg.Type != tea.KeyEnter && msg.Type != tea.KeyEsc) {
		return
	}
	switch out := cmd().(type) {
	case dialogSubmitMsg, dialogCancelMsg:
		m.Update(out)
	}
}

func TestDialogSubmitWritesAllCriteria(t *testing.T) {
	m, h := newTestModel(t, "/")
	run(m, key("ctrl+o"))
	require.NotNil(t, m.dialog)

	run(m, key("go"))
	run(m, key("tab"))
	run(m, key(" "))
	assert.Empty(t, h.replaced, "draft edits stay off the store")

	run(m, key("enter"))
	assert.Nil(t, m.dialog)
	assert.Equal(t, models.Criteria{Title: "go", IsPublic: true}, m.store.Read())
	assert.Equal(t, "go", m.input.Value())
	require.Len(t, h.replaced, 1)
	assert.Equal(t, "/?is_public=true&title=go", h.replaced[0])
}

func TestDialogSubmitRefusedWhenUnchanged(t *testing.T) {
	m, h := newTestModel(t, "/?title=go")
	run(m, key("ctrl+o"))
	run(m, key("enter"))

	assert.NotNil(t, m.dialog, "dialog stays open")
	assert.Empty(t, h.replaced)
}

func TestDialogRevertedEditCannotSubmit(t *testing.T) {
	m, h := newTestModel(t, "/")
	run(m, key("ctrl+o"))
	run(m, key("tab"))
	run(m, key(" "))
	run(m, key(" "))
	run(m, key("enter"))

	assert.NotNil(t, m.dialog)
	assert.Empty(t, h.replaced)
}

func TestDialogCancelDiscardsDraft(t *testing.T) {
	m, h := newTestModel(t, "/?title=a")
	run(m, key("ctrl+o"))
	run(m, key("zz"))
	run(m, key("esc"))

	assert.Nil(t, m.dialog)
	assert.Empty(t, h.replaced)
	assert.Equal(t, "a", m.store.Read().Title)

	run(m, key("ctrl+o"))
	assert.Equal(t, "a", m.dialog.form.Draft().Title, "reopen starts from the store")
}

func TestDialogViewShowsDisabledSearch(t *testing.T) {
	m, _ := newTestModel(t, "/")
	run(m, key("ctrl+o"))
	view := m.View()
	assert.Contains(t, view, "Search criteria")
	assert.Contains(t, view, "[ ] Public")
}
