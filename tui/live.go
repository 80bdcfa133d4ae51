package tui

import (
	"context"
	"strings"
	"time"

	"searchpage/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
)

// Model is the terminal search page. The live filter input is bound to the
// title criterion of a URL-backed store; ctrl+o opens the settings dialog for
// all three criteria.
//
// Keystrokes echo in the input at once. Store writes wait for the debounce
// period after the last keystroke; each keystroke bumps debounceGen so only
// the tick of the final keystroke in a burst is applied.
type Model struct {
	ctx      context.Context
	store    *models.CriteriaStore
	api      *models.SearchAPI
	debounce time.Duration

	input       textinput.Model
	debounceGen uint64
	fetches     *models.FetchTracker
	result      *models.SearchResult
	errMsg      string

	dialog *dialogModel

	quitting bool
}

// NewModel creates the terminal model over store.
func NewModel(ctx context.Context, store *models.CriteriaStore, api *models.SearchAPI, debounce time.Duration) *Model {
	input := textinput.New()
	input.Placeholder = "Enter a title"
	input.CharLimit = 200
	input.Width = 50
	input.Prompt = "Title: "
	input.SetValue(store.Read().Title)
	input.Focus()

	if debounce <= 0 {
		debounce = models.DefaultDebounce
	}

	return &Model{
		ctx:      ctx,
		store:    store,
		api:      api,
		debounce: debounce,
		input:    input,
		fetches:  &models.FetchTracker{},
	}
}

// Init implements [tea.Model]. Starts a lookup for the criteria the store
// was opened with.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startFetch(m.store.Read()))
}

// Update implements [tea.Model].
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debounceMsg:
		return m, m.applyDebounced(msg)

	case resultMsg:
		m.applyResult(msg)
		return m, nil

	case dialogSubmitMsg:
		m.dialog = nil
		m.input.SetValue(msg.criteria.Title)
		m.input.Focus()
		// A pending keystroke write would undo the submitted title.
		m.debounceGen++
		return m, m.writeCriteria(msg.criteria)

	case dialogCancelMsg:
		m.dialog = nil
		m.input.Focus()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.dialog != nil {
			return m, m.dialog.Update(msg, m.store.Read())
		}
		switch msg.String() {
		case "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+o":
			m.input.Blur()
			m.dialog = newDialogModel(m.store.Read())
			return m, m.dialog.Focus()
		}
		return m, m.updateInput(msg)
	}

	if m.dialog != nil {
		return m, m.dialog.Update(msg, m.store.Read())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateInput forwards a key to the input and schedules a debounced write
// when the value changed.
func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.scheduleWrite(m.input.Value()))
}

// scheduleWrite supersedes any pending write and arms a new quiet period.
func (m *Model) scheduleWrite(title string) tea.Cmd {
	m.debounceGen++
	gen := m.debounceGen
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen, title: title}
	})
}

func (m *Model) applyDebounced(msg debounceMsg) tea.Cmd {
	if msg.gen != m.debounceGen {
		return nil
	}
	c := m.store.Read()
	c.Title = msg.title
	return m.writeCriteria(c)
}

// writeCriteria replaces the store criteria and starts a lookup when they changed.
func (m *Model) writeCriteria(c models.Criteria) tea.Cmd {
	before := m.store.Read()
	m.store.Write(c)
	after := m.store.Read()
	if before.Equal(after) {
		return nil
	}
	logger.Debug("Criteria written", "url", m.store.Location())
	return m.startFetch(after)
}

// startFetch begins a lookup for c under a new generation. Criteria without
// anything to search for clear the result instead.
func (m *Model) startFetch(c models.Criteria) tea.Cmd {
	sc := models.ConditionsFrom(c)
	if !sc.IsSearching() {
		m.fetches.Clear()
		m.result = nil
		return nil
	}

	gen := m.fetches.Begin()
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		res, err := api.Search(ctx, sc)
		return resultMsg{gen: gen, res: res, err: err}
	}
}

func (m *Model) applyResult(msg resultMsg) {
	if msg.err != nil {
		if msg.gen == m.fetches.Latest() {
			m.errMsg = msg.err.Error()
		}
		return
	}
	if !m.fetches.Commit(msg.gen, msg.res) {
		return
	}
	res := msg.res
	m.result = &res
	m.errMsg = ""
}

// View implements [tea.Model].
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.dialog != nil {
		return appStyle.Render(m.dialog.View(m.store.Read()))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString("Error: " + m.errMsg)
	case m.result != nil:
		b.WriteString(resultStyle.Render(m.result.Message))
		if m.result.Title != "" {
			b.WriteString("\nTitle: " + m.result.Title)
		}
	case models.ConditionsFrom(m.store.Read()).IsSearching():
		b.WriteString("Searching...")
	default:
		b.WriteString(helpStyle.Render("Enter a title to search."))
	}

	b.WriteString("\n\n")
	b.WriteString(urlStyle.Render(m.store.Location()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+o: search dialog │ esc: quit"))
	return appStyle.Render(b.String())
}
