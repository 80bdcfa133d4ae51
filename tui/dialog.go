package tui

import (
	"errors"
	"strings"

	"searchpage/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
)

type dialogSubmitMsg struct {
	criteria models.Criteria
}

type dialogCancelMsg struct{}

// dialog fields in tab order
const (
	fieldTitle = iota
	fieldPublic
	fieldPrivate
	fieldSubmit
	fieldCancel
	fieldCount
)

// dialogModel edits a draft of all three criteria through a SettingsForm.
// Nothing reaches the store until submit.
type dialogModel struct {
	form   *models.SettingsForm
	title  textinput.Model
	focus  int
	errMsg string
}

func newDialogModel(effective models.Criteria) *dialogModel {
	form := models.NewSettingsForm()
	form.Open(effective)

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 40
	title.SetValue(effective.Title)

	return &dialogModel{form: form, title: title}
}

// Focus gives the title input the cursor.
func (d *dialogModel) Focus() tea.Cmd {
	d.focus = fieldTitle
	d.form.Touch()
	return d.title.Focus()
}

// Update handles one message while the dialog is open. effective is the
// store's current criteria; an external change re-resets the draft.
func (d *dialogModel) Update(msg tea.Msg, effective models.Criteria) tea.Cmd {
	before := d.form.Draft()
	d.form.Sync(effective)
	if d.form.Draft() != before {
		d.title.SetValue(d.form.Draft().Title)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.title, cmd = d.title.Update(msg)
		return cmd
	}

	switch keyMsg.String() {
	case "esc":
		d.form.Cancel()
		return func() tea.Msg { return dialogCancelMsg{} }
	case "tab", "down":
		return d.moveFocus(1)
	case "shift+tab", "up":
		return d.moveFocus(-1)
	case "enter":
		if d.focus == fieldCancel {
			d.form.Cancel()
			return func() tea.Msg { return dialogCancelMsg{} }
		}
		return d.submit(effective)
	case " ":
		switch d.focus {
		case fieldPublic:
			d.form.SetPublic(!d.form.Draft().IsPublic)
			return nil
		case fieldPrivate:
			d.form.SetPrivate(!d.form.Draft().IsPrivate)
			return nil
		}
	}

	if d.focus != fieldTitle {
		return nil
	}
	var cmd tea.Cmd
	d.title, cmd = d.title.Update(keyMsg)
	if d.title.Value() != d.form.Draft().Title {
		d.form.SetTitle(d.title.Value())
	}
	return cmd
}

func (d *dialogModel) moveFocus(delta int) tea.Cmd {
	d.focus = (d.focus + delta + fieldCount) % fieldCount
	d.form.Touch()
	if d.focus == fieldTitle {
		return d.title.Focus()
	}
	d.title.Blur()
	return nil
}

func (d *dialogModel) submit(effective models.Criteria) tea.Cmd {
	next, err := d.form.Submit(effective)
	if err != nil {
		if !errors.Is(err, models.ErrNothingToSubmit) {
			d.errMsg = err.Error()
			logger.Debug("Dialog submit refused", "error", err.Error())
		}
		return nil
	}
	d.errMsg = ""
	return func() tea.Msg { return dialogSubmitMsg{criteria: next} }
}

func checkbox(label string, checked, focused bool) string {
	mark := "[ ]"
	if checked {
		mark = "[x]"
	}
	line := mark + " " + label
	if focused {
		return focusedStyle.Render("> " + line)
	}
	return "  " + line
}

func button(label string, focused, enabled bool) string {
	text := "[ " + label + " ]"
	switch {
	case !enabled:
		return disabledStyle.Render(text)
	case focused:
		return focusedStyle.Render(text)
	}
	return text
}

// View renders the dialog box.
func (d *dialogModel) View(effective models.Criteria) string {
	draft := d.form.Draft()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Search criteria"))
	b.WriteString("\n\n")
	b.WriteString(d.title.View())
	b.WriteString("\n\n")
	b.WriteString(checkbox("Public", draft.IsPublic, d.focus == fieldPublic))
	b.WriteString("\n")
	b.WriteString(checkbox("Private", draft.IsPrivate, d.focus == fieldPrivate))
	b.WriteString("\n\n")

	if changed := draft.Normalize().ChangedFields(effective); len(changed) > 0 {
		b.WriteString(helpStyle.Render("Changed: " + strings.Join(changed, ", ")))
		b.WriteString("\n")
	}
	if d.errMsg != "" {
		b.WriteString("Error: " + d.errMsg + "\n")
	}

	b.WriteString(button("Search", d.focus == fieldSubmit, d.form.CanSubmit(effective)))
	b.WriteString("  ")
	b.WriteString(button("Cancel", d.focus == fieldCancel, true))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: next │ space: toggle │ enter: search │ esc: cancel"))

	return dialogStyle.Render(b.String())
}
