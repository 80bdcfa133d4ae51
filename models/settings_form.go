package models

import (
	"errors"

	"github.com/rohanthewiz/serr"
)

// ============================================================================
// Settings Form
//
// Draft state for the search settings dialog. The draft is a working copy of
// the effective criteria, reset every time the dialog opens and whenever the
// effective criteria change while it stays open. Submission is gated on three
// conditions: the draft validates, the dirty bit is set, and the draft differs
// from the effective criteria field by field.
// ============================================================================

// DialogState is the open/closed state of the settings dialog.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogOpen
)

func (s DialogState) String() string {
	if s == DialogOpen {
		return "open"
	}
	return "closed"
}

var (
	ErrDialogClosed    = errors.New("settings dialog is not open")
	ErrNothingToSubmit = errors.New("draft has no changes to submit")
)

// SettingsForm holds the dialog state and its draft. It is not safe for
// concurrent use; callers serialize access (see web/sessions).
type SettingsForm struct {
	state      DialogState
	draft      Criteria
	resetPoint Criteria
	dirty      bool
	touched    bool
}

// NewSettingsForm returns a closed form.
func NewSettingsForm() *SettingsForm {
	return &SettingsForm{}
}

func (f *SettingsForm) State() DialogState { return f.state }
func (f *SettingsForm) IsOpen() bool       { return f.state == DialogOpen }

// Draft returns the current working copy.
func (f *SettingsForm) Draft() Criteria { return f.draft }

// IsDirty reports the "changed since last reset" bit.
func (f *SettingsForm) IsDirty() bool { return f.dirty }

// Touched reports whether any field received focus or input since the last reset.
func (f *SettingsForm) Touched() bool { return f.touched }

// Open moves the dialog to Open and resets the draft to effective, discarding
// any previous unsaved draft. Opening an open dialog also resets it.
func (f *SettingsForm) Open(effective Criteria) {
	f.state = DialogOpen
	f.reset(effective)
}

// Sync re-resets the draft when the effective criteria changed while open.
func (f *SettingsForm) Sync(effective Criteria) {
	if !f.IsOpen() || f.resetPoint.Equal(effective) {
		return
	}
	f.reset(effective)
}

func (f *SettingsForm) reset(c Criteria) {
	f.draft = c
	f.resetPoint = c
	f.dirty = false
	f.touched = false
}

// SetTitle edits the draft title. The raw value is kept so the input echoes
// exactly what was typed; trimming happens on validation and submit.
func (f *SettingsForm) SetTitle(title string) {
	f.draft.Title = title
	f.markEdited()
}

func (f *SettingsForm) SetPublic(v bool) {
	f.draft.IsPublic = v
	f.markEdited()
}

func (f *SettingsForm) SetPrivate(v bool) {
	f.draft.IsPrivate = v
	f.markEdited()
}

// Touch records focus or blur on a field without a value change.
func (f *SettingsForm) Touch() {
	f.touched = true
}

// markEdited sets the dirty bit when the draft departs from the reset point.
// The bit is sticky: editing a field back to its reset value leaves it set.
func (f *SettingsForm) markEdited() {
	f.touched = true
	if f.draft != f.resetPoint {
		f.dirty = true
	}
}

// Validate checks the draft shape.
func (f *SettingsForm) Validate() error {
	return f.draft.Validate()
}

// DiffersFrom reports whether the draft differs field by field from effective.
func (f *SettingsForm) DiffersFrom(effective Criteria) bool {
	return !f.draft.Equal(effective)
}

// CanSubmit reports whether the submit action is enabled against effective.
// The dirty bit and the field diff are both required.
func (f *SettingsForm) CanSubmit(effective Criteria) bool {
	if !f.IsOpen() {
		return false
	}
	return f.Validate() == nil && f.dirty && f.DiffersFrom(effective)
}

// Cancel closes the dialog and discards the draft.
func (f *SettingsForm) Cancel() {
	f.state = DialogClosed
	f.reset(Criteria{})
}

// Submit returns the normalized draft for the caller to write to the store
// and closes the dialog. The form stays open when submission is refused.
func (f *SettingsForm) Submit(effective Criteria) (Criteria, error) {
	if !f.IsOpen() {
		return Criteria{}, ErrDialogClosed
	}
	if err := f.Validate(); err != nil {
		return Criteria{}, serr.Wrap(err, "draft failed validation")
	}
	if !f.dirty || !f.DiffersFrom(effective) {
		return Criteria{}, ErrNothingToSubmit
	}
	out := f.draft.Normalize()
	f.Cancel()
	return out, nil
}
