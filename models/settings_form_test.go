package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFormOpenResetsDraft(t *testing.T) {
	f := NewSettingsForm()
	effective := Criteria{Title: "abc", IsPublic: true}

	f.Open(effective)
	f.SetTitle("unsaved")
	f.SetPrivate(true)
	f.Cancel()

	f.Open(effective)
	assert.Equal(t, DialogOpen, f.State())
	assert.Equal(t, effective, f.Draft())
	assert.False(t, f.IsDirty())
}

func TestSettingsFormReopenWhileOpenDiscardsDraft(t *testing.T) {
	f := NewSettingsForm()
	f.Open(Criteria{})
	f.SetTitle("draft")

	f.Open(Criteria{IsPrivate: true})
	assert.Equal(t, Criteria{IsPrivate: true}, f.Draft())
}

func TestSettingsFormSyncFollowsExternalChange(t *testing.T) {
	f := NewSettingsForm()
	f.Open(Criteria{Title: "a"})
	f.SetTitle("typed")

	// Same value: draft is kept.
	f.Sync(Criteria{Title: "a"})
	assert.Equal(t, "typed", f.Draft().Title)

	f.Sync(Criteria{Title: "b"})
	assert.Equal(t, Criteria{Title: "b"}, f.Draft())
	assert.False(t, f.IsDirty())

	f.Cancel()
	f.Sync(Criteria{Title: "c"})
	assert.Equal(t, Criteria{}, f.Draft(), "closed dialogs ignore sync")
}

func TestSettingsFormCanSubmit(t *testing.T) {
	effective := Criteria{Title: "abc"}

	t.Run("closed", func(t *testing.T) {
		f := NewSettingsForm()
		assert.False(t, f.CanSubmit(effective))
	})

	t.Run("freshly opened", func(t *testing.T) {
		f := NewSettingsForm()
		f.Open(effective)
		assert.False(t, f.CanSubmit(effective))
	})

	t.Run("changed field", func(t *testing.T) {
		f := NewSettingsForm()
		f.Open(effective)
		f.SetPublic(true)
		assert.True(t, f.CanSubmit(effective))
	})

	t.Run("toggled back", func(t *testing.T) {
		f := NewSettingsForm()
		f.Open(effective)
		f.SetPublic(true)
		f.SetPublic(false)
		assert.True(t, f.IsDirty())
		assert.False(t, f.CanSubmit(effective))
	})

	t.Run("dirty but equal after trimming", func(t *testing.T) {
		f := NewSettingsForm()
		f.Open(effective)
		f.SetTitle("  abc  ")
		assert.True(t, f.IsDirty())
		assert.False(t, f.CanSubmit(effective))
	})

	t.Run("touched only", func(t *testing.T) {
		f := NewSettingsForm()
		f.Open(effective)
		f.Touch()
		assert.True(t, f.Touched())
		assert.False(t, f.IsDirty())
		assert.False(t, f.CanSubmit(effective))
	})

	t.Run("stale against newer effective", func(t *testing.T) {
		f := NewSettingsForm()
		f.Open(effective)
		f.SetTitle("xyz")
		// The effective criteria moved to the draft's value without a resync.
		assert.False(t, f.CanSubmit(Criteria{Title: "xyz"}))
	})

	t.Run("invalid draft", func(t *testing.T) {
		f := NewSettingsForm()
		f.Open(effective)
		f.SetTitle(strings.Repeat("x", 201))
		assert.False(t, f.CanSubmit(effective))
	})
}

func TestSettingsFormSubmit(t *testing.T) {
	effective := Criteria{}
	f := NewSettingsForm()

	_, err := f.Submit(effective)
	assert.True(t, errors.Is(err, ErrDialogClosed))

	f.Open(effective)
	_, err = f.Submit(effective)
	assert.True(t, errors.Is(err, ErrNothingToSubmit))
	assert.True(t, f.IsOpen(), "refused submit keeps the dialog open")

	f.SetTitle("  hello ")
	f.SetPrivate(true)
	got, err := f.Submit(effective)
	require.NoError(t, err)
	assert.Equal(t, Criteria{Title: "hello", IsPrivate: true}, got)
	assert.Equal(t, DialogClosed, f.State())
	assert.Equal(t, Criteria{}, f.Draft())
}

func TestSettingsFormSubmitInvalid(t *testing.T) {
	f := NewSettingsForm()
	f.Open(Criteria{})
	f.SetTitle("bad\ntitle")
	_, err := f.Submit(Criteria{})
	assert.Error(t, err)
	assert.True(t, f.IsOpen())
}

func TestSettingsFormCancelLeavesStoreUntouched(t *testing.T) {
	store, err := NewCriteriaStore("http://localhost/?title=keep", nil)
	require.NoError(t, err)

	f := NewSettingsForm()
	f.Open(store.Read())
	f.SetTitle("discard me")
	f.Cancel()

	assert.Equal(t, Criteria{Title: "keep"}, store.Read())
	assert.False(t, f.IsOpen())
}
