package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"searchpage/models"
)

func TestRegistryGetCreatesOnce(t *testing.T) {
	r := NewRegistry(0)
	id := NewID()
	assert.True(t, ValidID(id))

	a := r.Get(id)
	b := r.Get(id)
	assert.Same(t, a, b)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryEvictsIdle(t *testing.T) {
	r := NewRegistry(time.Minute)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	r.Get("old")
	clock = clock.Add(2 * time.Minute)
	r.Get("new")

	assert.Equal(t, 1, r.Len())
}

func TestSessionFormIsolated(t *testing.T) {
	r := NewRegistry(0)
	r.Get("one").WithForm(func(f *models.SettingsForm) { f.Open(models.Criteria{Title: "x"}) })

	var open bool
	r.Get("two").WithForm(func(f *models.SettingsForm) { open = f.IsOpen() })
	assert.False(t, open)
}

func TestValidIDRejectsGarbage(t *testing.T) {
	assert.False(t, ValidID("20260101-session"))
}
