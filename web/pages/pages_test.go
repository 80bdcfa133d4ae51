package pages

import (
	"strings"
	"testing"

	"searchpage/models"
)

// TestLivePageDebounce verifies the live input waits for a quiet period
func TestLivePageDebounce(t *testing.T) {
	html := NewLivePage(models.Criteria{Title: "abc", IsPublic: true}, "300ms").Render()

	checks := []string{
		`hx-trigger="input changed delay:300ms"`,
		`hx-get="/partials/live-results"`,
		`hx-sync="this:replace"`,
		`value="abc"`,
		`class="banner-link active"`,
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("live page should contain %s", want)
		}
	}

	// Only the title criterion belongs to the live filter
	if strings.Contains(html, "is_public") {
		t.Error("live page should drop the boolean criteria")
	}
}
