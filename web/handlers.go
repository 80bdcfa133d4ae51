package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"searchpage/models"
	"searchpage/web/api"
	"searchpage/web/pages"
	"searchpage/web/pages/landing"
	"searchpage/web/sessions"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// HTMX request and response headers used by the page handlers
const (
	hxRequest    = "HX-Request"
	hxCurrentURL = "HX-Current-URL"
	hxReplaceURL = "HX-Replace-Url"
)

// searchTimeout bounds a results partial on top of the mock API delay.
const searchTimeout = 10 * time.Second

// Pages serves the HTML pages and the HTMX partials of the criteria page.
type Pages struct {
	Sessions *sessions.Registry
	API      *models.SearchAPI
	Debounce time.Duration
}

// session returns the state for the request's session cookie.
func (p *Pages) session(ctx rweb.Context) *sessions.Session {
	id, _ := ctx.Get("session_id").(string)
	return p.Sessions.Get(id)
}

// requestCriteria decodes the criteria from the request's own query string.
func requestCriteria(ctx rweb.Context) models.Criteria {
	values, err := url.ParseQuery(ctx.Request().Query())
	if err != nil {
		return models.Criteria{}
	}
	return models.DecodeCriteria(values)
}

// effectiveCriteria reads the criteria in effect in the browser. HTMX reports
// the address bar in HX-Current-URL, which stays the source of truth for
// partial requests; full page loads use their own query string.
func effectiveCriteria(ctx rweb.Context) models.Criteria {
	if current := api.Header(ctx, hxCurrentURL); current != "" {
		if u, err := url.Parse(current); err == nil {
			return models.DecodeCriteria(u.Query())
		}
		logger.Debug("Ignoring malformed HX-Current-URL", "value", current)
	}
	return requestCriteria(ctx)
}

func isHTMX(ctx rweb.Context) bool {
	return api.Header(ctx, hxRequest) == "true"
}

// CriteriaPage handles GET /
// Renders the page for the criteria in the URL. An open dialog is resynced to
// those criteria so navigation is reflected in the draft.
func (p *Pages) CriteriaPage(ctx rweb.Context) error {
	c := requestCriteria(ctx)

	var view landing.DialogView
	p.session(ctx).WithForm(func(f *models.SettingsForm) {
		f.Sync(c)
		view = landing.NewDialogView(f, c)
	})

	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.WriteHTML(landing.NewPage(c, view).Render())
}

// LivePage handles GET /live
func (p *Pages) LivePage(ctx rweb.Context) error {
	c := requestCriteria(ctx)
	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.WriteHTML(pages.NewLivePage(c, p.Debounce.String()).Render())
}

// OpenDialog handles GET /dialog/open
// Moves the dialog to Open with the draft reset to the effective criteria.
func (p *Pages) OpenDialog(ctx rweb.Context) error {
	c := effectiveCriteria(ctx)

	var view landing.DialogView
	p.session(ctx).WithForm(func(f *models.SettingsForm) {
		f.Open(c)
		view = landing.NewDialogView(f, c)
	})

	logger.Debug("Settings dialog opened", "title", c.Title)
	return ctx.WriteHTML(landing.RenderFragment(landing.SettingsDialog{View: view}))
}

// applyDraft copies the posted form fields into the draft. Unchecked boxes are
// absent from the form and decode to false. A post that changes nothing is a
// focus/blur event.
func applyDraft(ctx rweb.Context, f *models.SettingsForm) {
	posted := models.Criteria{
		Title:     ctx.Request().FormValue(models.ParamTitle),
		IsPublic:  ctx.Request().FormValue(models.ParamIsPublic) == "true",
		IsPrivate: ctx.Request().FormValue(models.ParamIsPrivate) == "true",
	}

	draft := f.Draft()
	if posted == draft {
		f.Touch()
		return
	}
	if posted.Title != draft.Title {
		f.SetTitle(posted.Title)
	}
	if posted.IsPublic != draft.IsPublic {
		f.SetPublic(posted.IsPublic)
	}
	if posted.IsPrivate != draft.IsPrivate {
		f.SetPrivate(posted.IsPrivate)
	}
}

// UpdateDraft handles POST /dialog/draft
// Applies field edits and re-renders the action row with the submit state.
func (p *Pages) UpdateDraft(ctx rweb.Context) error {
	c := effectiveCriteria(ctx)

	var view landing.DialogView
	p.session(ctx).WithForm(func(f *models.SettingsForm) {
		if !f.IsOpen() {
			// A stale tab posting into a closed dialog reopens it from the URL.
			f.Open(c)
		}
		f.Sync(c)
		applyDraft(ctx, f)
		view = landing.NewDialogView(f, c)
	})

	return ctx.WriteHTML(landing.RenderFragment(landing.DialogActions{View: view}))
}

// CancelDialog handles POST /dialog/cancel
func (p *Pages) CancelDialog(ctx rweb.Context) error {
	p.session(ctx).WithForm(func(f *models.SettingsForm) {
		f.Cancel()
	})
	return ctx.WriteHTML(landing.RenderFragment(landing.SettingsDialog{}))
}

// SubmitDialog handles POST /dialog/submit
// Writes the validated draft to the URL by replacing the current history
// entry, then renders the page body for the new criteria. A refused submit
// re-renders the body with the dialog still open.
func (p *Pages) SubmitDialog(ctx rweb.Context) error {
	effective := effectiveCriteria(ctx)

	var (
		next      models.Criteria
		submitErr error
		view      landing.DialogView
	)
	p.session(ctx).WithForm(func(f *models.SettingsForm) {
		if f.IsOpen() {
			f.Sync(effective)
			applyDraft(ctx, f)
		}
		next, submitErr = f.Submit(effective)
		if submitErr != nil {
			view = landing.NewDialogView(f, effective)
		}
	})

	if submitErr != nil {
		if !errors.Is(submitErr, models.ErrNothingToSubmit) && !errors.Is(submitErr, models.ErrDialogClosed) {
			logger.LogErr(serr.Wrap(submitErr, "search criteria rejected"), "invalid draft")
		}
		return ctx.WriteHTML(landing.RenderFragment(landing.Body{Criteria: effective, Dialog: view}))
	}

	target := models.CriteriaURL("/", next)
	logger.Info("Search criteria submitted", "url", target)

	if !isHTMX(ctx) {
		ctx.Response().SetHeader("Location", target)
		ctx.SetStatus(http.StatusSeeOther)
		return nil
	}

	ctx.Response().SetHeader(hxReplaceURL, target)
	return ctx.WriteHTML(landing.RenderFragment(landing.Body{Criteria: next}))
}

// Results handles GET /partials/results
// Runs the mock lookup for the criteria in the query string. Each request takes
// a new fetch generation for the session; when a newer request has started by
// the time this one resolves, it answers 204 so HTMX leaves the slot alone.
func (p *Pages) Results(ctx rweb.Context) error {
	c := requestCriteria(ctx)
	tracker := p.session(ctx).Fetches()

	reqCtx, cancel := context.WithTimeout(context.Background(), p.API.Delay+searchTimeout)
	defer cancel()

	res, kept, err := tracker.Fetch(reqCtx, p.API, c)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "mock search failed"), "results partial")
		return ctx.WriteHTML(`<div class="result-panel">Search failed</div>`)
	}
	if !models.ConditionsFrom(c).IsSearching() {
		return ctx.WriteHTML(landing.RenderFragment(landing.ResultsSlot{}))
	}
	if !kept {
		ctx.SetStatus(http.StatusNoContent)
		return nil
	}

	return ctx.WriteHTML(landing.RenderFragment(landing.ResultPanel{Result: res}))
}

// LiveResults handles GET /partials/live-results
// Called by the live filter input once typing pauses. The debounced title is
// written to the address bar with HX-Replace-Url, and the result slot and
// status bar are re-rendered for it.
func (p *Pages) LiveResults(ctx rweb.Context) error {
	c := models.Criteria{Title: requestCriteria(ctx).Title}

	ctx.Response().SetHeader(hxReplaceURL, models.CriteriaURL("/live", c))
	if !models.ConditionsFrom(c).IsSearching() {
		// Supersede any lookup still running for the previous title.
		p.session(ctx).Fetches().Clear()
	}

	return ctx.WriteHTML(
		landing.RenderFragment(landing.ResultsSlot{Criteria: c}) +
			landing.RenderFragment(landing.StatusBar{Path: "/live", Criteria: c, OOB: true}),
	)
}

// HealthCheck returns the health status of the application
func HealthCheck(ctx rweb.Context) error {
	return ctx.WriteJSON(map[string]interface{}{
		"status":  "healthy",
		"service": "searchpage",
	})
}
