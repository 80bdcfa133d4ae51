package landing

import (
	"searchpage/models"
	"searchpage/web/pages/comps"

	"github.com/rohanthewiz/element"
)

// DialogView is the render state of the search settings dialog.
type DialogView struct {
	Open      bool
	Draft     models.Criteria
	Effective models.Criteria
	CanSubmit bool
}

// NewDialogView snapshots f against the effective criteria.
func NewDialogView(f *models.SettingsForm, effective models.Criteria) DialogView {
	return DialogView{
		Open:      f.IsOpen(),
		Draft:     f.Draft(),
		Effective: effective,
		CanSubmit: f.CanSubmit(effective),
	}
}

// SettingsDialog renders into #dialog-slot. A closed dialog renders an empty slot.
//
// Field edits post the whole form to /dialog/draft, which only re-renders the
// action row so the inputs keep focus while typing. Submit swaps #page-body.
type SettingsDialog struct {
	View DialogView
}

func (d SettingsDialog) Render(b *element.Builder) any {
	b.Div("id", "dialog-slot").R(
		b.Wrap(func() {
			if !d.View.Open {
				return
			}
			d.renderDialog(b)
		}),
	)
	return nil
}

func (d SettingsDialog) renderDialog(b *element.Builder) any {
	draft := d.View.Draft
	return b.Div("class", "modal-overlay open", "id", "modal-overlay").R(
		b.Div("class", "modal", "id", "settings-dialog", "role", "dialog", "aria-labelledby", "settings-dialog-title").R(
			b.Form("id", "settings-form",
				"hx-post", "/dialog/submit",
				"hx-target", "#page-body",
				"hx-swap", "innerHTML").R(
				b.DivClass("modal-header").R(
					b.H2("class", "modal-title", "id", "settings-dialog-title").T("Search criteria"),
				),
				b.DivClass("modal-body").R(
					// Title
					b.DivClass("form-group").R(
						b.Label("for", "input-search-title").T("Title"),
						b.Input(comps.Attrs([]string{"type", "text", "class", "form-control",
							"id", "input-search-title", "name", models.ParamTitle,
							"value", comps.Esc(draft.Title),
							"placeholder", "Enter a title",
							"autocomplete", "off",
							"hx-post", "/dialog/draft",
							"hx-trigger", "input changed delay:150ms, blur",
							"hx-target", "#dialog-actions",
							"hx-swap", "outerHTML",
							"hx-include", "#settings-form"},
							map[string]bool{"autofocus": true})...),
					),
					// Status
					b.DivClass("form-group").R(
						b.Label().T("Status"),
						b.DivClass("form-row").R(
							d.renderCheckbox(b, models.ParamIsPublic, "Public", draft.IsPublic),
							d.renderCheckbox(b, models.ParamIsPrivate, "Private", draft.IsPrivate),
						),
					),
				),
				element.RenderComponents(b, DialogActions{View: d.View}),
			),
		),
	)
}

func (d SettingsDialog) renderCheckbox(b *element.Builder, name, label string, checked bool) any {
	return b.LabelClass("filter-item").R(
		b.Input(comps.Attrs([]string{"type", "checkbox", "class", "filter-checkbox",
			"id", "input-search-" + name, "name", name, "value", "true",
			"hx-post", "/dialog/draft",
			"hx-trigger", "change",
			"hx-target", "#dialog-actions",
			"hx-swap", "outerHTML",
			"hx-include", "#settings-form"},
			map[string]bool{"checked": checked})...),
		b.SpanClass("filter-label").T(label),
	)
}

// DialogActions is the dialog footer: pending-change preview plus Cancel and
// Search. It is re-rendered on every draft edit.
type DialogActions struct {
	View DialogView
}

func (a DialogActions) Render(b *element.Builder) any {
	b.Div("class", "modal-footer", "id", "dialog-actions").R(
		element.RenderComponents(b, ChangePreview{Effective: a.View.Effective, Draft: a.View.Draft}),
		b.Button("type", "button", "class", "btn btn-secondary",
			"hx-post", "/dialog/cancel",
			"hx-target", "#dialog-slot",
			"hx-swap", "outerHTML").T("Cancel"),
		b.Button(comps.Attrs([]string{"type", "submit", "class", "btn btn-primary", "id", "btn-submit-search"},
			map[string]bool{"disabled": !a.View.CanSubmit})...).T("Search"),
	)
	return nil
}

// ChangePreview lists the fields the draft would change. The title shows a
// character diff against the effective title.
type ChangePreview struct {
	Effective models.Criteria
	Draft     models.Criteria
}

func (p ChangePreview) Render(b *element.Builder) any {
	changed := p.Draft.ChangedFields(p.Effective)
	b.Div("class", "change-preview", "id", "change-preview").R(
		b.Wrap(func() {
			if len(changed) == 0 {
				b.SpanClass("text-muted").T("No changes")
				return
			}
			for _, field := range changed {
				switch field {
				case models.ParamTitle:
					b.DivClass("change-item").R(
						b.SpanClass("change-label").T("Title: "),
						element.ForEach(models.TitleDiff(p.Effective.Title, p.Draft.Title), func(seg models.DiffSegment) {
							b.SpanClass(diffClass(seg.Op)).T(comps.Esc(seg.Text))
						}),
					)
				case models.ParamIsPublic:
					b.DivClass("change-item").T("Public: " + onOff(p.Draft.IsPublic))
				case models.ParamIsPrivate:
					b.DivClass("change-item").T("Private: " + onOff(p.Draft.IsPrivate))
				}
			}
		}),
	)
	return nil
}

func diffClass(op models.DiffOp) string {
	switch op {
	case models.DiffInsert:
		return "diff-insert"
	case models.DiffDelete:
		return "diff-delete"
	default:
		return "diff-keep"
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
