package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/regform/internal/form"
	"github.com/jask/regform/internal/keys"
	"github.com/jask/regform/internal/picker"
	"github.com/jask/regform/internal/review"
)

const (
	progressWidth   = 36
	reviewLabelCols = 16
)

func (a *App) View() string {
	var body string
	var bindings []key.Binding
	if a.session.Submitted() {
		body = a.renderReview()
		bindings = a.keys.HelpBindings(keys.ScopeReview)
	} else {
		body = a.renderForm()
		cur, _ := a.current()
		bindings = append(a.keys.HelpBindings(cur.scope()), a.keys.HelpBindings(keys.ScopeForm)...)
	}
	bindings = append(bindings, a.keys.HelpBindings(keys.ScopeGlobal)...)

	view := a.placeWithFooter(body, a.renderStatus(), a.renderFooter(bindings))
	if a.pickerOpen && a.picker != nil {
		view = a.composePicker(view)
	}
	return view
}

// ---------------------------------------------------------------------------
// Form screens
// ---------------------------------------------------------------------------

func (a *App) renderForm() string {
	screen := a.session.Screen()
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Registration Form - Screen %d", screen)))
	b.WriteString("\n\n")
	b.WriteString(renderProgress(screen))
	b.WriteString("\n\n")
	b.WriteString(sectionTitleStyle.Render(screen.Title()))
	b.WriteString("\n\n")
	for i, s := range a.slots() {
		b.WriteString(a.renderSlot(s, i == a.focus))
		b.WriteString("\n")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderProgress draws the step markers and a bar filled to (screen-1)/2.
func renderProgress(screen form.Screen) string {
	steps := make([]string, 0, form.ScreenCount)
	for s := form.ScreenPersonal; s <= form.ScreenAdditional; s++ {
		label := fmt.Sprintf("%d", s)
		if s <= screen {
			steps = append(steps, stepActiveStyle.Render(label))
		} else {
			steps = append(steps, stepIdleStyle.Render(label))
		}
	}
	sep := barEmptyStyle.Render(" ── ")
	line := strings.Join(steps, sep)

	filled := progressWidth * int(screen-1) / (form.ScreenCount - 1)
	filled = min(max(filled, 0), progressWidth)
	bar := barFilledStyle.Render(strings.Repeat("━", filled)) +
		barEmptyStyle.Render(strings.Repeat("━", progressWidth-filled))
	return line + "\n" + bar
}

func (a *App) renderSlot(s slot, focused bool) string {
	switch s.kind {
	case slotText:
		return renderField(s.field.Label(), true, focused, a.inputs[s.field].View(), a.session.VisibleError(s.field))
	case slotBio:
		return renderField(s.field.Label(), true, focused, a.bio.View(), a.session.VisibleError(s.field))
	case slotRadio:
		return renderField(s.field.Label(), true, focused, a.renderGender(focused), a.session.VisibleError(s.field))
	case slotSelect:
		return renderField(s.field.Label(), true, focused, a.renderSelect(s.field), a.session.VisibleError(s.field))
	case slotSkills:
		return renderField("Skills (Optional)", false, focused, a.renderSkills(focused), "")
	default:
		return ""
	}
}

// renderField lays out a label, its control and the inline error beneath.
func renderField(label string, required, focused bool, control, errMsg string) string {
	marker := "  "
	ls := labelStyle
	if focused {
		marker = cursorStyle.Render("▸ ")
		ls = focusedLabelStyle
	}
	head := marker + ls.Render(label)
	if required {
		head += requiredStyle.Render(" *")
	}
	lines := []string{head}
	for _, line := range strings.Split(control, "\n") {
		lines = append(lines, "  "+line)
	}
	if errMsg != "" {
		lines = append(lines, "  "+errorTextStyle.Render(errMsg))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderGender(focused bool) string {
	current := a.session.Answers.Gender
	parts := make([]string, 0, len(form.Genders))
	for _, g := range form.Genders {
		mark := "( )"
		style := valueStyle
		if g == current {
			mark = "(•)"
			if focused {
				style = cursorStyle
			}
		}
		parts = append(parts, style.Render(mark+" "+g.Display()))
	}
	return strings.Join(parts, "   ")
}

func (a *App) renderSelect(f form.Field) string {
	value := a.session.Answers.Value(f)
	if value == "" {
		placeholder := selectYearPlaceholder
		if f == form.FieldCollegeCity {
			placeholder = selectCityPlaceholder
		}
		return "[ " + placeholderStyle.Render(placeholder) + " ▾ ]"
	}
	return "[ " + valueStyle.Render(value) + " ▾ ]"
}

func (a *App) renderSkills(focused bool) string {
	head := "[ " + placeholderStyle.Render(selectSkillsPlaceholder) + " ▾ ]"
	skills := a.session.Answers.Skills
	if len(skills) == 0 {
		return head + "\n" + placeholderStyle.Render("No skills selected")
	}
	chips := make([]string, len(skills))
	for i, s := range skills {
		style := chipStyle
		if focused && i == a.chip {
			style = chipCursorStyle
		}
		chips[i] = style.Render(s + " ×")
	}
	return head + "\n" + strings.Join(chips, " ")
}

// ---------------------------------------------------------------------------
// Review
// ---------------------------------------------------------------------------

func (a *App) renderReview() string {
	sum := review.Build(a.session.Answers, a.session.Reference())
	var b strings.Builder
	b.WriteString(titleStyle.Render(sum.Title))
	b.WriteString("\n\n")
	b.WriteString(bannerStyle.Render(sum.Banner))
	b.WriteString("\n")
	if sum.Reference != "" {
		b.WriteString(labelStyle.Render("Reference ") + valueStyle.Render(sum.Reference))
		b.WriteString("\n")
	}
	for _, sec := range sum.Sections {
		b.WriteString("\n")
		b.WriteString(sectionTitleStyle.Render(sec.Title))
		b.WriteString("\n")
		for _, row := range sec.Rows {
			b.WriteString(renderReviewRow(row))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(stepActiveStyle.Render(sum.Action))
	return panelStyle.Render(b.String())
}

func renderReviewRow(row review.Row) string {
	label := labelStyle.Render(padRight(row.Label, reviewLabelCols))
	if len(row.Chips) == 0 {
		return "  " + label + valueStyle.Render(row.Value)
	}
	chips := make([]string, len(row.Chips))
	for i, c := range row.Chips {
		chips[i] = chipStyle.Render(c)
	}
	return "  " + label + strings.Join(chips, " ")
}

// ---------------------------------------------------------------------------
// Picker overlay
// ---------------------------------------------------------------------------

func renderPicker(p *picker.Picker, width int) string {
	if p == nil {
		return ""
	}
	var lines []string
	lines = append(lines, sectionTitleStyle.Render(p.Title()))

	query := p.Query()
	filter := placeholderStyle.Render("(type to filter)")
	if query != "" {
		filter = valueStyle.Render(query)
	}
	lines = append(lines, labelStyle.Render("Filter: ")+filter)

	visible := p.Visible()
	if p.Suggesting() && len(visible) > 0 {
		lines = append(lines, placeholderStyle.Render("No exact match. Did you mean:"))
	}
	if len(visible) == 0 {
		lines = append(lines, placeholderStyle.Render("No matches"))
	}
	for i, it := range visible {
		row := "  " + it.Label
		if i == p.Cursor() {
			row = pickerRowCursorStyle.Render(padRight("> "+it.Label, width))
		}
		lines = append(lines, row+renderPickerMeta(it))
	}
	return strings.Join(lines, "\n")
}

func renderPickerMeta(it picker.Item) string {
	if it.Meta == "" {
		return ""
	}
	return pickerMetaStyle.Render(" - " + it.Meta)
}

func (a *App) composePicker(base string) string {
	box := modalStyle.Render(renderPicker(a.picker, 24))
	if a.width == 0 || a.height == 0 {
		return base + "\n" + box
	}
	return overlayBox(base, box, a.width, a.height)
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (a *App) renderStatus() string {
	text := a.status
	style := statusBarStyle
	if a.statusErr {
		style = statusErrStyle
	}
	if text == "" {
		if a.session.Submitted() {
			text = "Submitted"
		} else {
			screen := a.session.Screen()
			text = fmt.Sprintf("Step %d of %d", screen, form.ScreenCount)
			if hint := a.forwardHint(screen); hint != "" {
				text += " | " + hint
			}
		}
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	if a.width == 0 {
		return style.Render(flat)
	}
	return style.Width(a.width).Render(flat)
}

// forwardHint names the key that leaves the screen. enter only does so from
// text fields and the gender row; on selects and skills it opens the list.
func (a *App) forwardHint(screen form.Screen) string {
	action, verb := keys.ActionNext, "continue"
	if screen == form.ScreenAdditional {
		action, verb = keys.ActionSubmit, "submit"
	}
	for _, b := range a.keys.BindingsForScope(keys.ScopeForm) {
		if b.Action == action && len(b.Keys) > 0 {
			return b.Keys[0] + " to " + verb
		}
	}
	return ""
}

func (a *App) renderFooter(bindings []key.Binding) string {
	// Every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if a.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(content)
}

func (a *App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := max(a.height-2, 1)
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Full-width lines keep stale cells from the previous frame out.
	lines := strings.Split(main, "\n")
	for i, line := range lines {
		lines[i] = padRight(line, a.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}
