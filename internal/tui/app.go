// Package tui renders the registration wizard as a Bubble Tea program.
package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/regform/internal/form"
	"github.com/jask/regform/internal/keys"
	"github.com/jask/regform/internal/picker"
	"github.com/jask/regform/internal/wizard"
)

const (
	inputWidth     = 48
	inputCharLimit = 120
	bioRows        = 4
	bioWidth       = 60
	bioCharLimit   = 2000

	selectYearPlaceholder   = "Select Year"
	selectCityPlaceholder   = "Select City"
	selectSkillsPlaceholder = "Select Skills"
)

// noField marks the skills slot, which edits a list instead of a field.
const noField form.Field = -1

var textPlaceholders = map[form.Field]string{
	form.FieldName:          "Enter your full name",
	form.FieldEmail:         "Enter your email address",
	form.FieldContactNumber: "Enter 10-digit number",
	form.FieldCollege:       "Enter your college name",
}

const bioPlaceholder = "Tell us about yourself (minimum 50 characters)"

type slotKind int

const (
	slotText slotKind = iota
	slotBio
	slotRadio
	slotSelect
	slotSkills
)

// slot is one focusable control on a screen.
type slot struct {
	field form.Field
	kind  slotKind
}

func (s slot) scope() string {
	switch s.kind {
	case slotText:
		return keys.ScopeText
	case slotRadio:
		return keys.ScopeRadio
	case slotSelect:
		return keys.ScopeSelect
	case slotSkills:
		return keys.ScopeSkills
	default:
		// The bio textarea takes enter and arrows itself.
		return ""
	}
}

var screenSlots = map[form.Screen][]slot{
	form.ScreenPersonal: {
		{field: form.FieldName, kind: slotText},
		{field: form.FieldEmail, kind: slotText},
		{field: form.FieldContactNumber, kind: slotText},
		{field: form.FieldGender, kind: slotRadio},
	},
	form.ScreenEducation: {
		{field: form.FieldCollege, kind: slotText},
		{field: form.FieldPassingYear, kind: slotSelect},
		{field: form.FieldCollegeCity, kind: slotSelect},
	},
	form.ScreenAdditional: {
		{field: form.FieldBio, kind: slotBio},
		{field: noField, kind: slotSkills},
	},
}

type move int

const (
	moveNext move = iota
	moveBack
	moveSubmit
	moveAdvance
	moveEdit
)

// Options configures an App.
type Options struct {
	Keys      *keys.Registry
	Logger    zerolog.Logger
	FirstYear int // 0 means the current year
	YearSpan  int
	Now       func() time.Time
}

// App is the Bubble Tea model for one registration session.
type App struct {
	ctx     context.Context
	session *wizard.Session
	keys    *keys.Registry
	log     zerolog.Logger
	years   []string

	inputs map[form.Field]*textinput.Model
	bio    textarea.Model
	focus  int
	chip   int

	picker      *picker.Picker
	pickerField form.Field
	pickerOpen  bool
	skills      *picker.Picker // kept across opens, cleared on each

	status    string
	statusErr bool
	width     int
	height    int
}

func New(ctx context.Context, session *wizard.Session, opts Options) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	if session == nil {
		session = wizard.New(wizard.WithLogger(opts.Logger))
	}
	reg := opts.Keys
	if reg == nil {
		reg = keys.NewRegistry()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	a := &App{
		ctx:     ctx,
		session: session,
		keys:    reg,
		log:     opts.Logger,
		years:   yearOptions(now(), opts.FirstYear, opts.YearSpan),
		inputs:  make(map[form.Field]*textinput.Model, len(textPlaceholders)),
	}

	for f, placeholder := range textPlaceholders {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder
		ti.CharLimit = inputCharLimit
		ti.Width = inputWidth
		ti.SetValue(session.Answers.Value(f))
		a.inputs[f] = &ti
	}

	a.bio = textarea.New()
	a.bio.Placeholder = bioPlaceholder
	a.bio.ShowLineNumbers = false
	a.bio.CharLimit = bioCharLimit
	a.bio.SetWidth(bioWidth)
	a.bio.SetHeight(bioRows)
	a.bio.SetValue(session.Answers.Bio)

	a.syncFocus()
	return a
}

func yearOptions(now time.Time, first, span int) []string {
	var years []int
	if first > 0 {
		if span <= 0 {
			span = form.DefaultYearSpan
		}
		for i := 0; i < span; i++ {
			years = append(years, first+i)
		}
	} else {
		years = form.PassingYears(now, span)
	}
	out := make([]string, len(years))
	for i, y := range years {
		out[i] = strconv.Itoa(y)
	}
	return out
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Session exposes the underlying session, mainly for the caller after the
// program exits.
func (a *App) Session() *wizard.Session {
	return a.session
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.resize()
		return a, nil
	case tea.KeyMsg:
		if a.session.Submitted() {
			return a.handleReviewKey(m)
		}
		if a.pickerOpen {
			return a.handlePickerKey(m)
		}
		return a.handleFormKey(m)
	}
	return a, a.updateFocused(msg)
}

func (a *App) resize() {
	w := inputWidth
	if a.width > 0 && a.width-8 < w {
		w = max(a.width-8, 10)
	}
	for _, in := range a.inputs {
		in.Width = w
	}
	bw := bioWidth
	if a.width > 0 && a.width-6 < bw {
		bw = max(a.width-6, 20)
	}
	a.bio.SetWidth(bw)
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur, _ := a.current()
	b := a.keys.Lookup(m.String(), cur.scope(), keys.ScopeForm)
	if b == nil {
		return a, a.updateFocused(m)
	}

	switch b.Action {
	case keys.ActionQuit:
		return a, tea.Quit
	case keys.ActionFocusNext:
		return a, a.moveFocus(1)
	case keys.ActionFocusPrev:
		return a, a.moveFocus(-1)
	case keys.ActionAdvance:
		if a.focus < len(a.slots())-1 {
			return a, a.moveFocus(1)
		}
		a.leaveSlot()
		return a, a.transition(moveAdvance)
	case keys.ActionNext:
		return a, a.transition(moveNext)
	case keys.ActionBack:
		return a, a.transition(moveBack)
	case keys.ActionSubmit:
		return a, a.transition(moveSubmit)
	case keys.ActionChoosePrev:
		a.choose(cur, -1)
	case keys.ActionChooseNext:
		a.choose(cur, 1)
	case keys.ActionOpen:
		a.openPicker(cur)
	case keys.ActionRemove:
		a.removeChip()
	}
	return a, nil
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := a.keys.Lookup(m.String(), keys.ScopePicker)
	if b == nil {
		a.picker.Type(m.String())
		return a, nil
	}
	switch b.Action {
	case keys.ActionQuit:
		return a, tea.Quit
	case keys.ActionUp:
		a.picker.CursorUp()
	case keys.ActionDown:
		a.picker.CursorDown()
	case keys.ActionClose:
		a.closePicker()
	case keys.ActionSelect:
		res := a.picker.Select()
		if res.Action != picker.ActionSelected {
			a.setStatus("No match for "+strconv.Quote(a.picker.Query()), true)
			return a, nil
		}
		a.applyPick(res.Item)
		a.closePicker()
	}
	return a, nil
}

func (a *App) handleReviewKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := a.keys.Lookup(m.String(), keys.ScopeReview)
	if b == nil {
		return a, nil
	}
	switch b.Action {
	case keys.ActionQuit:
		return a, tea.Quit
	case keys.ActionEdit:
		return a, a.transition(moveEdit)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Focus
// ---------------------------------------------------------------------------

func (a *App) slots() []slot {
	return screenSlots[a.session.Screen()]
}

func (a *App) current() (slot, bool) {
	slots := a.slots()
	if a.focus < 0 || a.focus >= len(slots) {
		return slot{field: noField, kind: -1}, false
	}
	return slots[a.focus], true
}

// leaveSlot marks the focused field as visited.
func (a *App) leaveSlot() {
	if cur, ok := a.current(); ok && cur.field.Valid() {
		a.session.Blur(cur.field)
	}
}

func (a *App) moveFocus(delta int) tea.Cmd {
	slots := a.slots()
	if len(slots) == 0 {
		return nil
	}
	a.leaveSlot()
	a.focus = (a.focus + delta + len(slots)) % len(slots)
	a.chip = 0
	return a.syncFocus()
}

func (a *App) focusField(f form.Field) {
	for i, s := range a.slots() {
		if s.field == f {
			a.focus = i
			return
		}
	}
}

// syncFocus gives keyboard focus to the widget under the focused slot.
func (a *App) syncFocus() tea.Cmd {
	cur, ok := a.current()
	var cmd tea.Cmd
	for f, in := range a.inputs {
		if ok && cur.kind == slotText && cur.field == f {
			cmd = in.Focus()
			continue
		}
		in.Blur()
	}
	if ok && cur.kind == slotBio {
		cmd = a.bio.Focus()
	} else {
		a.bio.Blur()
	}
	return cmd
}

// updateFocused forwards msg to the focused text widget and copies any edit
// into the session.
func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	cur, ok := a.current()
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	switch cur.kind {
	case slotText:
		in := a.inputs[cur.field]
		before := in.Value()
		*in, cmd = in.Update(msg)
		if in.Value() != before {
			a.setField(cur.field, in.Value())
		}
	case slotBio:
		before := a.bio.Value()
		a.bio, cmd = a.bio.Update(msg)
		if a.bio.Value() != before {
			a.setField(form.FieldBio, a.bio.Value())
		}
	}
	return cmd
}

func (a *App) setField(f form.Field, value string) {
	if err := a.session.SetField(f, value); err != nil {
		a.log.Warn().Err(err).Str("field", f.String()).Msg("field rejected")
		a.setStatus(err.Error(), true)
	}
}

// ---------------------------------------------------------------------------
// Choices
// ---------------------------------------------------------------------------

func (a *App) options(f form.Field) []string {
	switch f {
	case form.FieldPassingYear:
		return a.years
	case form.FieldCollegeCity:
		return form.Cities
	case form.FieldGender:
		out := make([]string, len(form.Genders))
		for i, g := range form.Genders {
			out[i] = string(g)
		}
		return out
	default:
		return nil
	}
}

func cycle(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	idx := slices.Index(options, current)
	if idx < 0 {
		if delta > 0 {
			return options[0]
		}
		return options[len(options)-1]
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

func (a *App) choose(cur slot, delta int) {
	switch cur.kind {
	case slotRadio, slotSelect:
		next := cycle(a.options(cur.field), a.session.Answers.Value(cur.field), delta)
		if next != "" {
			a.setField(cur.field, next)
		}
	case slotSkills:
		n := len(a.session.Answers.Skills)
		if n == 0 {
			return
		}
		a.chip = min(max(a.chip+delta, 0), n-1)
	}
}

func (a *App) removeChip() {
	skills := a.session.Answers.Skills
	if len(skills) == 0 {
		return
	}
	a.chip = min(max(a.chip, 0), len(skills)-1)
	name := skills[a.chip]
	if a.session.RemoveSkill(name) {
		a.setStatus("Removed "+name, false)
	}
	if n := len(a.session.Answers.Skills); a.chip >= n {
		a.chip = max(n-1, 0)
	}
}

func (a *App) openPicker(cur slot) {
	var items []picker.Item
	switch cur.kind {
	case slotSelect:
		title := selectYearPlaceholder
		if cur.field == form.FieldCollegeCity {
			title = selectCityPlaceholder
		}
		for i, opt := range a.options(cur.field) {
			items = append(items, picker.Item{ID: i, Label: opt})
		}
		a.picker = picker.New(title, items)
		a.picker.MoveTo(a.session.Answers.Value(cur.field))
	case slotSkills:
		for i, s := range form.SkillCatalog {
			it := picker.Item{ID: i, Label: s}
			if a.session.Answers.HasSkill(s) {
				it.Meta = "added"
			}
			items = append(items, it)
		}
		if a.skills == nil {
			a.skills = picker.New(selectSkillsPlaceholder, items)
		} else {
			a.skills.SetItems(items)
			a.skills.Reset()
		}
		a.picker = a.skills
	default:
		return
	}
	a.pickerField = cur.field
	a.pickerOpen = true
	a.setStatus("", false)
}

func (a *App) closePicker() {
	a.pickerOpen = false
	a.picker = nil
}

func (a *App) applyPick(it picker.Item) {
	if a.pickerField == noField {
		if !a.session.AddSkill(it.Label) {
			a.setStatus(it.Label+" is already added", true)
			return
		}
		a.chip = len(a.session.Answers.Skills) - 1
		a.setStatus("Added "+it.Label, false)
		return
	}
	a.setField(a.pickerField, it.Label)
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

func (a *App) transition(mv move) tea.Cmd {
	from := a.session.Screen()
	var err error
	switch mv {
	case moveNext:
		err = a.session.Next(a.ctx)
	case moveBack:
		err = a.session.Back(a.ctx)
	case moveSubmit:
		err = a.session.Submit(a.ctx)
	case moveAdvance:
		err = a.session.Advance(a.ctx)
	case moveEdit:
		err = a.session.Edit(a.ctx)
	}

	switch {
	case err == nil:
		a.focus = 0
		a.chip = 0
		a.setStatus("", false)
		if a.session.Submitted() {
			a.log.Info().Str("reference", a.session.Reference()).Msg("registration submitted")
		}
		return a.syncFocus()
	case errors.Is(err, wizard.ErrBlocked):
		failing := a.session.Errors.Fields()
		a.setStatus(fmt.Sprintf("Fix %d field(s) on this screen to continue", len(failing)), true)
		if len(failing) > 0 {
			a.focusField(failing[0])
		}
		return a.syncFocus()
	case errors.Is(err, wizard.ErrInvalidTransition):
		a.setStatus(unavailableHint(mv, from), true)
		return nil
	default:
		a.log.Error().Err(err).Int("screen", int(from)).Msg("transition failed")
		a.setStatus(err.Error(), true)
		return nil
	}
}

func unavailableHint(mv move, from form.Screen) string {
	switch mv {
	case moveBack:
		return "Already on the first screen"
	case moveNext:
		return "This is the last screen, submit to finish"
	case moveSubmit:
		return fmt.Sprintf("Submit is available on screen %d", form.ScreenCount)
	default:
		return fmt.Sprintf("Not available on screen %d", from)
	}
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}
