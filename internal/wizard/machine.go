package wizard

import (
	"context"

	"github.com/looplab/fsm"

	"github.com/jask/regform/internal/form"
)

const (
	statePersonal   = "personal"
	stateEducation  = "education"
	stateAdditional = "additional"
	stateSubmitted  = "submitted"

	eventNext   = "next"
	eventBack   = "back"
	eventSubmit = "submit"
	eventEdit   = "edit"
)

var stateScreens = map[string]form.Screen{
	statePersonal:   form.ScreenPersonal,
	stateEducation:  form.ScreenEducation,
	stateAdditional: form.ScreenAdditional,
}

func screenOf(state string) form.Screen {
	return stateScreens[state]
}

func newMachine(s *Session) *fsm.FSM {
	guard := func(_ context.Context, e *fsm.Event) {
		if err := s.gate(screenOf(e.Src)); err != nil {
			e.Cancel(err)
		}
	}
	return fsm.NewFSM(
		statePersonal,
		fsm.Events{
			{Name: eventNext, Src: []string{statePersonal}, Dst: stateEducation},
			{Name: eventNext, Src: []string{stateEducation}, Dst: stateAdditional},
			{Name: eventBack, Src: []string{stateEducation}, Dst: statePersonal},
			{Name: eventBack, Src: []string{stateAdditional}, Dst: stateEducation},
			{Name: eventSubmit, Src: []string{stateAdditional}, Dst: stateSubmitted},
			{Name: eventEdit, Src: []string{stateSubmitted}, Dst: statePersonal},
		},
		fsm.Callbacks{
			"before_" + eventNext:   guard,
			"before_" + eventSubmit: guard,
			"enter_" + stateSubmitted: func(_ context.Context, _ *fsm.Event) {
				s.reference = s.newID()
			},
			"after_" + eventEdit: func(_ context.Context, _ *fsm.Event) {
				s.Errors = form.Errors{}
				s.Touched = form.Touched{}
				s.reference = ""
			},
		},
	)
}
