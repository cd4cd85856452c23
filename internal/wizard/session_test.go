package wizard

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/regform/internal/form"
)

const validBio = "I build small tools and enjoy learning new languages every year."

func fixedID() string { return "ref-1" }

func fillPersonal(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.SetField(form.FieldName, "Al"))
	require.NoError(t, s.SetField(form.FieldEmail, "al@x.com"))
	require.NoError(t, s.SetField(form.FieldContactNumber, "9998887776"))
	require.NoError(t, s.SetField(form.FieldGender, "male"))
}

func fillEducation(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.SetField(form.FieldCollege, "IIT Bombay"))
	require.NoError(t, s.SetField(form.FieldPassingYear, "2027"))
	require.NoError(t, s.SetField(form.FieldCollegeCity, "Mumbai"))
}

func TestNewSessionStartsOnFirstScreen(t *testing.T) {
	s := New()
	require.Equal(t, form.ScreenPersonal, s.Screen())
	require.False(t, s.Submitted())
	require.Empty(t, s.Reference())
	require.True(t, s.Errors.Empty())
}

func TestNextBlockedWhileAnyPersonalFieldInvalid(t *testing.T) {
	ctx := context.Background()
	for _, f := range form.ScreenPersonal.Fields() {
		t.Run(f.String(), func(t *testing.T) {
			s := New()
			fillPersonal(t, s)
			require.NoError(t, s.SetField(f, ""))

			err := s.Next(ctx)
			require.ErrorIs(t, err, ErrBlocked)
			require.Equal(t, form.ScreenPersonal, s.Screen())
			require.Equal(t, []form.Field{f}, s.Errors.Fields())
			require.NotEmpty(t, s.VisibleError(f))
		})
	}
}

func TestStrictGateRejectsOneCharacterName(t *testing.T) {
	s := New()
	fillPersonal(t, s)
	require.NoError(t, s.SetField(form.FieldName, "A"))

	require.ErrorIs(t, s.Next(context.Background()), ErrBlocked)
	require.Equal(t, "Name must be at least 2 characters long", s.VisibleError(form.FieldName))
}

func TestGateShowsAllFailuresInline(t *testing.T) {
	s := New()
	require.ErrorIs(t, s.Next(context.Background()), ErrBlocked)
	for _, f := range form.ScreenPersonal.Fields() {
		require.NotEmpty(t, s.VisibleError(f), "field %s", f)
	}
	require.Empty(t, s.VisibleError(form.FieldCollege), "other screens are not gated")
}

func TestEducationScreenBlocksOnBlankCollege(t *testing.T) {
	ctx := context.Background()
	s := New()
	fillPersonal(t, s)
	require.NoError(t, s.Next(ctx))
	require.Equal(t, form.ScreenEducation, s.Screen())

	require.NoError(t, s.SetField(form.FieldPassingYear, "2027"))
	require.NoError(t, s.SetField(form.FieldCollegeCity, "Delhi"))
	require.ErrorIs(t, s.Next(ctx), ErrBlocked)
	require.Equal(t, form.ScreenEducation, s.Screen())
	require.Equal(t, "College name must be at least 3 characters long", s.VisibleError(form.FieldCollege))
}

func TestSubmitBlockedOnShortBio(t *testing.T) {
	ctx := context.Background()
	s := New()
	fillPersonal(t, s)
	require.NoError(t, s.Next(ctx))
	fillEducation(t, s)
	require.NoError(t, s.Next(ctx))

	require.NoError(t, s.SetField(form.FieldBio, strings.Repeat("b", 49)))
	require.ErrorIs(t, s.Submit(ctx), ErrBlocked)
	require.False(t, s.Submitted())
	require.Equal(t, "Bio must be at least 50 characters long", s.VisibleError(form.FieldBio))
}

func TestSkillsNeverBlockSubmission(t *testing.T) {
	ctx := context.Background()
	s := New(WithIDGenerator(fixedID))
	fillPersonal(t, s)
	require.NoError(t, s.Next(ctx))
	fillEducation(t, s)
	require.NoError(t, s.Next(ctx))
	require.NoError(t, s.SetField(form.FieldBio, validBio))

	require.Empty(t, s.Answers.Skills)
	require.NoError(t, s.Submit(ctx))
	require.True(t, s.Submitted())
}

func TestBackIsUnconditionalAndKeepsAnswers(t *testing.T) {
	ctx := context.Background()
	s := New()
	fillPersonal(t, s)
	require.NoError(t, s.Next(ctx))
	require.NoError(t, s.SetField(form.FieldCollege, "X"))

	require.NoError(t, s.Back(ctx))
	require.Equal(t, form.ScreenPersonal, s.Screen())
	require.Equal(t, "X", s.Answers.College)
	require.Equal(t, "Al", s.Answers.Name)
}

func TestInvalidTransitions(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.ErrorIs(t, s.Back(ctx), ErrInvalidTransition)
	require.ErrorIs(t, s.Submit(ctx), ErrInvalidTransition)
	require.ErrorIs(t, s.Edit(ctx), ErrInvalidTransition)
	require.Equal(t, form.ScreenPersonal, s.Screen())
	require.True(t, s.Errors.Empty(), "invalid transitions must not run the gate")
}

func TestTouchedFieldRevalidatesOnChange(t *testing.T) {
	s := New()
	require.NoError(t, s.SetField(form.FieldEmail, "bad"))
	require.Empty(t, s.VisibleError(form.FieldEmail), "untouched fields stay quiet")

	s.Blur(form.FieldEmail)
	require.Equal(t, "Please enter a valid email address", s.VisibleError(form.FieldEmail))

	require.NoError(t, s.SetField(form.FieldEmail, "user@example.com"))
	require.Empty(t, s.VisibleError(form.FieldEmail))
}

func TestSetFieldRejectsBadEnumValue(t *testing.T) {
	s := New()
	err := s.SetField(form.FieldGender, "robot")
	require.Error(t, err)
	require.Equal(t, form.GenderUnset, s.Answers.Gender)
}

func TestSkillSelector(t *testing.T) {
	s := New()
	require.True(t, s.AddSkill("React"))
	require.False(t, s.AddSkill("React"))
	require.Equal(t, []string{"React"}, s.Answers.Skills)

	require.False(t, s.RemoveSkill("Java"))
	require.True(t, s.AddSkill("Python"))
	require.True(t, s.RemoveSkill("React"))
	require.Equal(t, []string{"Python"}, s.Answers.Skills)
}

func TestEndToEndSubmitAndEdit(t *testing.T) {
	ctx := context.Background()
	s := New(WithIDGenerator(fixedID))

	fillPersonal(t, s)
	require.NoError(t, s.Advance(ctx))
	require.Equal(t, form.ScreenEducation, s.Screen())

	require.ErrorIs(t, s.Advance(ctx), ErrBlocked)
	require.Equal(t, "College name must be at least 3 characters long", s.VisibleError(form.FieldCollege))

	fillEducation(t, s)
	require.NoError(t, s.Advance(ctx))
	require.Equal(t, form.ScreenAdditional, s.Screen())

	require.NoError(t, s.SetField(form.FieldBio, validBio))
	s.AddSkill("React")
	require.NoError(t, s.Advance(ctx))
	require.True(t, s.Submitted())
	require.Equal(t, form.Screen(0), s.Screen())
	require.Equal(t, "ref-1", s.Reference())

	require.ErrorIs(t, s.SetField(form.FieldName, "Bob"), ErrSubmitted)
	require.False(t, s.AddSkill("Java"))
	require.ErrorIs(t, s.Next(ctx), ErrInvalidTransition)

	require.NoError(t, s.Edit(ctx))
	require.Equal(t, form.ScreenPersonal, s.Screen())
	require.Empty(t, s.Reference())
	require.True(t, s.Errors.Empty())
	require.Empty(t, s.Touched)

	require.Equal(t, "Al", s.Answers.Name)
	require.Equal(t, "al@x.com", s.Answers.Email)
	require.Equal(t, "9998887776", s.Answers.ContactNumber)
	require.Equal(t, form.GenderMale, s.Answers.Gender)
	require.Equal(t, "IIT Bombay", s.Answers.College)
	require.Equal(t, 2027, s.Answers.PassingYear)
	require.Equal(t, "Mumbai", s.Answers.CollegeCity)
	require.Equal(t, validBio, s.Answers.Bio)
	require.Equal(t, []string{"React"}, s.Answers.Skills)
}

func TestDefaultReferenceIsUUID(t *testing.T) {
	ctx := context.Background()
	s := New(WithAnswers(form.Answers{
		Name: "Al", Email: "al@x.com", ContactNumber: "9998887776", Gender: form.GenderOther,
		College: "NIT", PassingYear: 2026, CollegeCity: "Chennai", Bio: validBio,
	}))
	require.NoError(t, s.Advance(ctx))
	require.NoError(t, s.Advance(ctx))
	require.NoError(t, s.Advance(ctx))
	require.Len(t, s.Reference(), 36)
}
