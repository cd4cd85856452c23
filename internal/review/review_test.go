package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/regform/internal/form"
)

func sampleAnswers() form.Answers {
	return form.Answers{
		Name:          "Al",
		Email:         "al@x.com",
		ContactNumber: "9998887776",
		Gender:        form.GenderFemale,
		College:       "IIT Bombay",
		PassingYear:   2027,
		CollegeCity:   "Mumbai",
		Bio:           strings.Repeat("bio ", 15),
		Skills:        []string{"React", "Python"},
	}
}

func TestBuildSectionsInOrder(t *testing.T) {
	s := Build(sampleAnswers(), "ref")
	require.Len(t, s.Sections, 3)
	require.Equal(t, "Personal Information", s.Sections[0].Title)
	require.Equal(t, "Educational Information", s.Sections[1].Title)
	require.Equal(t, "Additional Information", s.Sections[2].Title)
	require.Equal(t, "Edit Information", s.Action)
	require.Equal(t, "ref", s.Reference)
}

func TestBuildReproducesValuesVerbatim(t *testing.T) {
	a := sampleAnswers()
	s := Build(a, "")

	values := map[string]string{}
	for _, sec := range s.Sections {
		for _, row := range sec.Rows {
			values[row.Label] = row.Value
		}
	}
	require.Equal(t, a.Name, values["Name"])
	require.Equal(t, a.Email, values["Email"])
	require.Equal(t, a.ContactNumber, values["Contact Number"])
	require.Equal(t, "Female", values["Gender"])
	require.Equal(t, a.College, values["College/School"])
	require.Equal(t, "2027", values["Passing Year"])
	require.Equal(t, a.CollegeCity, values["College City"])
	require.Equal(t, a.Bio, values["Bio"])
	require.Equal(t, "React, Python", values["Skills"])

	require.Equal(t, form.GenderFemale, a.Gender, "stored gender stays lowercase")
}

func TestBuildSkillChips(t *testing.T) {
	s := Build(sampleAnswers(), "")
	skills := s.Sections[2].Rows[1]
	require.Equal(t, []string{"React", "Python"}, skills.Chips)

	a := sampleAnswers()
	a.Skills = nil
	skills = Build(a, "").Sections[2].Rows[1]
	require.Equal(t, "None", skills.Value)
	require.Empty(t, skills.Chips)
}

func TestTextContainsEverything(t *testing.T) {
	out := Build(sampleAnswers(), "abc-123").Text()
	for _, want := range []string{
		"Submitted Data", "Form submitted successfully!", "Reference: abc-123",
		"Name: Al", "Email: al@x.com", "Gender: Female", "Passing Year: 2027",
		"College City: Mumbai", "Skills: React, Python", "[Edit Information]",
	} {
		require.Contains(t, out, want)
	}
}
