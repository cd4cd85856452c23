// Package review turns a submitted registration into the read-only summary
// shown after submission.
package review

import (
	"strings"

	"github.com/jask/regform/internal/form"
)

const (
	Title       = "Submitted Data"
	Banner      = "Form submitted successfully!"
	EditAction  = "Edit Information"
	noneSkills  = "None"
	referenceID = "Reference"
)

// Row is one labelled value.
type Row struct {
	Label string
	Value string
	Chips []string // set for list values such as skills
}

// Section groups rows under a heading.
type Section struct {
	Title string
	Rows  []Row
}

// Summary is the complete review screen content.
type Summary struct {
	Title     string
	Banner    string
	Reference string
	Sections  []Section
	Action    string
}

// Build reproduces every answer verbatim. Gender is capitalized for display;
// the stored value is not changed.
func Build(a form.Answers, reference string) Summary {
	passingYear := a.Value(form.FieldPassingYear)
	skills := strings.Join(a.Skills, ", ")
	if skills == "" {
		skills = noneSkills
	}
	return Summary{
		Title:     Title,
		Banner:    Banner,
		Reference: reference,
		Action:    EditAction,
		Sections: []Section{
			{
				Title: form.ScreenPersonal.Title(),
				Rows: []Row{
					{Label: "Name", Value: a.Name},
					{Label: "Email", Value: a.Email},
					{Label: "Contact Number", Value: a.ContactNumber},
					{Label: "Gender", Value: a.Gender.Display()},
				},
			},
			{
				Title: form.ScreenEducation.Title(),
				Rows: []Row{
					{Label: "College/School", Value: a.College},
					{Label: "Passing Year", Value: passingYear},
					{Label: "College City", Value: a.CollegeCity},
				},
			},
			{
				Title: form.ScreenAdditional.Title(),
				Rows: []Row{
					{Label: "Bio", Value: a.Bio},
					{Label: "Skills", Value: skills, Chips: append([]string(nil), a.Skills...)},
				},
			},
		},
	}
}

// Text renders the summary without styling.
func (s Summary) Text() string {
	var b strings.Builder
	b.WriteString(s.Title)
	b.WriteString("\n\n")
	b.WriteString(s.Banner)
	b.WriteString("\n")
	if s.Reference != "" {
		b.WriteString(referenceID + ": " + s.Reference + "\n")
	}
	for _, sec := range s.Sections {
		b.WriteString("\n" + sec.Title + "\n")
		for _, row := range sec.Rows {
			b.WriteString("  " + row.Label + ": " + row.Value + "\n")
		}
	}
	b.WriteString("\n[" + s.Action + "]\n")
	return b.String()
}
