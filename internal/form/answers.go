package form

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Answers is the single registration record edited across the three screens.
type Answers struct {
	Name          string
	Email         string
	ContactNumber string
	Gender        Gender
	College       string
	PassingYear   int // 0 when unset
	CollegeCity   string
	Bio           string
	Skills        []string
}

// Value renders f as the string the validator sees.
func (a Answers) Value(f Field) string {
	switch f {
	case FieldName:
		return a.Name
	case FieldEmail:
		return a.Email
	case FieldContactNumber:
		return a.ContactNumber
	case FieldGender:
		return string(a.Gender)
	case FieldCollege:
		return a.College
	case FieldPassingYear:
		if a.PassingYear == 0 {
			return ""
		}
		return strconv.Itoa(a.PassingYear)
	case FieldCollegeCity:
		return a.CollegeCity
	case FieldBio:
		return a.Bio
	default:
		return ""
	}
}

// Set parses value into f. Enumerated fields reject values outside their
// option set and leave the record untouched on error.
func (a *Answers) Set(f Field, value string) error {
	switch f {
	case FieldName:
		a.Name = value
	case FieldEmail:
		a.Email = value
	case FieldContactNumber:
		a.ContactNumber = value
	case FieldGender:
		g, err := ParseGender(value)
		if err != nil {
			return err
		}
		a.Gender = g
	case FieldCollege:
		a.College = value
	case FieldPassingYear:
		value = strings.TrimSpace(value)
		if value == "" {
			a.PassingYear = 0
			return nil
		}
		year, err := strconv.Atoi(value)
		if err != nil || year <= 0 {
			return fmt.Errorf("passing year %q: not a year", value)
		}
		a.PassingYear = year
	case FieldCollegeCity:
		if value != "" && !IsCity(value) {
			return fmt.Errorf("college city %q: not in the city list", value)
		}
		a.CollegeCity = value
	case FieldBio:
		a.Bio = value
	default:
		return fmt.Errorf("set field %d: unknown field", int(f))
	}
	return nil
}

// AddSkill appends skill if it is in the catalog and not yet selected.
// It reports whether the set changed.
func (a *Answers) AddSkill(skill string) bool {
	if !IsSkill(skill) || a.HasSkill(skill) {
		return false
	}
	a.Skills = append(a.Skills, skill)
	return true
}

// RemoveSkill deletes skill, reporting whether it was present.
func (a *Answers) RemoveSkill(skill string) bool {
	idx := slices.Index(a.Skills, skill)
	if idx < 0 {
		return false
	}
	a.Skills = slices.Delete(a.Skills, idx, idx+1)
	return true
}

// HasSkill reports whether skill is already selected.
func (a Answers) HasSkill(skill string) bool {
	return slices.Contains(a.Skills, skill)
}

// Clone returns a copy that shares no slice storage with a.
func (a Answers) Clone() Answers {
	out := a
	out.Skills = slices.Clone(a.Skills)
	return out
}
