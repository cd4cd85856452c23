package form

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Gender is the stored, lowercase gender value. The zero value means unset.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the selectable options in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// ParseGender accepts a stored gender value or the empty string.
func ParseGender(s string) (Gender, error) {
	g := Gender(s)
	if g == GenderUnset {
		return g, nil
	}
	for _, opt := range Genders {
		if g == opt {
			return g, nil
		}
	}
	return GenderUnset, fmt.Errorf("unknown gender %q", s)
}

// Display capitalizes the value for presentation only.
func (g Gender) Display() string {
	if g == GenderUnset {
		return ""
	}
	s := string(g)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Cities is the fixed set of college cities.
var Cities = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad"}

// SkillCatalog is the fixed set of skills a user may add.
var SkillCatalog = []string{"JavaScript", "React", "Python", "Java", "C++", "Node.js"}

// DefaultYearSpan is how many passing years are offered.
const DefaultYearSpan = 10

// PassingYears returns span consecutive years starting at now's year.
func PassingYears(now time.Time, span int) []int {
	if span <= 0 {
		span = DefaultYearSpan
	}
	first := now.Year()
	out := make([]int, span)
	for i := range out {
		out[i] = first + i
	}
	return out
}

// IsCity reports whether name is one of Cities.
func IsCity(name string) bool {
	return slices.Contains(Cities, name)
}

// IsSkill reports whether name is one of SkillCatalog.
func IsSkill(name string) bool {
	return slices.Contains(SkillCatalog, name)
}

