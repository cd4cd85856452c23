package form

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
)

// answersFile is the TOML shape of a prefilled registration, keyed by the
// fields' wire names.
type answersFile struct {
	Name          string   `toml:"name"`
	Email         string   `toml:"email"`
	ContactNumber string   `toml:"contactNumber"`
	Gender        string   `toml:"gender"`
	College       string   `toml:"college"`
	PassingYear   int      `toml:"passingYear"`
	CollegeCity   string   `toml:"collegeCity"`
	Bio           string   `toml:"bio"`
	Skills        []string `toml:"skills"`
}

// LoadAnswers reads a prefilled registration from path. Option sets are
// enforced as Set enforces them; rule violations are not errors here, the
// screen gates report them.
func LoadAnswers(path string) (Answers, error) {
	var f answersFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Answers{}, fmt.Errorf("read answers %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Answers{}, fmt.Errorf("read answers %s: unknown key %q", path, undecoded[0].String())
	}

	values := map[Field]string{
		FieldName:          f.Name,
		FieldEmail:         f.Email,
		FieldContactNumber: f.ContactNumber,
		FieldGender:        f.Gender,
		FieldCollege:       f.College,
		FieldCollegeCity:   f.CollegeCity,
		FieldBio:           f.Bio,
	}
	if f.PassingYear != 0 {
		values[FieldPassingYear] = strconv.Itoa(f.PassingYear)
	}

	var a Answers
	for _, field := range Fields() {
		if err := a.Set(field, values[field]); err != nil {
			return Answers{}, fmt.Errorf("read answers %s: %w", path, err)
		}
	}
	for _, s := range f.Skills {
		if !IsSkill(s) {
			return Answers{}, fmt.Errorf("read answers %s: skill %q is not in the catalog", path, s)
		}
		a.AddSkill(s)
	}
	return a, nil
}
