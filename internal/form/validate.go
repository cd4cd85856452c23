package form

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailPart excludes "@" and every Unicode space: ASCII whitespace, vertical
// tab, the Z categories, NEL and the byte-order mark.
const emailPart = `[^\s\x0B\p{Z}\x{85}\x{FEFF}@]+`

var (
	emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

type rule struct {
	tag     string
	message string
}

// rules is indexed by Field so that adding a Field without a rule leaves a
// zero entry the tests catch.
var rules = [fieldCount]rule{
	FieldName:          {tag: "min=2", message: "Name must be at least 2 characters long"},
	FieldEmail:         {tag: "simple_email", message: "Please enter a valid email address"},
	FieldContactNumber: {tag: "phone10", message: "Please enter a valid 10-digit phone number"},
	FieldGender:        {tag: "required,oneof=male female other", message: "Please select a gender"},
	FieldCollege:       {tag: "min=3", message: "College name must be at least 3 characters long"},
	FieldPassingYear:   {tag: "required,numeric", message: "Please select your passing year"},
	FieldCollegeCity:   {tag: "required", message: "Please select your college city"},
	FieldBio:           {tag: "min=50", message: "Bio must be at least 50 characters long"},
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	mustRegister(v, "simple_email", func(fl validator.FieldLevel) bool {
		return ValidateEmail(fl.Field().String())
	})
	mustRegister(v, "phone10", func(fl validator.FieldLevel) bool {
		return ValidatePhone(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("form: register " + tag + ": " + err.Error())
	}
}

// ValidateEmail reports whether s looks like local@domain.tld: no whitespace,
// exactly one "@", and a dot somewhere after it.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePhone reports whether s is exactly ten ASCII digits.
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidateField returns the failure message for value in f, or "" if it passes.
func ValidateField(f Field, value string) string {
	if !f.Valid() {
		return ""
	}
	r := rules[f]
	if err := validate.Var(value, r.tag); err != nil {
		return r.message
	}
	return ""
}

// ValidateNamed is the string-keyed entry point. Unknown names pass.
func ValidateNamed(name, value string) string {
	f, ok := ParseField(name)
	if !ok {
		return ""
	}
	return ValidateField(f, value)
}

// ValidateScreen checks exactly the fields owned by s.
func ValidateScreen(a Answers, s Screen) Errors {
	errs := Errors{}
	for _, f := range s.Fields() {
		errs.Set(f, ValidateField(f, a.Value(f)))
	}
	return errs
}

// ValidateAll checks every field regardless of screen.
func ValidateAll(a Answers) Errors {
	errs := Errors{}
	for _, f := range Fields() {
		errs.Set(f, ValidateField(f, a.Value(f)))
	}
	return errs
}
