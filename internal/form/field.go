package form

// Field identifies one validated input of the registration form. Skills are
// deliberately absent: they are optional and carry no rule.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldContactNumber
	FieldGender
	FieldCollege
	FieldPassingYear
	FieldCollegeCity
	FieldBio

	fieldCount
)

type fieldMeta struct {
	name  string
	label string
}

var fieldTable = [fieldCount]fieldMeta{
	FieldName:          {name: "name", label: "Name"},
	FieldEmail:         {name: "email", label: "Email"},
	FieldContactNumber: {name: "contactNumber", label: "Contact Number"},
	FieldGender:        {name: "gender", label: "Gender"},
	FieldCollege:       {name: "college", label: "College/School Name"},
	FieldPassingYear:   {name: "passingYear", label: "Passing Year"},
	FieldCollegeCity:   {name: "collegeCity", label: "College City"},
	FieldBio:           {name: "bio", label: "Bio"},
}

// Fields returns every field in form order.
func Fields() []Field {
	out := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		out = append(out, f)
	}
	return out
}

// Valid reports whether f is one of the declared fields.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

// String returns the wire name, e.g. "contactNumber".
func (f Field) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return fieldTable[f].name
}

// Label is the human-facing caption shown next to the input.
func (f Field) Label() string {
	if !f.Valid() {
		return ""
	}
	return fieldTable[f].label
}

// ParseField maps a wire name back to its Field.
func ParseField(name string) (Field, bool) {
	for f := Field(0); f < fieldCount; f++ {
		if fieldTable[f].name == name {
			return f, true
		}
	}
	return 0, false
}
