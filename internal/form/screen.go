package form

// Screen is one of the three sequential field groups.
type Screen int

const (
	ScreenPersonal   Screen = 1
	ScreenEducation  Screen = 2
	ScreenAdditional Screen = 3
)

// ScreenCount is the number of composing screens.
const ScreenCount = 3

var screenFields = map[Screen][]Field{
	ScreenPersonal:   {FieldName, FieldEmail, FieldContactNumber, FieldGender},
	ScreenEducation:  {FieldCollege, FieldPassingYear, FieldCollegeCity},
	ScreenAdditional: {FieldBio},
}

var screenTitles = map[Screen]string{
	ScreenPersonal:   "Personal Information",
	ScreenEducation:  "Educational Information",
	ScreenAdditional: "Additional Information",
}

// Fields returns the validated fields owned by s, in display order.
func (s Screen) Fields() []Field {
	return append([]Field(nil), screenFields[s]...)
}

// Title names the section the screen collects.
func (s Screen) Title() string {
	return screenTitles[s]
}

// Valid reports whether s is one of the three screens.
func (s Screen) Valid() bool {
	return s >= ScreenPersonal && s <= ScreenAdditional
}

// ScreenOf returns the screen that owns f.
func ScreenOf(f Field) Screen {
	for s, fields := range screenFields {
		for _, candidate := range fields {
			if candidate == f {
				return s
			}
		}
	}
	return 0
}
