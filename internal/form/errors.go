package form

// Errors maps a field to its current failure message. A missing key means the
// field is valid.
type Errors map[Field]string

// Get returns the message for f, or "".
func (e Errors) Get(f Field) string {
	return e[f]
}

// Set records msg for f; an empty msg clears it.
func (e Errors) Set(f Field, msg string) {
	if msg == "" {
		delete(e, f)
		return
	}
	e[f] = msg
}

// Empty reports whether no field is failing.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Fields returns the failing fields in form order.
func (e Errors) Fields() []Field {
	var out []Field
	for _, f := range Fields() {
		if _, ok := e[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Touched records which fields the user has left at least once.
type Touched map[Field]bool
