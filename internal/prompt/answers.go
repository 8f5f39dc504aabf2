package prompt

// AnswerSet maps prompt names to resolved values for one run. Values are
// strings (input, select), bools (confirm), or []string (multiselect).
// Once a key is set it is never overwritten by a later prompt with the same
// name: a command-line flag can pre-seed an answer and suppress its prompt.
type AnswerSet map[string]any

// Has reports whether the name has been answered.
func (a AnswerSet) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the answer as a string, or "" when unset or not a string.
func (a AnswerSet) String(name string) string {
	if s, ok := a[name].(string); ok {
		return s
	}
	return ""
}

// Bool returns the answer as a bool, or false when unset or not a bool.
func (a AnswerSet) Bool(name string) bool {
	if b, ok := a[name].(bool); ok {
		return b
	}
	return false
}

// List returns the answer as a string slice, or nil when unset.
func (a AnswerSet) List(name string) []string {
	if l, ok := a[name].([]string); ok {
		return l
	}
	return nil
}

// Clone returns a shallow copy. The engine clones the seed so callers keep
// their original map untouched.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
