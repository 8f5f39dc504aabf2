// Package prompt implements the interactive prompt resolution engine: it
// walks an ordered list of prompt definitions, applies conditional
// visibility and validation-with-retry, and produces a finished answer set.
package prompt

// Kind discriminates the four prompt variants. Dispatch is a closed switch
// on this tag; there is no runtime type inspection.
type Kind string

const (
	KindInput       Kind = "input"
	KindSelect      Kind = "select"
	KindConfirm     Kind = "confirm"
	KindMultiSelect Kind = "multiselect"
)

// Choice is one entry of a select or multiselect prompt. The user picks by
// 1-based index; the stored answer is Value, never Label.
type Choice struct {
	Label       string
	Value       string
	Description string
}

// Definition describes one question. Definitions are constructed once at
// configuration time and treated as read-only for the run's duration.
type Definition struct {
	// Name is the unique answer key.
	Name string

	// Kind selects the prompt variant.
	Kind Kind

	// Message is the question text shown to the user.
	Message string

	// Default is the fallback value: a string for input prompts (substituted
	// on empty submission) or a bool for confirm prompts (shapes the Y/n
	// hint only; see the engine's confirm contract).
	Default any

	// Choices is the ordered option list for select and multiselect kinds.
	Choices []Choice

	// Rule, when set, validates input-kind submissions; failures re-prompt.
	Rule *Rule

	// When, when set, gates the prompt on the answers accumulated so far.
	// A false result skips the prompt entirely: its name never appears in
	// the answer set.
	When func(AnswerSet) bool

	// Transform, when set, maps the raw resolved value before storing.
	Transform func(any) any
}
