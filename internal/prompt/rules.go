package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is a pure validation predicate over a submitted value and the answers
// accumulated so far. Validate returns ok plus a failure message; when the
// returned message is empty, Message is shown instead.
type Rule struct {
	Validate func(value string, answers AnswerSet) (bool, string)
	Message  string
}

// Apply runs the rule and resolves the message fallback.
func (r *Rule) Apply(value string, answers AnswerSet) (bool, string) {
	ok, msg := r.Validate(value, answers)
	if ok {
		return true, ""
	}
	if msg == "" {
		msg = r.Message
	}
	if msg == "" {
		msg = "invalid value"
	}
	return false, msg
}

// NonEmpty rejects blank submissions.
func NonEmpty() *Rule {
	return &Rule{
		Validate: func(value string, _ AnswerSet) (bool, string) {
			return strings.TrimSpace(value) != "", ""
		},
		Message: "a value is required",
	}
}

// MinLength rejects values shorter than n characters.
func MinLength(n int) *Rule {
	return &Rule{
		Validate: func(value string, _ AnswerSet) (bool, string) {
			if len(value) < n {
				return false, fmt.Sprintf("must be at least %d characters", n)
			}
			return true, ""
		},
	}
}

// Matches rejects values that do not match the pattern.
func Matches(pattern *regexp.Regexp, message string) *Rule {
	return &Rule{
		Validate: func(value string, _ AnswerSet) (bool, string) {
			return pattern.MatchString(value), ""
		},
		Message: message,
	}
}

var projectNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ProjectName validates a project or package name: lowercase alphanumerics
// and hyphens, starting with an alphanumeric.
func ProjectName() *Rule {
	return Matches(projectNamePattern, "name must match pattern [a-z0-9][a-z0-9-]*")
}

// ValidProjectName reports whether name is a valid project name. The CLI
// front end uses this for names given as arguments rather than via prompts.
func ValidProjectName(name string) bool {
	return projectNamePattern.MatchString(name)
}
