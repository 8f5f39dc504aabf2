// Package clierr defines the error taxonomy shared by the scaffolding core.
// Every error carries a kind, a structured context bag, and a creation
// timestamp so the driver can log and present failures uniformly.
package clierr

import (
	"errors"
	"strings"
	"time"
)

// Kind categorizes an error for propagation policy decisions.
type Kind string

const (
	// KindValidation marks a prompt value that failed its rule. Recoverable;
	// the prompt engine re-asks and never lets these escape.
	KindValidation Kind = "validation"

	// KindTemplate marks a missing or malformed template definition. Fatal.
	KindTemplate Kind = "template"

	// KindFileSystem marks a failed directory or file write. Fatal for
	// generation; files already written stay in place.
	KindFileSystem Kind = "filesystem"

	// KindDependency marks a failed install step. Degraded, not fatal:
	// generation continues and the user gets a manual-recovery hint.
	KindDependency Kind = "dependency"

	// KindPlugin marks an install/uninstall/configuration violation on a
	// plugin. Fatal to that operation only.
	KindPlugin Kind = "plugin"

	// KindConfiguration marks malformed CLI setup. Fatal at startup.
	KindConfiguration Kind = "configuration"
)

// Context is the structured context bag attached to every Error.
type Context struct {
	Operation   string
	ProjectName string
	Template    string
	FilePath    string
	Extra       map[string]string
}

// Error is a categorized error with structured context and a timestamp.
type Error struct {
	Kind      Kind
	Message   string
	Context   Context
	Timestamp time.Time
	Cause     error
}

// New creates an Error of the given kind.
func New(kind Kind, message string, ctx Context) *Error {
	return &Error{
		Kind:      kind,
		Message:   message,
		Context:   ctx,
		Timestamp: time.Now(),
	}
}

// Wrap creates an Error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, message string, cause error, ctx Context) *Error {
	e := New(kind, message, ctx)
	e.Cause = cause
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("[")
	b.WriteString(string(e.Kind))
	b.WriteString("] ")
	b.WriteString(e.Message)

	if e.Context.Operation != "" {
		b.WriteString(" (operation: ")
		b.WriteString(e.Context.Operation)
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Fields flattens the error into key-value pairs for structured logging.
func (e *Error) Fields() []any {
	kv := []any{"kind", string(e.Kind), "timestamp", e.Timestamp.Format(time.RFC3339)}
	if e.Context.Operation != "" {
		kv = append(kv, "operation", e.Context.Operation)
	}
	if e.Context.ProjectName != "" {
		kv = append(kv, "project", e.Context.ProjectName)
	}
	if e.Context.Template != "" {
		kv = append(kv, "template", e.Context.Template)
	}
	if e.Context.FilePath != "" {
		kv = append(kv, "file", e.Context.FilePath)
	}
	for k, v := range e.Context.Extra {
		kv = append(kv, k, v)
	}
	return kv
}

// IsKind reports whether err (or anything it wraps) is an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}
