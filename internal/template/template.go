// Package template defines project templates: named bundles of file
// specifications, manifest dependency/script declarations, template-owned
// prompts, and an optional post-generation hook.
package template

import (
	"context"

	"github.com/OctaEDLP00/cli-builder-core/internal/prompt"
)

// ContentFunc produces file content from the resolved answers.
type ContentFunc func(answers prompt.AnswerSet) string

// FileSpec describes one file to materialize. Content is used verbatim when
// Render is nil; Render takes precedence when set. A FileSpec with no When
// predicate is always written.
type FileSpec struct {
	// Path is the file's location relative to the project directory.
	Path string

	// Content is the literal file content.
	Content string

	// Render produces the content from the answer set.
	Render ContentFunc

	// When gates the file on the answer set; false skips the file.
	When func(prompt.AnswerSet) bool
}

// Resolve returns the file's content for the given answers.
func (f FileSpec) Resolve(answers prompt.AnswerSet) string {
	if f.Render != nil {
		return f.Render(answers)
	}
	return f.Content
}

// Included reports whether the file should be written for the given answers.
func (f FileSpec) Included(answers prompt.AnswerSet) bool {
	return f.When == nil || f.When(answers)
}

// Dependencies holds the manifest dependency maps, each from package name to
// a semver-like version range string.
type Dependencies struct {
	Runtime map[string]string
	Dev     map[string]string
	Peer    map[string]string
}

// Empty reports whether no dependency map has entries.
func (d Dependencies) Empty() bool {
	return len(d.Runtime) == 0 && len(d.Dev) == 0 && len(d.Peer) == 0
}

// PostInstallFunc is user-declared template logic run after files, manifest,
// and dependency install. A failure here is fatal to generation: it is
// presumed essential to a correct project.
type PostInstallFunc func(ctx context.Context, projectPath string, answers prompt.AnswerSet) error

// Definition is a named project template. Definitions are constructed once
// at configuration time (built in, or contributed by a plugin) and treated
// as read-only for the run's duration.
type Definition struct {
	// Name is the unique template key.
	Name string

	// Description is the one-line summary shown by the list command.
	Description string

	// Prompts are asked, in order, before generation.
	Prompts []prompt.Definition

	// Files are materialized in declaration order; a later FileSpec with the
	// same path overwrites an earlier one.
	Files []FileSpec

	// Dependencies feed the generated manifest's dependency maps.
	Dependencies Dependencies

	// Scripts feed the generated manifest's scripts map.
	Scripts map[string]string

	// PostInstall, when set, runs after the install step completes.
	PostInstall PostInstallFunc
}
