// Package plugin implements the plugin registry and hook orchestrator.
// Plugins contribute lifecycle hooks, templates, validators, and themes;
// the orchestrator fans named lifecycle events out to every installed
// plugin with per-handler failure isolation.
package plugin

import (
	"context"

	"github.com/OctaEDLP00/cli-builder-core/internal/prompt"
	"github.com/OctaEDLP00/cli-builder-core/internal/template"
)

// Lifecycle event names the driver fires around generation.
const (
	EventBeforeGenerate = "beforeGenerate"
	EventAfterGenerate  = "afterGenerate"
)

// HookFunc handles one lifecycle event. The payload is caller-defined and
// positional. Handlers run concurrently with other plugins' handlers for
// the same event; a returned error or panic is isolated to this plugin.
type HookFunc func(ctx context.Context, payload ...any) error

// ErrorHookFunc receives a handler failure and a context string of the form
// "hook:<eventName>". Its own failures are logged and swallowed.
type ErrorHookFunc func(err error, context string)

// Definition is an installable plugin. Name is the primary key: installing
// an already-present name is rejected, not merged. Definitions are treated
// as read-only after installation.
type Definition struct {
	// Name is the unique plugin key.
	Name string

	// Version must satisfy the strict MAJOR.MINOR.PATCH semver grammar,
	// with optional -prerelease and +buildmetadata suffixes.
	Version string

	// Description is optional display text.
	Description string

	// Hooks maps lifecycle event names to handlers.
	Hooks map[string]HookFunc

	// OnError, when set, is invoked with each hook failure of this plugin.
	OnError ErrorHookFunc

	// Templates are contributed to the template registry on installation.
	Templates []*template.Definition

	// Validators are named validation rules contributed for prompt reuse.
	Validators map[string]*prompt.Rule

	// Themes maps theme names to presenter color profiles.
	Themes map[string]string
}
