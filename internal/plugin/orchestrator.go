package plugin

import (
	"context"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/OctaEDLP00/cli-builder-core/internal/clierr"
)

// Presenter renders install confirmations and hook-failure warnings.
type Presenter interface {
	Success(msg string)
	Error(msg string)
	Warn(msg string)
	Info(msg string)
}

// Orchestrator owns the set of installed plugins and fans lifecycle events
// out to them. Install and Uninstall are invoked sequentially by the single
// driver goroutine, so the registry map needs no locking; only ExecuteHook
// runs handlers concurrently, and those never touch the registry.
type Orchestrator struct {
	plugins   map[string]*Definition
	order     []string
	presenter Presenter
}

// NewOrchestrator creates an empty Orchestrator.
func NewOrchestrator(presenter Presenter) *Orchestrator {
	return &Orchestrator{
		plugins:   make(map[string]*Definition),
		presenter: presenter,
	}
}

// Install validates and registers a plugin. It rejects a missing name or
// version, a version that fails the strict semver grammar (no "v" prefix,
// exactly MAJOR.MINOR.PATCH), and a name that is already registered.
func (o *Orchestrator) Install(def *Definition) error {
	if def == nil || def.Name == "" {
		return clierr.New(clierr.KindPlugin, "plugin name is required",
			clierr.Context{Operation: "installPlugin"})
	}
	if def.Version == "" {
		return clierr.New(clierr.KindPlugin,
			fmt.Sprintf("plugin %q: version is required", def.Name),
			pluginContext("installPlugin", def.Name))
	}
	if _, err := semver.StrictNewVersion(def.Version); err != nil {
		return clierr.Wrap(clierr.KindPlugin,
			fmt.Sprintf("plugin %q: invalid version %q (expected MAJOR.MINOR.PATCH)", def.Name, def.Version),
			err, pluginContext("installPlugin", def.Name))
	}
	if _, exists := o.plugins[def.Name]; exists {
		return clierr.New(clierr.KindPlugin,
			fmt.Sprintf("plugin %q is already installed", def.Name),
			pluginContext("installPlugin", def.Name))
	}

	o.plugins[def.Name] = def
	o.order = append(o.order, def.Name)
	o.presenter.Success(fmt.Sprintf("Plugin %s@%s installed", def.Name, def.Version))
	return nil
}

// Uninstall removes a plugin entirely. Unknown names are rejected.
func (o *Orchestrator) Uninstall(name string) error {
	if _, exists := o.plugins[name]; !exists {
		return clierr.New(clierr.KindPlugin,
			fmt.Sprintf("plugin %q is not installed", name),
			pluginContext("uninstallPlugin", name))
	}

	delete(o.plugins, name)
	for i, n := range o.order {
		if n == name {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the named plugin.
func (o *Orchestrator) Get(name string) (*Definition, bool) {
	def, ok := o.plugins[name]
	return def, ok
}

// List returns all installed plugins in installation order.
func (o *Orchestrator) List() []*Definition {
	out := make([]*Definition, 0, len(o.order))
	for _, name := range o.order {
		out = append(out, o.plugins[name])
	}
	return out
}

// ExecuteHook invokes every installed plugin's handler for the event with
// the given payload. Handlers run concurrently and are joined with an
// all-settle barrier: each failure (returned error or panic) is warned
// about, forwarded to the plugin's OnError when present, and swallowed.
// One plugin's failure never prevents another's handler from running, and
// ExecuteHook itself never fails.
//
// Hooks are advisory side-channels (logging, extra file writes, telemetry):
// a broken plugin must degrade gracefully, never abort project generation.
func (o *Orchestrator) ExecuteHook(ctx context.Context, event string, payload ...any) {
	var wg sync.WaitGroup

	for _, name := range o.order {
		def := o.plugins[name]
		handler, ok := def.Hooks[event]
		if !ok {
			continue
		}

		wg.Add(1)
		go func(def *Definition, handler HookFunc) {
			defer wg.Done()
			o.runHandler(ctx, def, event, handler, payload)
		}(def, handler)
	}

	wg.Wait()
}

// runHandler executes one handler inside its own catch boundary.
func (o *Orchestrator) runHandler(ctx context.Context, def *Definition, event string, handler HookFunc, payload []any) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return handler(ctx, payload...)
	}()
	if err == nil {
		return
	}

	o.presenter.Warn(fmt.Sprintf("plugin %s: hook %s failed: %v", def.Name, event, err))

	if def.OnError == nil {
		return
	}
	func() {
		defer func() {
			if r := recover(); r != nil {
				o.presenter.Warn(fmt.Sprintf("plugin %s: onError handler failed: %v", def.Name, r))
			}
		}()
		def.OnError(err, "hook:"+event)
	}()
}

func pluginContext(operation, name string) clierr.Context {
	return clierr.Context{Operation: operation, Extra: map[string]string{"plugin": name}}
}
