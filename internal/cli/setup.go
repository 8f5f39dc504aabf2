package cli

import (
	"errors"
	"fmt"

	"github.com/OctaEDLP00/cli-builder-core/internal/clierr"
	"github.com/OctaEDLP00/cli-builder-core/internal/config"
	"github.com/OctaEDLP00/cli-builder-core/internal/plugin"
	"github.com/OctaEDLP00/cli-builder-core/internal/template"
	"github.com/OctaEDLP00/cli-builder-core/internal/term"
)

// loadPlugins installs every configured plugin directory's manifest into the
// orchestrator. A broken plugin is warned about and skipped, never fatal:
// scaffolding must keep working with a bad plugin on disk.
func loadPlugins(orch *plugin.Orchestrator) {
	for _, dir := range config.PluginDirs() {
		m, err := plugin.LoadManifest(dir)
		if err != nil {
			warnSkippedPlugin(dir, err)
			continue
		}
		if err := orch.Install(m.Definition()); err != nil {
			warnSkippedPlugin(dir, err)
		}
	}
}

// warnSkippedPlugin logs a skipped plugin, flattening a structured error's
// context into the log fields.
func warnSkippedPlugin(dir string, err error) {
	kv := []any{"dir", dir, "error", err}
	var ce *clierr.Error
	if errors.As(err, &ce) {
		kv = append(kv, ce.Fields()...)
	}
	term.Warn("skipping plugin", kv...)
}

// buildTemplateRegistry registers the built-in templates plus every
// installed plugin's contributed templates.
func buildTemplateRegistry(orch *plugin.Orchestrator) (*template.Registry, error) {
	registry := template.NewRegistry()
	if err := template.RegisterBuiltins(registry); err != nil {
		return nil, fmt.Errorf("registering built-in templates: %w", err)
	}

	for _, p := range orch.List() {
		for _, t := range p.Templates {
			if err := registry.Register(t); err != nil {
				term.Warn("skipping plugin template", "plugin", p.Name, "template", t.Name, "error", err)
			}
		}
	}

	return registry, nil
}
