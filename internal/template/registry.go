package template

import (
	"fmt"

	"github.com/OctaEDLP00/cli-builder-core/internal/clierr"
)

// Registry holds templates keyed by name, preserving registration order for
// listing. Registration happens sequentially at startup; no locking needed.
type Registry struct {
	templates map[string]*Definition
	order     []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*Definition)}
}

// Register adds a template. A duplicate name is a configuration error.
func (r *Registry) Register(def *Definition) error {
	if def.Name == "" {
		return clierr.New(clierr.KindTemplate, "template name is required",
			clierr.Context{Operation: "registerTemplate"})
	}
	if _, exists := r.templates[def.Name]; exists {
		return clierr.New(clierr.KindTemplate,
			fmt.Sprintf("template %q is already registered", def.Name),
			clierr.Context{Operation: "registerTemplate", Template: def.Name})
	}
	r.templates[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// Get returns the named template, or a template-kind error when unknown.
func (r *Registry) Get(name string) (*Definition, error) {
	def, ok := r.templates[name]
	if !ok {
		return nil, clierr.New(clierr.KindTemplate,
			fmt.Sprintf("template %q not found", name),
			clierr.Context{Operation: "getTemplate", Template: name})
	}
	return def, nil
}

// List returns all templates in registration order.
func (r *Registry) List() []*Definition {
	out := make([]*Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.templates[name])
	}
	return out
}
