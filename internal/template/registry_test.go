package template

import (
	"strings"
	"testing"

	"github.com/OctaEDLP00/cli-builder-core/internal/clierr"
)

func TestRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		r := NewRegistry()
		if err := r.Register(&Definition{Name: "mine"}); err != nil {
			t.Fatalf("Register() error: %v", err)
		}
		def, err := r.Get("mine")
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if def.Name != "mine" {
			t.Errorf("Get() = %q", def.Name)
		}
	})

	t.Run("unknown template is a template error", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.Get("ghost")
		if err == nil {
			t.Fatal("Get() should fail for an unknown template")
		}
		if !clierr.IsKind(err, clierr.KindTemplate) {
			t.Errorf("error kind = %v, want template", err)
		}
		if !strings.Contains(err.Error(), "ghost") {
			t.Errorf("error %q should name the template", err)
		}
	})

	t.Run("duplicate registration rejected", func(t *testing.T) {
		r := NewRegistry()
		if err := r.Register(&Definition{Name: "dup"}); err != nil {
			t.Fatal(err)
		}
		if err := r.Register(&Definition{Name: "dup"}); err == nil {
			t.Error("Register() accepted a duplicate name")
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		r := NewRegistry()
		if err := r.Register(&Definition{}); err == nil {
			t.Error("Register() accepted an empty name")
		}
	})

	t.Run("list preserves registration order", func(t *testing.T) {
		r := NewRegistry()
		for _, name := range []string{"zeta", "alpha", "mid"} {
			if err := r.Register(&Definition{Name: name}); err != nil {
				t.Fatal(err)
			}
		}
		var names []string
		for _, def := range r.List() {
			names = append(names, def.Name)
		}
		if strings.Join(names, ",") != "zeta,alpha,mid" {
			t.Errorf("List order = %v", names)
		}
	})
}

func TestBuiltins(t *testing.T) {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		t.Fatalf("RegisterBuiltins() error: %v", err)
	}

	for _, name := range []string{"basic", "library", "webapp"} {
		def, err := r.Get(name)
		if err != nil {
			t.Fatalf("built-in %q missing: %v", name, err)
		}
		if def.Description == "" {
			t.Errorf("built-in %q has no description", name)
		}
		if len(def.Prompts) == 0 {
			t.Errorf("built-in %q has no prompts", name)
		}
		if len(def.Files) == 0 {
			t.Errorf("built-in %q has no files", name)
		}
	}
}
