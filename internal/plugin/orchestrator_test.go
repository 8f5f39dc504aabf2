package plugin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/OctaEDLP00/cli-builder-core/internal/clierr"
)

// syncPresenter records rendered lines; hook warnings arrive from handler
// goroutines, so it locks.
type syncPresenter struct {
	mu        sync.Mutex
	successes []string
	warns     []string
}

func (p *syncPresenter) Success(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.successes = append(p.successes, msg)
}

func (p *syncPresenter) Warn(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.warns = append(p.warns, msg)
}

func (p *syncPresenter) Error(string) {}
func (p *syncPresenter) Info(string)  {}

func (p *syncPresenter) warnings() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.warns...)
}

func newTestOrchestrator() (*Orchestrator, *syncPresenter) {
	p := &syncPresenter{}
	return NewOrchestrator(p), p
}

func mustInstall(t *testing.T, o *Orchestrator, def *Definition) {
	t.Helper()
	if err := o.Install(def); err != nil {
		t.Fatalf("Install(%s) error: %v", def.Name, err)
	}
}

func TestInstallVersionGate(t *testing.T) {
	rejected := []string{"1.0", "v1.0.0", "1.0.0.0", "", "latest"}
	for _, version := range rejected {
		t.Run(fmt.Sprintf("rejects %q", version), func(t *testing.T) {
			o, _ := newTestOrchestrator()
			err := o.Install(&Definition{Name: "p", Version: version})
			if err == nil {
				t.Fatalf("Install accepted invalid version %q", version)
			}
			if !clierr.IsKind(err, clierr.KindPlugin) {
				t.Errorf("error kind for %q = %v, want plugin", version, err)
			}
		})
	}

	accepted := []string{"1.0.0", "1.0.0-beta.1", "1.0.0+build.5", "0.0.1"}
	for _, version := range accepted {
		t.Run(fmt.Sprintf("accepts %q", version), func(t *testing.T) {
			o, _ := newTestOrchestrator()
			if err := o.Install(&Definition{Name: "p", Version: version}); err != nil {
				t.Errorf("Install rejected valid version %q: %v", version, err)
			}
		})
	}
}

func TestInstallRegistry(t *testing.T) {
	t.Run("missing name rejected", func(t *testing.T) {
		o, _ := newTestOrchestrator()
		if err := o.Install(&Definition{Version: "1.0.0"}); err == nil {
			t.Error("Install accepted a plugin without a name")
		}
	})

	t.Run("duplicate name rejected, not merged", func(t *testing.T) {
		o, _ := newTestOrchestrator()
		mustInstall(t, o, &Definition{Name: "dup", Version: "1.0.0"})
		err := o.Install(&Definition{Name: "dup", Version: "2.0.0"})
		if err == nil {
			t.Fatal("Install accepted a duplicate plugin name")
		}
		got, _ := o.Get("dup")
		if got.Version != "1.0.0" {
			t.Errorf("duplicate install replaced the original: version = %s", got.Version)
		}
	})

	t.Run("install emits confirmation", func(t *testing.T) {
		o, p := newTestOrchestrator()
		mustInstall(t, o, &Definition{Name: "greeter", Version: "1.2.3"})
		if len(p.successes) != 1 || !strings.Contains(p.successes[0], "greeter@1.2.3") {
			t.Errorf("successes = %v, want one install confirmation", p.successes)
		}
	})

	t.Run("uninstall removes entirely", func(t *testing.T) {
		o, _ := newTestOrchestrator()
		mustInstall(t, o, &Definition{Name: "a", Version: "1.0.0"})
		mustInstall(t, o, &Definition{Name: "b", Version: "1.0.0"})

		if err := o.Uninstall("a"); err != nil {
			t.Fatalf("Uninstall error: %v", err)
		}
		if _, ok := o.Get("a"); ok {
			t.Error("uninstalled plugin still present")
		}
		if got := o.List(); len(got) != 1 || got[0].Name != "b" {
			t.Errorf("List after uninstall = %v", got)
		}

		if err := o.Uninstall("a"); err == nil {
			t.Error("Uninstall of unknown plugin should fail")
		}
	})

	t.Run("list preserves install order", func(t *testing.T) {
		o, _ := newTestOrchestrator()
		for _, name := range []string{"c", "a", "b"} {
			mustInstall(t, o, &Definition{Name: name, Version: "1.0.0"})
		}
		var names []string
		for _, def := range o.List() {
			names = append(names, def.Name)
		}
		if strings.Join(names, ",") != "c,a,b" {
			t.Errorf("List order = %v, want install order", names)
		}
	})
}

func TestExecuteHookIsolation(t *testing.T) {
	t.Run("one failure never stops the others", func(t *testing.T) {
		o, p := newTestOrchestrator()

		var mu sync.Mutex
		ran := map[string]bool{}
		record := func(name string) HookFunc {
			return func(context.Context, ...any) error {
				mu.Lock()
				defer mu.Unlock()
				ran[name] = true
				return nil
			}
		}

		mustInstall(t, o, &Definition{Name: "first", Version: "1.0.0",
			Hooks: map[string]HookFunc{EventBeforeGenerate: record("first")}})
		mustInstall(t, o, &Definition{Name: "second", Version: "1.0.0",
			Hooks: map[string]HookFunc{EventBeforeGenerate: func(context.Context, ...any) error {
				return errors.New("boom")
			}}})
		mustInstall(t, o, &Definition{Name: "third", Version: "1.0.0",
			Hooks: map[string]HookFunc{EventBeforeGenerate: record("third")}})

		o.ExecuteHook(context.Background(), EventBeforeGenerate)

		if !ran["first"] || !ran["third"] {
			t.Errorf("ran = %v, want first and third despite second failing", ran)
		}
		warns := p.warnings()
		if len(warns) != 1 || !strings.Contains(warns[0], "second") {
			t.Errorf("warnings = %v, want one warning naming the failing plugin", warns)
		}
	})

	t.Run("panicking handler is contained", func(t *testing.T) {
		o, p := newTestOrchestrator()
		mustInstall(t, o, &Definition{Name: "panicky", Version: "1.0.0",
			Hooks: map[string]HookFunc{EventAfterGenerate: func(context.Context, ...any) error {
				panic("kaboom")
			}}})

		o.ExecuteHook(context.Background(), EventAfterGenerate)

		warns := p.warnings()
		if len(warns) != 1 || !strings.Contains(warns[0], "kaboom") {
			t.Errorf("warnings = %v, want the panic surfaced as a warning", warns)
		}
	})

	t.Run("payload reaches handlers", func(t *testing.T) {
		o, _ := newTestOrchestrator()

		var mu sync.Mutex
		var got []any
		mustInstall(t, o, &Definition{Name: "p", Version: "1.0.0",
			Hooks: map[string]HookFunc{"custom": func(_ context.Context, payload ...any) error {
				mu.Lock()
				defer mu.Unlock()
				got = payload
				return nil
			}}})

		o.ExecuteHook(context.Background(), "custom", "alpha", 42)

		mu.Lock()
		defer mu.Unlock()
		if len(got) != 2 || got[0] != "alpha" || got[1] != 42 {
			t.Errorf("payload = %v, want [alpha 42]", got)
		}
	})

	t.Run("plugins without the hook are skipped", func(t *testing.T) {
		o, p := newTestOrchestrator()
		mustInstall(t, o, &Definition{Name: "quiet", Version: "1.0.0"})
		o.ExecuteHook(context.Background(), EventBeforeGenerate)
		if warns := p.warnings(); len(warns) != 0 {
			t.Errorf("warnings = %v, want none", warns)
		}
	})
}

func TestExecuteHookOnError(t *testing.T) {
	t.Run("onError receives error and hook context", func(t *testing.T) {
		o, _ := newTestOrchestrator()

		var mu sync.Mutex
		var gotErr error
		var gotCtx string
		mustInstall(t, o, &Definition{
			Name:    "failing",
			Version: "1.0.0",
			Hooks: map[string]HookFunc{EventBeforeGenerate: func(context.Context, ...any) error {
				return errors.New("handler broke")
			}},
			OnError: func(err error, ctx string) {
				mu.Lock()
				defer mu.Unlock()
				gotErr = err
				gotCtx = ctx
			},
		})

		o.ExecuteHook(context.Background(), EventBeforeGenerate)

		mu.Lock()
		defer mu.Unlock()
		if gotErr == nil || !strings.Contains(gotErr.Error(), "handler broke") {
			t.Errorf("onError err = %v", gotErr)
		}
		if gotCtx != "hook:beforeGenerate" {
			t.Errorf("onError context = %q, want %q", gotCtx, "hook:beforeGenerate")
		}
	})

	t.Run("panic inside onError is swallowed", func(t *testing.T) {
		o, p := newTestOrchestrator()
		mustInstall(t, o, &Definition{
			Name:    "doubly-broken",
			Version: "1.0.0",
			Hooks: map[string]HookFunc{EventBeforeGenerate: func(context.Context, ...any) error {
				return errors.New("boom")
			}},
			OnError: func(error, string) {
				panic("onError broke too")
			},
		})

		// Must return normally.
		o.ExecuteHook(context.Background(), EventBeforeGenerate)

		warns := p.warnings()
		if len(warns) != 2 {
			t.Fatalf("warnings = %v, want hook failure plus onError failure", warns)
		}
		if !strings.Contains(warns[1], "onError") {
			t.Errorf("second warning = %q, want onError failure", warns[1])
		}
	})
}
