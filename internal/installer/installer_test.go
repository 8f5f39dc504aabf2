package installer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstallCommand(t *testing.T) {
	cases := []struct {
		name    string
		manager string
		wantBin string
	}{
		{"npm", ManagerNPM, "npm"},
		{"pnpm", ManagerPNPM, "pnpm"},
		{"yarn", ManagerYarn, "yarn"},
		{"unknown manager falls back to npm", "bun", "npm"},
		{"empty manager falls back to npm", "", "npm"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bin, args := InstallCommand(tc.manager)
			if bin != tc.wantBin {
				t.Errorf("InstallCommand(%q) binary = %q, want %q", tc.manager, bin, tc.wantBin)
			}
			if len(args) != 1 || args[0] != "install" {
				t.Errorf("InstallCommand(%q) args = %v, want [install]", tc.manager, args)
			}
		})
	}
}

func TestRunnerRun(t *testing.T) {
	t.Run("successful command", func(t *testing.T) {
		var r Runner
		if err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "true"); err != nil {
			t.Fatalf("Run() error: %v", err)
		}
	})

	t.Run("runs in the given directory", func(t *testing.T) {
		dir := t.TempDir()
		var r Runner
		if err := r.Run(context.Background(), dir, "sh", "-c", "touch marker"); err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
			t.Errorf("command did not run in %s: %v", dir, err)
		}
	})

	t.Run("missing binary", func(t *testing.T) {
		var r Runner
		err := r.Run(context.Background(), t.TempDir(), "definitely-not-a-real-binary")
		if err == nil {
			t.Fatal("Run() should fail for a missing binary")
		}
		if !strings.Contains(err.Error(), "not found on PATH") {
			t.Errorf("error = %q, want PATH lookup failure", err)
		}
	})

	t.Run("failure carries the stderr tail", func(t *testing.T) {
		var r Runner
		err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo registry unreachable >&2; exit 3")
		if err == nil {
			t.Fatal("Run() should fail for a non-zero exit")
		}
		if !strings.Contains(err.Error(), "registry unreachable") {
			t.Errorf("error = %q, want captured stderr in the message", err)
		}
	})

	t.Run("stderr is forwarded when a writer is set", func(t *testing.T) {
		var captured bytes.Buffer
		r := Runner{Stderr: &captured}
		err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo warned >&2; exit 1")
		if err == nil {
			t.Fatal("Run() should fail for a non-zero exit")
		}
		if !strings.Contains(captured.String(), "warned") {
			t.Errorf("forwarded stderr = %q, want the command's output", captured.String())
		}
		if !strings.Contains(err.Error(), "warned") {
			t.Errorf("error = %q, want captured stderr in the message", err)
		}
	})
}
