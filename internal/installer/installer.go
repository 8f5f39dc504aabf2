// Package installer runs the external package-manager install command for a
// freshly generated project.
package installer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Supported package manager identifiers.
const (
	ManagerNPM  = "npm"
	ManagerPNPM = "pnpm"
	ManagerYarn = "yarn"
)

// InstallCommand returns the install invocation for a package manager.
// Unknown managers fall back to npm.
func InstallCommand(manager string) (string, []string) {
	switch manager {
	case ManagerPNPM:
		return "pnpm", []string{"install"}
	case ManagerYarn:
		return "yarn", []string{"install"}
	default:
		return "npm", []string{"install"}
	}
}

// Runner executes one external command per call. Stdout and Stderr can be
// set for testing; they default to discarding (the spinner owns the
// terminal while an install runs).
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args in dir. A non-zero exit or spawn failure is
// returned as an error carrying the captured stderr tail.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stderrBuf bytes.Buffer
	if r.Stdout != nil {
		cmd.Stdout = r.Stdout
	}
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(r.Stderr, &stderrBuf)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		if msg := stderrBuf.String(); msg != "" {
			return fmt.Errorf("%s %v: %w\n%s", name, args, err, msg)
		}
		return fmt.Errorf("%s %v: %w", name, args, err)
	}
	return nil
}
