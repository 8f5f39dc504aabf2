// Package generate implements the template materialization pipeline: it
// turns a template definition plus a generator configuration into files on
// disk, a manifest document, an optional dependency install, and an
// optional post-generation hook.
package generate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/OctaEDLP00/cli-builder-core/internal/clierr"
	"github.com/OctaEDLP00/cli-builder-core/internal/installer"
	"github.com/OctaEDLP00/cli-builder-core/internal/prompt"
	"github.com/OctaEDLP00/cli-builder-core/internal/template"
)

// FileWriter is the on-disk primitive the pipeline writes through. All
// operations create missing parent directories.
type FileWriter interface {
	EnsureDir(path string) error
	WriteText(path, content string) error
	WriteJSON(path string, v any) error
}

// ProcessRunner executes the external dependency-install command.
type ProcessRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// Presenter renders pipeline status lines.
type Presenter interface {
	Success(msg string)
	Error(msg string)
	Warn(msg string)
	Info(msg string)
}

// Config is the resolved generator configuration for one run, created once
// from the final answer set and passed by value through the pipeline.
type Config struct {
	ProjectName  string
	TemplateName string
	Answers      prompt.AnswerSet
	OutputRoot   string
}

// ProjectPath returns the directory the project is generated into.
func (c Config) ProjectPath() string {
	return filepath.Join(c.OutputRoot, c.ProjectName)
}

// Generator runs the materialization pipeline.
type Generator struct {
	files     FileWriter
	runner    ProcessRunner
	presenter Presenter
	manager   string
}

// New creates a Generator. manager selects the package-manager install
// command (npm, pnpm, or yarn).
func New(files FileWriter, runner ProcessRunner, presenter Presenter, manager string) *Generator {
	return &Generator{files: files, runner: runner, presenter: presenter, manager: manager}
}

// Generate materializes the template, strictly in order: project directory,
// files, manifest, dependency install, post-install hook. There is no
// rollback: files already written stay in place when a later step fails.
func (g *Generator) Generate(ctx context.Context, tpl *template.Definition, cfg Config) error {
	projectPath := cfg.ProjectPath()

	if err := g.files.EnsureDir(projectPath); err != nil {
		return clierr.Wrap(clierr.KindFileSystem, "creating project directory", err, clierr.Context{
			Operation:   "generateFiles",
			ProjectName: cfg.ProjectName,
			Template:    cfg.TemplateName,
		})
	}

	if err := g.generateFiles(tpl, cfg, projectPath); err != nil {
		return err
	}

	if err := g.generateManifest(tpl, cfg, projectPath); err != nil {
		return err
	}

	g.installDependencies(ctx, tpl, cfg, projectPath)

	// The post-install hook is user-declared template logic presumed
	// essential to a correct project, so its failure propagates as-is.
	if tpl.PostInstall != nil {
		if err := tpl.PostInstall(ctx, projectPath, cfg.Answers); err != nil {
			return err
		}
	}

	return nil
}

// generateFiles writes every included FileSpec in declaration order. Later
// specs with the same path intentionally overwrite earlier ones.
func (g *Generator) generateFiles(tpl *template.Definition, cfg Config, projectPath string) error {
	for _, spec := range tpl.Files {
		if !spec.Included(cfg.Answers) {
			continue
		}

		path := filepath.Join(projectPath, spec.Path)
		if err := g.files.WriteText(path, spec.Resolve(cfg.Answers)); err != nil {
			return clierr.Wrap(clierr.KindFileSystem,
				fmt.Sprintf("writing %s", spec.Path), err, clierr.Context{
					Operation:   "generateFiles",
					ProjectName: cfg.ProjectName,
					Template:    cfg.TemplateName,
					FilePath:    path,
				})
		}
	}
	return nil
}

func (g *Generator) generateManifest(tpl *template.Definition, cfg Config, projectPath string) error {
	path := filepath.Join(projectPath, ManifestFileName)
	if err := g.files.WriteJSON(path, NewManifest(cfg.ProjectName, tpl)); err != nil {
		return clierr.Wrap(clierr.KindFileSystem, "writing project manifest", err, clierr.Context{
			Operation: "generatePackageJson",
			FilePath:  path,
		})
	}
	return nil
}

// installDependencies runs the package-manager install unless the template
// declares no dependencies or the answer set explicitly opts out. A failure
// here is degraded, not fatal: the generated files are already on disk and
// usable, so the pipeline reports the error with a manual-recovery hint and
// continues.
func (g *Generator) installDependencies(ctx context.Context, tpl *template.Definition, cfg Config, projectPath string) {
	if tpl.Dependencies.Empty() {
		return
	}
	if v, ok := cfg.Answers["installDeps"]; ok {
		if b, isBool := v.(bool); isBool && !b {
			return
		}
	}

	name, args := installer.InstallCommand(g.manager)
	if err := g.runner.Run(ctx, projectPath, name, args...); err != nil {
		depErr := clierr.Wrap(clierr.KindDependency, "dependency installation failed", err, clierr.Context{
			Operation:   "installDependencies",
			ProjectName: cfg.ProjectName,
			Template:    cfg.TemplateName,
		})
		g.presenter.Error(depErr.Error())
		g.presenter.Info(fmt.Sprintf("Run '%s %s' in %s to finish setup", name, args[0], projectPath))
	}
}
