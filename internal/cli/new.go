package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OctaEDLP00/cli-builder-core/internal/clierr"
	"github.com/OctaEDLP00/cli-builder-core/internal/config"
	"github.com/OctaEDLP00/cli-builder-core/internal/fsio"
	"github.com/OctaEDLP00/cli-builder-core/internal/generate"
	"github.com/OctaEDLP00/cli-builder-core/internal/installer"
	"github.com/OctaEDLP00/cli-builder-core/internal/plugin"
	"github.com/OctaEDLP00/cli-builder-core/internal/prompt"
	"github.com/OctaEDLP00/cli-builder-core/internal/template"
	"github.com/OctaEDLP00/cli-builder-core/internal/term"
)

var (
	newTemplate    string
	newOutputDir   string
	newYes         bool
	newSkipInstall bool
	newAnswers     []string
)

var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Scaffold a new project from a template",
	Long: `Scaffold a new project: choose a template, answer its prompts, and
materialize the project directory, manifest, and dependencies.

Examples:
  cli-builder new my-app --template webapp
  cli-builder new my-lib --template library --yes
  cli-builder new my-app --set license=MIT --set installDeps=false`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newTemplate, "template", "t", "", "Template name (prompted when omitted)")
	newCmd.Flags().StringVarP(&newOutputDir, "output-dir", "o", "", "Parent directory for the project (default: current directory)")
	newCmd.Flags().BoolVarP(&newYes, "yes", "y", false, "Skip prompts and use defaults")
	newCmd.Flags().BoolVar(&newSkipInstall, "skip-install", false, "Skip the dependency install step")
	newCmd.Flags().StringArrayVar(&newAnswers, "set", nil, "Pre-seed an answer as key=value (suppresses its prompt)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !prompt.ValidProjectName(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}

	presenter := term.DefaultPresenter()
	orch := plugin.NewOrchestrator(presenter)
	loadPlugins(orch)

	registry, err := buildTemplateRegistry(orch)
	if err != nil {
		return err
	}

	seed, err := seedAnswers(name)
	if err != nil {
		return err
	}

	mode := prompt.ModeInteractive
	if newYes || !term.StdinIsTTY() {
		mode = prompt.ModeDefaults
	}

	reader := term.DefaultLineReader()
	reader.Open()
	defer reader.Close()
	engine := prompt.NewEngine(reader, presenter)

	tpl, seed, err := chooseTemplate(engine, registry, seed, mode)
	if err != nil {
		return err
	}

	answers, err := engine.Resolve(tpl.Prompts, seed, mode)
	if err != nil {
		return err
	}

	outputRoot := newOutputDir
	if outputRoot == "" {
		outputRoot = config.Get(config.KeyOutputRoot)
	}

	cfg := generate.Config{
		ProjectName:  name,
		TemplateName: tpl.Name,
		Answers:      answers,
		OutputRoot:   outputRoot,
	}

	ctx := cmd.Context()
	orch.ExecuteHook(ctx, plugin.EventBeforeGenerate, cfg)

	gen := generate.New(
		fsio.Writer{},
		spinnerRunner{inner: &installer.Runner{}},
		presenter,
		config.Get(config.KeyPackageManager),
	)
	if err := gen.Generate(ctx, tpl, cfg); err != nil {
		return err
	}

	orch.ExecuteHook(ctx, plugin.EventAfterGenerate, cfg)

	presenter.Success(fmt.Sprintf("Project %s created at %s", name, cfg.ProjectPath()))
	presenter.Info(fmt.Sprintf("Next: cd %s and start building", cfg.ProjectPath()))
	return nil
}

// seedAnswers builds the initial answer set from the project name, the
// --set flags, and the install-suppression switches. Seeded keys win over
// prompts with the same name.
func seedAnswers(name string) (prompt.AnswerSet, error) {
	seed := prompt.AnswerSet{"projectName": name}

	for _, kv := range newAnswers {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", kv)
		}
		// Booleans seed confirm prompts; everything else stays a string.
		switch value {
		case "true":
			seed[key] = true
		case "false":
			seed[key] = false
		default:
			seed[key] = value
		}
	}

	if newSkipInstall || config.GetBool(config.KeySkipInstall) {
		seed["installDeps"] = false
	}

	return seed, nil
}

// chooseTemplate resolves which template to generate from: the --template
// flag when given, otherwise a select prompt over the registry.
func chooseTemplate(engine *prompt.Engine, registry *template.Registry, seed prompt.AnswerSet, mode prompt.Mode) (*template.Definition, prompt.AnswerSet, error) {
	if newTemplate != "" {
		seed["template"] = newTemplate
	}

	defs := registry.List()
	if len(defs) == 0 {
		return nil, nil, clierr.New(clierr.KindConfiguration, "no templates registered",
			clierr.Context{Operation: "chooseTemplate"})
	}
	choices := make([]prompt.Choice, len(defs))
	for i, d := range defs {
		choices[i] = prompt.Choice{Label: d.Name, Value: d.Name, Description: d.Description}
	}

	selectPrompt := []prompt.Definition{{
		Name:    "template",
		Kind:    prompt.KindSelect,
		Message: "Choose a template",
		Choices: choices,
		Default: defs[0].Name,
	}}

	answers, err := engine.Resolve(selectPrompt, seed, mode)
	if err != nil {
		return nil, nil, err
	}

	tpl, err := registry.Get(answers.String("template"))
	if err != nil {
		return nil, nil, err
	}
	return tpl, answers, nil
}

// spinnerRunner wraps the install runner with a terminal spinner. When
// stdout is not a TTY the command just runs directly.
type spinnerRunner struct {
	inner *installer.Runner
}

func (s spinnerRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	return term.RunWithSpinner(ctx, "Installing dependencies...", func() error {
		return s.inner.Run(ctx, dir, name, args...)
	})
}
