package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/OctaEDLP00/cli-builder-core/internal/branding"
	"github.com/OctaEDLP00/cli-builder-core/internal/config"
	"github.com/OctaEDLP00/cli-builder-core/internal/term"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds new projects from templates: it asks a sequence of
questions, resolves the answers into a configuration, and materializes the
project directory, manifest, and dependencies from the chosen template.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		term.SetupLogging(verbose)
		config.Load()
		term.Debug("configuration loaded", "file", config.FilePath())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags. Fatal
// errors are presented on stderr; the caller exits non-zero on error.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		term.NewPresenter(os.Stderr).Error(err.Error())
	}
	return err
}
