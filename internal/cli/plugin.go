package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OctaEDLP00/cli-builder-core/internal/config"
	"github.com/OctaEDLP00/cli-builder-core/internal/plugin"
	"github.com/OctaEDLP00/cli-builder-core/internal/term"
)

func init() {
	pluginCmd.AddCommand(pluginListCmd)
	pluginCmd.AddCommand(pluginInstallCmd)
	pluginCmd.AddCommand(pluginUninstallCmd)
	rootCmd.AddCommand(pluginCmd)
}

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Manage plugins",
	Long:  `Install, remove, and inspect plugins that contribute templates and lifecycle hooks.`,
}

var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed plugins",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch := plugin.NewOrchestrator(term.NewPresenter(os.Stderr))
		loadPlugins(orch)

		plugins := orch.List()
		if len(plugins) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No plugins installed yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tVERSION\tTEMPLATES\tDESCRIPTION")
		for _, p := range plugins {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.Name, p.Version, len(p.Templates), p.Description)
		}
		return w.Flush()
	},
}

var pluginInstallCmd = &cobra.Command{
	Use:   "install <dir>",
	Short: "Install a plugin from a directory",
	Long:  `Validate the directory's plugin.yaml and register the plugin for future runs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving plugin directory: %w", err)
		}

		// Validate the manifest and reject name collisions before persisting.
		presenter := term.DefaultPresenter()
		orch := plugin.NewOrchestrator(presenter)
		loadPlugins(orch)

		m, err := plugin.LoadManifest(dir)
		if err != nil {
			return err
		}
		if err := orch.Install(m.Definition()); err != nil {
			return err
		}

		dirs := append(config.PluginDirs(), dir)
		if err := config.SetSlice(config.KeyPluginDirs, dirs); err != nil {
			return fmt.Errorf("persisting plugin directory: %w", err)
		}
		return nil
	},
}

var pluginUninstallCmd = &cobra.Command{
	Use:   "uninstall <name>",
	Short: "Uninstall a plugin by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		var kept []string
		found := false
		for _, dir := range config.PluginDirs() {
			m, err := plugin.LoadManifest(dir)
			if err == nil && m.Name == name {
				found = true
				continue
			}
			kept = append(kept, dir)
		}
		if !found {
			return fmt.Errorf("plugin %q is not installed", name)
		}

		if err := config.SetSlice(config.KeyPluginDirs, kept); err != nil {
			return fmt.Errorf("persisting plugin removal: %w", err)
		}
		term.DefaultPresenter().Success(fmt.Sprintf("Plugin %s uninstalled", name))
		return nil
	},
}
