package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OctaEDLP00/cli-builder-core/internal/plugin"
	"github.com/OctaEDLP00/cli-builder-core/internal/term"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long:  `List the built-in templates plus any contributed by installed plugins.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one template for display.
type listEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Files       int    `json:"files"`
}

func runList(cmd *cobra.Command, args []string) error {
	orch := plugin.NewOrchestrator(term.NewPresenter(os.Stderr))
	loadPlugins(orch)

	registry, err := buildTemplateRegistry(orch)
	if err != nil {
		return err
	}

	entries := []listEntry{}
	for _, t := range registry.List() {
		entries = append(entries, listEntry{Name: t.Name, Description: t.Description, Files: len(t.Files)})
	}

	if listJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling template list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tFILES")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\n", e.Name, e.Description, e.Files)
	}
	return w.Flush()
}
