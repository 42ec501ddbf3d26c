package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bddgen/internal/analysis"
	"bddgen/internal/pipeline"
)

// NewInspectCommand returns the `bddgen inspect` command.
func NewInspectCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <analysis.json>",
		Short: "Summarize an analysis document without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := analysis.Load(args[0])
			if err != nil {
				return err
			}

			summary := pipeline.Summarize(doc)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), summary.RenderMarkdown())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the summary as JSON")

	return cmd
}
