package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bddgen/cmd/bddgen/internal/clierr"
	"bddgen/internal/config"
	"bddgen/internal/pipeline"
)

// NewDriftCommand returns the `bddgen drift` command.
func NewDriftCommand() *cobra.Command {
	var (
		stepDefDir string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "drift <analysis.json>",
		Short: "Report steps the definition store does not cover",
		Long:  "Composes the document's features in memory and diffs their steps against the step definition store. Writes nothing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := fileSettings(configPath)
			if err != nil {
				return err
			}

			p := pipeline.Pipeline{
				StepDefDir: config.FirstNonEmpty(stepDefDir, fileCfg.StepDefDir, config.DefaultStepDefDir),
				Out:        cmd.OutOrStdout(),
				Log:        loggerFrom(cmd),
			}
			missing, err := p.Drift(args[0])
			if err != nil {
				return err
			}

			if len(missing) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ Step definition store covers every generated step")
				return nil
			}

			for _, step := range missing {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "missing: %s\n", step)
			}
			return clierr.Newf(2, "%d step definitions missing", len(missing))
		},
	}

	cmd.Flags().StringVar(&stepDefDir, "step-def-dir", "", "Directory holding the step definition store (default \"stepdefs\")")
	cmd.Flags().StringVar(&configPath, "config", config.Filename, "Path to the optional project config file")

	return cmd
}
