// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bddgen/internal/config"
	"bddgen/internal/pipeline"
)

// NewGenerateCommand returns the `bddgen generate` command.
func NewGenerateCommand() *cobra.Command {
	var (
		outputDir  string
		stepDefDir string
		stateDir   string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "generate <analysis.json>",
		Short: "Generate feature files and reconcile step definitions",
		Long:  "Reads a controller analysis document, writes one feature file per endpoint, and appends stub definitions for any steps missing from the step definition store.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := fileSettings(configPath)
			if err != nil {
				return err
			}

			p := pipeline.Pipeline{
				OutputDir:  config.FirstNonEmpty(outputDir, fileCfg.OutputDir, config.DefaultOutputDir),
				StepDefDir: config.FirstNonEmpty(stepDefDir, fileCfg.StepDefDir, config.DefaultStepDefDir),
				Out:        cmd.OutOrStdout(),
				Log:        loggerFrom(cmd),
			}
			report, err := p.Generate(args[0])
			if err != nil {
				return err
			}

			store := pipeline.NewStateStore(config.FirstNonEmpty(stateDir, fileCfg.StateDir, config.DefaultStateDir))
			if err := store.WriteLastRun(report); err != nil {
				return fmt.Errorf("recording run state: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for generated feature files (default \"features\")")
	cmd.Flags().StringVar(&stepDefDir, "step-def-dir", "", "Directory holding the step definition store (default \"stepdefs\")")
	cmd.Flags().StringVar(&stateDir, "state-dir", "", "Directory for run state (default \".bddgen\")")
	cmd.Flags().StringVar(&configPath, "config", config.Filename, "Path to the optional project config file")

	return cmd
}
