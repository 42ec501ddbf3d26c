package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bddgen/internal/config"
	"bddgen/internal/pipeline"
)

// NewReportCommand returns the `bddgen report` command.
func NewReportCommand() *cobra.Command {
	var (
		stateDir   string
		configPath string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the summary of the last generate run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := fileSettings(configPath)
			if err != nil {
				return err
			}

			store := pipeline.NewStateStore(config.FirstNonEmpty(stateDir, fileCfg.StateDir, config.DefaultStateDir))
			last, err := store.ReadLastRun()
			if err != nil {
				return err
			}
			if last == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No run state found.")
				return nil
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(last)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), last.RenderMarkdown())
			return nil
		},
	}

	cmd.Flags().StringVar(&stateDir, "state-dir", "", "Directory for run state (default \".bddgen\")")
	cmd.Flags().StringVar(&configPath, "config", config.Filename, "Path to the optional project config file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")

	cmd.AddCommand(newReportResetCommand())

	return cmd
}

func newReportResetCommand() *cobra.Command {
	var (
		stateDir   string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the persisted run state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := fileSettings(configPath)
			if err != nil {
				return err
			}

			store := pipeline.NewStateStore(config.FirstNonEmpty(stateDir, fileCfg.StateDir, config.DefaultStateDir))
			if err := store.Reset(); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ Run state cleared")
			return nil
		},
	}

	cmd.Flags().StringVar(&stateDir, "state-dir", "", "Directory for run state (default \".bddgen\")")
	cmd.Flags().StringVar(&configPath, "config", config.Filename, "Path to the optional project config file")

	return cmd
}
