// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bddgen/internal/config"
)

// NewRootCmd constructs the bddgen root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("BDDGEN_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "bddgen",
		Short:         "bddgen - BDD feature and step definition generator",
		Long:          "bddgen turns controller analysis documents into Gherkin feature files and keeps the Go step definition store in sync with them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of bddgen",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bddgen version %s\n", version)
		},
	})

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewInspectCommand())
	cmd.AddCommand(NewDriftCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewServeCommand())

	return cmd
}

// loggerFrom builds the command's logger, honoring the persistent --verbose
// flag. Logs go to stderr so the operator protocol on stdout stays
// machine-readable.
func loggerFrom(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// fileSettings loads the optional project config, returning zero values
// when the file is absent.
func fileSettings(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if cfg == nil {
		return config.Config{}, nil
	}
	return *cfg, nil
}
