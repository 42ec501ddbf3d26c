// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bddgen/internal/config"
	"bddgen/internal/relay"
)

// NewServeCommand returns the `bddgen serve` command.
func NewServeCommand() *cobra.Command {
	var (
		addr       string
		envFile    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the context relay service",
		Long:  "Serves the HTTP relay that combines dependency graphs, vector matches and issue context into prompts for the upstream generation service.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFrom(cmd)

			if err := godotenv.Load(envFile); err != nil {
				log.Warn("no env file loaded", "path", envFile)
			}

			fileCfg, err := fileSettings(configPath)
			if err != nil {
				return err
			}

			rcfg := relay.Config{
				APIKey:  os.Getenv("TACHYONS_API_KEY"),
				BaseURL: config.FirstNonEmpty(os.Getenv("TACHYONS_BASE_URL"), fileCfg.Relay.BaseURL),
				Model:   fileCfg.Relay.Model,
				Timeout: time.Duration(fileCfg.Relay.TimeoutSeconds) * time.Second,
			}
			if err := rcfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := relay.NewServer(rcfg, log)
			return srv.ListenAndServe(ctx, config.FirstNonEmpty(addr, fileCfg.Relay.Addr, config.DefaultRelayAddr))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default \":8085\")")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Env file loaded before reading TACHYONS_* variables")
	cmd.Flags().StringVar(&configPath, "config", config.Filename, "Path to the optional project config file")

	return cmd
}
