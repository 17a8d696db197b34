// Package commands defines the command line interface of the ledger.
package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-petr/mcba-ledger/cmd/httpserver"
	"github.com/go-petr/mcba-ledger/internal/middleware"
	"github.com/go-petr/mcba-ledger/pkg/configpkg"
)

// Global flags
var configDir string

var rootCmd = &cobra.Command{
	Use:   "mcba",
	Short: "MCBA ledger back end",
	Long: `MCBA ledger back end serves the banking API and pays scheduled bill payments.

Configuration is read from app.env in the config directory and from the
environment, see configs/app.env.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "./configs", "Directory containing app.env")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(billPayCmd)
}

// setup loads the configuration, the logger and the ledger store.
func setup() (configpkg.Config, zerolog.Logger, httpserver.Store, func() error, error) {
	config, err := configpkg.Load(configDir)
	if err != nil {
		return config, zerolog.Nop(), nil, nil, fmt.Errorf("cannot load config: %w", err)
	}

	logger := middleware.CreateLogger(config)

	store, closeStore, err := httpserver.OpenStore(config)
	if err != nil {
		return config, logger, nil, nil, err
	}

	return config, logger, store, closeStore, nil
}

// closeLogged runs closeFn and logs its error.
func closeLogged(logger zerolog.Logger, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Error().Err(err).Msg("cannot close store")
	}
}
