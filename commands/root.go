// Package commands wires the todosheet CLI.
package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ncobase/todosheet/config"
	"github.com/ncobase/todosheet/logger"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todosheet",
		Short:         "Todo tracker backed by a Google Sheets worksheet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newServeCmd(),
		newRemindCmd(),
		newMigrateCmd(),
		newVersionCmd(),
	)
	return cmd
}

// setup loads the environment file, configuration and logger shared by
// every subcommand. The returned cleanup flushes the logger.
func setup(configFile string) (*config.Config, *logger.Logger, func(), error) {
	// A missing .env file is fine; deployments use real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}

	log, cleanup, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, cleanup, nil
}
