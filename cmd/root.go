// Package cmd holds the superheroes command line.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"superheroes/config"
	"superheroes/database"
	"superheroes/logger"
)

var flagConfigFile string

var rootCmd = &cobra.Command{
	Use:           "superheroes",
	Short:         "Serve heroes, powers and their assignments over HTTP",
	SilenceUsage:  true,
	SilenceErrors: true,
	// Running without a subcommand starts the server.
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration, installs the default logger and opens the store.
func setup() (*config.Config, *slog.Logger, *database.Store, error) {
	cfg, err := config.Load(flagConfigFile)
	if err != nil {
		return nil, nil, nil, err
	}

	log := logger.Init(logger.Config{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})

	db, err := database.Open(database.Options{
		DSN:      cfg.DatabaseURL,
		LogLevel: cfg.DBLogLevel,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("initialize database: %w", err)
	}

	return cfg, log, database.NewStore(db), nil
}

func closeStore(store *database.Store) {
	if sqlDB, err := store.DB().DB(); err == nil {
		sqlDB.Close()
	}
}
