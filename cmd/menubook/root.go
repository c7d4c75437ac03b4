// Root command for the menubook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petals-kitchen/menubook/internal/catalog"
	"github.com/petals-kitchen/menubook/internal/logging"
	"github.com/petals-kitchen/menubook/internal/tui"
	"github.com/petals-kitchen/menubook/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfig string
	flagJSON   bool
)

// cfg holds the configuration loaded by PersistentPreRunE; every subcommand
// reads it instead of touching viper directly.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:          "menubook",
	Short:        "Menubook is a terminal menu builder",
	Long:         "Menubook composes a personal menu for one session: browse the\nbuilt-in dish catalog, create your own dishes, and review the menu\ngrouped by course. Nothing is stored past process exit.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version needs no configuration.
		if cmd.Name() == "version" {
			return nil
		}

		loaded, err := loadConfig(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// The terminal belongs to the TUI; logs go to the configured file.
		logger, cleanup, err := logging.File(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = cleanup() }()

		// Composition root: the one session store, injected into the TUI.
		session, err := openSessionStore()
		if err != nil {
			return err
		}
		defer func() { _ = session.Close() }()

		logger.Info("session.started", "catalog_entries", len(catalog.Entries()))

		return tui.Run(tui.Deps{
			Store:   session,
			Catalog: catalog.Entries(),
			Config:  cfg,
			Logger:  logger,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: $HOME/.menubook/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(menuCmd)
}
