package cmd

import (
	"fmt"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/internal/outwriter"
	"github.com/4NDR3-S01/ExposIA/internal/store"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/spf13/cobra"
)

// storeCmd focused on store management.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the grading store",
	Long: `Inspect or reset the grading store.

Subcommands:
  status - Show row counts and connection info
  clear  - Remove all grading data

Examples:
  # Check store status
  grading store status

  # Clear a MySQL store (set connection string via env variable)
  GRADING_DB_BACKEND=mysql GRADING_DB_CONNECT="..." grading store clear`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display store statistics and connection details",
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		status, err := store.Manager.GetStore().GetStatus(rootCtx)
		if err != nil {
			return fmt.Errorf("failed to get store status: %w", err)
		}
		return outwriter.NewOutWriter().WriteStatus(status, cfg)
	},
}

// storeClearCmd clears the store without opening it first.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all grading data",
	Long: `Delete all grading data from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the grading tables`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfig()
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := store.ClearStore(cfg.Backend, sqliteFilePath(), cfg.DBConnect); err != nil {
			return fmt.Errorf("failed to clear store: %w", err)
		}
		fmt.Println("Store cleared successfully.")
		return nil
	},
}

// sqliteFilePath returns the SQLite database file the configuration points at.
func sqliteFilePath() string {
	if cfg.Backend == schema.SQLiteBackend && cfg.DBConnect != "" {
		return cfg.DBConnect
	}
	return contract.GetDBFilePath()
}
