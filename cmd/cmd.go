// Package cmd defines the command-line interface for the grading service.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("db-backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string; a file path for sqlite (defaults to ~/.grading.db)")
	rootCmd.PersistentFlags().String("notify-url", contract.DefaultNotifyURL, "Base URL of the notification listener (empty disables notifications)")
	rootCmd.PersistentFlags().String("notify-token", contract.DefaultNotifyToken, "Token sent to the notification listener")
	rootCmd.PersistentFlags().String("notify-timeout", contract.DefaultNotifyTimeout.String(), "Timeout of one notification attempt")
	rootCmd.PersistentFlags().String("listen", contract.DefaultListenAddr, "Address the HTTP API listens on")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable request logging")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for scores")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	reconcileCmd.Flags().StringP("file", "f", "-", "Path to the AI payload JSON (- reads stdin)")
	listCmd.Flags().Int("top", 0, "Only show the N best scored gradings")
}

// parseID parses a positional grading identifier.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid grading id %q", arg)
	}
	return id, nil
}
