package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/4NDR3-S01/ExposIA/core"
	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/internal/notify"
	"github.com/4NDR3-S01/ExposIA/internal/store"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "grading",
	Short:              "Record and reconcile presentation gradings.",
	Long:               `Grading stores rubric-based gradings of recorded presentations and merges AI gradings into them.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".grading")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("GRADING")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("db-backend", schema.SQLiteBackend)
	viper.SetDefault("db-connect", "")
	viper.SetDefault("notify-url", contract.DefaultNotifyURL)
	viper.SetDefault("notify-token", contract.DefaultNotifyToken)
	viper.SetDefault("notify-timeout", contract.DefaultNotifyTimeout.String())
	viper.SetDefault("listen", contract.DefaultListenAddr)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
}

// loadConfig merges defaults, file, env and flags, then validates them into cfg.
func loadConfig() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}
	color.NoColor = !cfg.UseColors
	return nil
}

// sharedSetup validates config and opens the grading store.
func sharedSetup(ctx context.Context, _ *cobra.Command, _ []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	if err := store.InitStores(ctx, cfg.Backend, cfg.DBConnect); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// newService wires the grading service over the global store.
func newService(observer contract.Observer) *core.Service {
	notifier := notify.New(cfg, notify.WithObserver(observer))
	return core.NewService(store.Manager.GetStore(),
		core.WithNotifier(notifier),
		core.WithObserver(observer),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
