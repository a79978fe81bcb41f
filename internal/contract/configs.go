package contract

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
)

// Default values for configuration.
const (
	DefaultNotifyURL     = "http://localhost:9000"
	DefaultNotifyToken   = "dev"
	DefaultNotifyTimeout = 3 * time.Second
	DefaultListenAddr    = ":8080"
	DefaultPrecision     = 1
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the grading service.
// This struct is the "final, validated" config.
type Config struct {
	Backend   schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext

	NotifyURL     string // empty disables notifications
	NotifyToken   string
	NotifyTimeout time.Duration

	Listen string
	Debug  bool

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	DBBackend     string `mapstructure:"db-backend"`
	DBConnect     string `mapstructure:"db-connect"`
	NotifyURL     string `mapstructure:"notify-url"`
	NotifyToken   string `mapstructure:"notify-token"`
	NotifyTimeout string `mapstructure:"notify-timeout"`
	Listen        string `mapstructure:"listen"`
	Debug         bool   `mapstructure:"debug"`
	Precision     int    `mapstructure:"precision"`
	Output        string `mapstructure:"output"`
	OutputFile    string `mapstructure:"output-file"`
	Width         int    `mapstructure:"width"`
	Color         string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateOutputInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := validateNotifyConfig(cfg, input); err != nil {
		return err
	}
	cfg.Listen = strings.TrimSpace(input.Listen)
	if cfg.Listen == "" {
		cfg.Listen = DefaultListenAddr
	}
	cfg.Debug = input.Debug
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if _, err := mysql.ParseDSN(connStr); err != nil {
			return fmt.Errorf("invalid MySQL connection string: %w", err)
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if _, err := pgx.ParseConfig(connStr); err != nil {
			return fmt.Errorf("invalid PostgreSQL connection string: %w", err)
		}
	}
	return nil
}

// validateBackendConfig validates the storage backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend := strings.ToLower(strings.TrimSpace(input.DBBackend))
	if backend == "" {
		backend = string(schema.SQLiteBackend)
	}
	cfg.Backend = schema.DatabaseBackend(backend)
	if _, ok := schema.ValidDatabaseBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid db backend '%s'. must be sqlite, mysql, postgresql", input.DBBackend)
	}
	cfg.DBConnect = input.DBConnect
	return ValidateDatabaseConnectionString(cfg.Backend, cfg.DBConnect)
}

// validateNotifyConfig validates the notification endpoint settings.
func validateNotifyConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.NotifyURL = strings.TrimRight(strings.TrimSpace(input.NotifyURL), "/")
	cfg.NotifyToken = input.NotifyToken
	if cfg.NotifyURL != "" {
		u, err := url.Parse(cfg.NotifyURL)
		if err != nil {
			return fmt.Errorf("invalid notify-url '%s': %w", input.NotifyURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid notify-url '%s'. scheme must be http or https", input.NotifyURL)
		}
		if u.Host == "" {
			return fmt.Errorf("invalid notify-url '%s'. missing host", input.NotifyURL)
		}
	}

	cfg.NotifyTimeout = DefaultNotifyTimeout
	if input.NotifyTimeout != "" {
		d, err := time.ParseDuration(input.NotifyTimeout)
		if err != nil {
			return fmt.Errorf("invalid notify-timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("notify-timeout must be positive (received %s)", d)
		}
		cfg.NotifyTimeout = d
	}
	return nil
}

// validateOutputInputs processes and validates the rendering fields.
func validateOutputInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	if cfg.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", cfg.Width)
	}

	colors := true
	if input.Color != "" {
		parsed, err := ParseBoolString(input.Color)
		if err != nil {
			return fmt.Errorf("invalid --color value: %w", err)
		}
		colors = parsed
	}
	cfg.UseColors = colors

	precision := input.Precision
	if precision == 0 {
		precision = DefaultPrecision
	}
	if precision < 1 || precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = precision

	output := strings.ToLower(input.Output)
	if output == "" {
		output = string(schema.TextOut)
	}
	cfg.Output = schema.OutputMode(output)
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}
	return nil
}
