package contract

import (
	"testing"
	"time"

	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		input       *ConfigRawInput
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:  "empty input uses defaults",
			input: &ConfigRawInput{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.SQLiteBackend, cfg.Backend)
				assert.Equal(t, schema.TextOut, cfg.Output)
				assert.Equal(t, DefaultPrecision, cfg.Precision)
				assert.Equal(t, DefaultNotifyTimeout, cfg.NotifyTimeout)
				assert.Equal(t, DefaultListenAddr, cfg.Listen)
				assert.True(t, cfg.UseColors)
				assert.Empty(t, cfg.NotifyURL)
			},
		},
		{
			name: "full valid config",
			input: &ConfigRawInput{
				DBBackend:     "MySQL",
				DBConnect:     "user:pass@tcp(localhost:3306)/grading",
				NotifyURL:     "http://notify.local:9000/",
				NotifyToken:   "secret",
				NotifyTimeout: "500ms",
				Listen:        "127.0.0.1:9090",
				Precision:     2,
				Output:        "JSON",
				Color:         "no",
				Debug:         true,
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.MySQLBackend, cfg.Backend)
				assert.Equal(t, "http://notify.local:9000", cfg.NotifyURL)
				assert.Equal(t, "secret", cfg.NotifyToken)
				assert.Equal(t, 500*time.Millisecond, cfg.NotifyTimeout)
				assert.Equal(t, "127.0.0.1:9090", cfg.Listen)
				assert.Equal(t, 2, cfg.Precision)
				assert.Equal(t, schema.JSONOut, cfg.Output)
				assert.False(t, cfg.UseColors)
				assert.True(t, cfg.Debug)
			},
		},
		{name: "invalid backend", input: &ConfigRawInput{DBBackend: "oracle"}, expectError: true},
		{name: "invalid output", input: &ConfigRawInput{Output: "xml"}, expectError: true},
		{name: "invalid precision", input: &ConfigRawInput{Precision: 5}, expectError: true},
		{name: "negative width", input: &ConfigRawInput{Width: -1}, expectError: true},
		{name: "invalid color", input: &ConfigRawInput{Color: "maybe"}, expectError: true},
		{name: "invalid notify scheme", input: &ConfigRawInput{NotifyURL: "ftp://host"}, expectError: true},
		{name: "notify url without host", input: &ConfigRawInput{NotifyURL: "http://"}, expectError: true},
		{name: "invalid notify timeout", input: &ConfigRawInput{NotifyTimeout: "soon"}, expectError: true},
		{name: "non-positive notify timeout", input: &ConfigRawInput{NotifyTimeout: "0s"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := ProcessAndValidate(cfg, tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"sqlite path", schema.SQLiteBackend, "/tmp/grading.db", false},
		{"mysql valid", schema.MySQLBackend, "root:pw@tcp(127.0.0.1:3306)/grading?parseTime=true", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql missing db slash", schema.MySQLBackend, "root:pw@tcp(127.0.0.1:3306)", true},
		{"postgres keyword", schema.PostgreSQLBackend, "host=localhost port=5432 user=u dbname=grading sslmode=disable", false},
		{"postgres url", schema.PostgreSQLBackend, "postgres://u:p@localhost:5432/grading", false},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
		{"postgres bad port", schema.PostgreSQLBackend, "host=localhost port=notaport dbname=grading", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
