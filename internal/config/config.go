// Package config holds runtime settings for the StaffDesk shell.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: path of the local SQLite file backing the blob store.
//   - ExportPath: where the admin export command writes its workbook.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	DatabasePath string
	ExportPath   string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "staffdesk.db"
	c.ExportPath = "staffdesk.xlsx"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
