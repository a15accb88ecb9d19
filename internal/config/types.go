// Package config loads oraparse settings.
//
// Values are layered, lowest precedence first: built-in defaults, the
// oraparse.yaml file, ORAPARSE_* environment variables, and explicitly set
// command-line flags.
package config

import "time"

// Config holds all settings shared by the CLI, the checker and the server.
type Config struct {
	StartRule string        `koanf:"start_rule"`
	CheckRule string        `koanf:"check_rule"`
	Dialect   string        `koanf:"dialect"`
	Output    string        `koanf:"output"`
	Color     string        `koanf:"color"`
	Recover   bool          `koanf:"recover"`
	MaxErrors int           `koanf:"max_errors"`
	Workers   int           `koanf:"workers"`
	LogLevel  string        `koanf:"log_level"`
	Server    *ServerConfig `koanf:"server"`
	Watch     *WatchConfig  `koanf:"watch"`
	Lint      *LintConfig   `koanf:"lint"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// ServerConfig holds settings for `oraparse serve`.
type ServerConfig struct {
	Addr              string        `koanf:"addr"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	MaxBodyBytes      int64         `koanf:"max_body_bytes"`
}

// WatchConfig holds settings for `oraparse check --watch`.
type WatchConfig struct {
	Debounce time.Duration `koanf:"debounce"`
}

// LintConfig holds settings for `oraparse lint`.
type LintConfig struct {
	// Disable lists rule IDs to skip.
	Disable []string `koanf:"disable"`
	// Severity overrides rule severities by ID, e.g. OR01: error.
	Severity map[string]string `koanf:"severity"`
}

// Output modes.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputSexpr = "sexpr"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default configuration values.
const (
	DefaultStartRule         = "expr"
	DefaultCheckRule         = "select"
	DefaultDialect           = "oracle"
	DefaultOutput            = OutputText
	DefaultColor             = ColorAuto
	DefaultMaxErrors         = 10
	DefaultWorkers           = 4
	DefaultLogLevel          = "warn"
	DefaultAddr              = ":8080"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultMaxBodyBytes      = 1 << 20
	DefaultDebounce          = 150 * time.Millisecond
)

// Default returns a Config with every default applied.
func Default() *Config {
	return &Config{
		StartRule: DefaultStartRule,
		CheckRule: DefaultCheckRule,
		Dialect:   DefaultDialect,
		Output:    DefaultOutput,
		Color:     DefaultColor,
		MaxErrors: DefaultMaxErrors,
		Workers:   DefaultWorkers,
		LogLevel:  DefaultLogLevel,
		Server: &ServerConfig{
			Addr:              DefaultAddr,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			MaxBodyBytes:      DefaultMaxBodyBytes,
		},
		Watch: &WatchConfig{Debounce: DefaultDebounce},
		Lint:  &LintConfig{},
	}
}
