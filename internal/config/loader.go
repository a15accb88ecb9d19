package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names, in lookup order.
const (
	FileName    = "oraparse.yaml"
	FileNameAlt = "oraparse.yml"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nesting levels: ORAPARSE_SERVER__ADDR sets server.addr.
const EnvPrefix = "ORAPARSE_"

// maxUpwardSearchLevels limits how far up the directory tree to look for
// a config file.
const maxUpwardSearchLevels = 10

// flagKeys maps flag names whose config key is not the snake_case form of
// the flag.
var flagKeys = map[string]string{
	"rule":     "start_rule",
	"addr":     "server.addr",
	"debounce": "watch.debounce",
	"disable":  "lint.disable",
}

// Load reads configuration from defaults, the config file, the environment
// and flags. Precedence (highest to lowest): flags > env > file > defaults.
// An empty cfgFile searches the working directory and its parents.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	d := Default()
	if err := k.Load(confmap.Provider(map[string]any{
		"start_rule":                 d.StartRule,
		"check_rule":                 d.CheckRule,
		"dialect":                    d.Dialect,
		"output":                     d.Output,
		"color":                      d.Color,
		"recover":                    d.Recover,
		"max_errors":                 d.MaxErrors,
		"workers":                    d.Workers,
		"log_level":                  d.LogLevel,
		"server.addr":                d.Server.Addr,
		"server.read_header_timeout": d.Server.ReadHeaderTimeout.String(),
		"server.max_body_bytes":      d.Server.MaxBodyBytes,
		"watch.debounce":             d.Watch.Debounce.String(),
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if cfgFile == "" {
		if cwd, err := os.Getwd(); err == nil {
			cfgFile = findConfigUpward(cwd)
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment: ORAPARSE_MAX_ERRORS -> max_errors
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those set explicitly
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile
	return cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return strings.ReplaceAll(name, "-", "_")
}

// configIn returns the config file in dir, or "".
func configIn(dir string) string {
	for _, name := range []string{FileName, FileNameAlt} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findConfigUpward searches startDir and its parents for a config file.
func findConfigUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if path := configIn(dir); path != "" {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
