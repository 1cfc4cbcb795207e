// Package config loads segmenu settings from defaults, ~/.segmenu/config.yaml,
// SEGMENU_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/ruminaider/segmenu/internal/paths"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SEGMENU_"

// Flavors lists the accepted color flavors.
var Flavors = []string{"mocha", "macchiato", "frappe", "latte"}

// LogLevels lists the accepted log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the resolved settings.
type Config struct {
	Forest   string         `koanf:"forest"`
	Selected string         `koanf:"selected"`
	Flavor   string         `koanf:"flavor"`
	Mouse    bool           `koanf:"mouse"`
	Watch    bool           `koanf:"watch"`
	LogFile  string         `koanf:"log_file"`
	LogLevel string         `koanf:"log_level"`
	Widths   map[string]int `koanf:"widths"`

	// File is the config file that was read, empty when none was.
	File string `koanf:"-"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() map[string]any {
	return map[string]any{
		"forest":    paths.ForestFile(),
		"selected":  "",
		"flavor":    "mocha",
		"mouse":     true,
		"watch":     false,
		"log_file":  paths.LogFile(),
		"log_level": "info",
	}
}

// Load resolves the configuration. path names an explicit config file, which
// must exist; when empty, ~/.segmenu/config.yaml is read if present. Only
// flags the user changed override lower layers.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	used := path
	if used == "" {
		if _, err := os.Stat(paths.ConfigFile()); err == nil {
			used = paths.ConfigFile()
		}
	} else if _, err := os.Stat(used); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", used, err)
		}
	}

	// SEGMENU_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = used
	cfg.Flavor = strings.ToLower(strings.TrimSpace(cfg.Flavor))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and widths.
func (c Config) Validate() error {
	var errs []error
	if c.Forest == "" {
		errs = append(errs, errors.New("forest: path is empty"))
	}
	if !slices.Contains(Flavors, c.Flavor) {
		errs = append(errs, fmt.Errorf("flavor: unknown %q (want one of %s)", c.Flavor, strings.Join(Flavors, ", ")))
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level: unknown %q (want one of %s)", c.LogLevel, strings.Join(LogLevels, ", ")))
	}
	for id, w := range c.Widths {
		if w < 0 {
			errs = append(errs, fmt.Errorf("widths: %s is negative", id))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
