// Package config loads regexnfa settings from defaults, an optional YAML
// file, REGEXNFA_* environment variables and command line flags, in that
// order of increasing priority.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	DefaultFile    = "regexnfa.yaml"
	DefaultInput   = "in.txt"
	DefaultOutput  = "out.txt"
	DefaultWorkers = 4
	envPrefix      = "REGEXNFA_"
)

// Merge modes.
const (
	MergeSingle   = "single"
	MergeFixpoint = "fixpoint"
	MergeNone     = "none"
)

// Config holds every tunable of the command line tool.
type Config struct {
	Input           string `koanf:"input"`
	Output          string `koanf:"output"`
	Format          string `koanf:"format"`
	Merge           string `koanf:"merge"`
	SortTransitions bool   `koanf:"sort_transitions"`
	Workers         int    `koanf:"workers"`
	LogLevel        string `koanf:"log_level"`
	LogFormat       string `koanf:"log_format"`

	// File is the config file that was read, empty if none.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"input":            DefaultInput,
		"output":           DefaultOutput,
		"format":           "text",
		"merge":            MergeSingle,
		"sort_transitions": false,
		"workers":          DefaultWorkers,
		"log_level":        "info",
		"log_format":       "text",
	}
}

// findConfigFile returns explicit, or DefaultFile when it exists in the
// working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// Load builds the configuration. flags may be nil; only flags that were
// changed on the command line override lower layers, with kebab-case names
// mapped to snake_case keys.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// REGEXNFA_SORT_TRANSITIONS -> sort_transitions
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown enum values and a non-positive worker count.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "dot":
	default:
		return fmt.Errorf("unknown format %q (want text or dot)", c.Format)
	}
	switch c.Merge {
	case MergeSingle, MergeFixpoint, MergeNone:
	default:
		return fmt.Errorf("unknown merge mode %q (want %s, %s or %s)", c.Merge, MergeSingle, MergeFixpoint, MergeNone)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	return nil
}
