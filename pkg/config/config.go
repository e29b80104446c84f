// Package config loads disksort settings from a TOML file.
//
// A configuration file only supplies defaults; command-line flags override
// every value. Missing keys keep their defaults, unknown keys are rejected.
//
//	algorithm = "lawnmower"
//	count = 4
//
//	[compare]
//	min = 1
//	max = 16
//
//	[animate]
//	interval = "150ms"
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
)

const appName = "disksort"

// AlgorithmAll selects every registered algorithm.
const AlgorithmAll = "all"

// Config holds user preferences.
type Config struct {
	Algorithm string        `toml:"algorithm"`
	Count     int           `toml:"count"`
	Compare   CompareConfig `toml:"compare"`
	Animate   AnimateConfig `toml:"animate"`
}

// CompareConfig sets the light count range of the compare command.
type CompareConfig struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// AnimateConfig tunes the animate command.
type AnimateConfig struct {
	Interval Duration `toml:"interval"`
}

// Duration is a time.Duration decoded from strings like "150ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Algorithm: AlgorithmAll,
		Count:     4,
		Compare:   CompareConfig{Min: 1, Max: 16},
		Animate:   AnimateConfig{Interval: Duration{150 * time.Millisecond}},
	}
}

// Algorithms resolves the configured algorithm name. "all" expands to every
// registered algorithm.
func (c Config) Algorithms() ([]disks.Algorithm, error) {
	return ResolveAlgorithms(c.Algorithm)
}

// ResolveAlgorithms expands name into algorithms. "all" and "" select every
// registered algorithm.
func ResolveAlgorithms(name string) ([]disks.Algorithm, error) {
	if n := strings.ToLower(strings.TrimSpace(name)); n == "" || n == AlgorithmAll {
		return disks.Algorithms(), nil
	}
	a, err := disks.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []disks.Algorithm{a}, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := c.Algorithms(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "algorithm")
	}
	if err := errors.ValidateLightCount(c.Count); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "count")
	}
	if err := errors.ValidateRange(c.Compare.Min, c.Compare.Max); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "compare")
	}
	if c.Animate.Interval.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "animate.interval must be positive, got %s", c.Animate.Interval.Duration)
	}
	return nil
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the configuration at path. An empty path loads the file at
// [DefaultPath] if it exists and falls back to [Default] otherwise; an
// explicit path that does not exist is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}
	if err := errors.ValidatePath(path); err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/disksort/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
