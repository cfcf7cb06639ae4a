// Package config loads the on-disk settings for the COLA store's scratch
// pool sizing and the shared logger level.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the tunables read from an on-disk TOML file, overriding
// the defaults returned by Default.
type Config struct {
	// SparePoolClasses is the number of pre-sized spare buffer classes
	// (sizes 1, 2, 4, .. 2^(n-1)) a COLA store loans during merges.
	SparePoolClasses int `toml:"spare_pool_classes"`
	// MaxDepth bounds the number of COLA levels a single store may grow
	// to (at most 2^MaxDepth - 1 elements), guarding against runaway growth from a
	// corrupt count.
	MaxDepth int `toml:"max_depth"`
	// LogLevel is passed to logging.NewLogger.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration used when no file is
// supplied.
func Default() *Config {
	return &Config{
		SparePoolClasses: 6,
		MaxDepth:         32,
		LogLevel:         "info",
	}
}

// Load reads path as TOML into a copy of Default, so an on-disk file
// need only specify the fields it overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: decoding %s", path)
	}
	return cfg, nil
}
