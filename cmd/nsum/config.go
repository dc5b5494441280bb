// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/nsum"
	"github.com/katalvlaran/accel/numeric"
	"gopkg.in/yaml.v3"
)

var (
	// errConfigFormat is returned for a config file that is neither YAML nor TOML.
	errConfigFormat = errors.New("nsum: unsupported config format (want .yaml, .yml or .toml)")
	// errConfigValue is returned for a value outside its domain.
	errConfigValue = errors.New("nsum: invalid config value")
)

// Config holds the evaluation settings. Zero fields fall back to the
// library defaults.
type Config struct {
	Digits     int    `yaml:"digits" toml:"digits"`
	Methods    string `yaml:"methods" toml:"methods"`
	Tolerance  string `yaml:"tolerance" toml:"tolerance"`
	MaxTerms   int    `yaml:"max_terms" toml:"max_terms"`
	Steps      []int  `yaml:"steps" toml:"steps"`
	Skip       int    `yaml:"skip" toml:"skip"`
	ShanksSeed int64  `yaml:"shanks_seed" toml:"shanks_seed"`
	Verbose    bool   `yaml:"verbose" toml:"verbose"`
}

// defaultConfig matches the library defaults at numeric.DefaultDigits.
func defaultConfig() Config {
	return Config{Digits: numeric.DefaultDigits}
}

// loadConfig reads path into a copy of base. The format follows the extension.
func loadConfig(path string, base Config) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("nsum: read config: %w", err)
	}

	cfg := base
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	case ".toml":
		err = toml.Unmarshal(content, &cfg)
	default:
		return base, fmt.Errorf("%w: %q", errConfigFormat, path)
	}
	if err != nil {
		return base, fmt.Errorf("nsum: parse config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch {
	case c.Digits < 1:
		return fmt.Errorf("%w: digits=%d", errConfigValue, c.Digits)
	case c.MaxTerms != 0 && c.MaxTerms < 2:
		return fmt.Errorf("%w: max_terms=%d", errConfigValue, c.MaxTerms)
	case c.Skip < 0:
		return fmt.Errorf("%w: skip=%d", errConfigValue, c.Skip)
	}
	for _, s := range c.Steps {
		if s < 1 {
			return fmt.Errorf("%w: steps=%v", errConfigValue, c.Steps)
		}
	}
	if c.Methods != "" {
		if _, err := nsum.ParseMethods(c.Methods); err != nil {
			return fmt.Errorf("%w: %w", errConfigValue, err)
		}
	}
	if c.Tolerance != "" {
		if _, err := c.tolerance(); err != nil {
			return err
		}
	}

	return nil
}

func (c Config) tolerance() (*decimal.Big, error) {
	tol, ok := new(decimal.Big).SetString(c.Tolerance)
	if !ok || tol.IsNaN(0) || tol.IsInf(0) || tol.Sign() < 0 {
		return nil, fmt.Errorf("%w: tolerance=%q", errConfigValue, c.Tolerance)
	}

	return tol, nil
}

// options translates the set fields into orchestrator options. Options from
// the catalogue entry come first so the configuration can override them.
func (c Config) options() ([]nsum.Option, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	var opts []nsum.Option
	if c.Methods != "" {
		m, _ := nsum.ParseMethods(c.Methods)
		opts = append(opts, nsum.WithMethods(m))
	}
	if c.Tolerance != "" {
		tol, _ := c.tolerance()
		opts = append(opts, nsum.WithTolerance(tol))
	}
	if c.MaxTerms > 0 {
		opts = append(opts, nsum.WithMaxTerms(c.MaxTerms))
	}
	if len(c.Steps) > 0 {
		opts = append(opts, nsum.WithSteps(c.Steps...))
	}
	if c.Skip > 0 {
		opts = append(opts, nsum.WithSkip(c.Skip))
	}
	if c.ShanksSeed != 0 {
		opts = append(opts, nsum.WithShanksSeed(c.ShanksSeed))
	}

	return opts, nil
}
