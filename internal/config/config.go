// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the optional lr-match configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/someonegg/lrmatch/grant"
)

// FileName is looked up in the working directory when no path is given.
const FileName = ".lrmatch.yaml"

// Config holds defaults for command line flags. Flags given explicitly
// override these.
type Config struct {
	// Nil means the round file's budget is used.
	Budget *float64 `yaml:"budget,omitempty"`

	// Input format; guessed from the file extension when empty.
	Format string `yaml:"format,omitempty"`

	// Output format; defaults to json.
	OutputFormat string `yaml:"output_format,omitempty"`

	Verbose bool `yaml:"verbose,omitempty"`
	Quiet   bool `yaml:"quiet,omitempty"`
	NoColor bool `yaml:"no_color,omitempty"`
}

// Load reads the config file at path, or FileName when path is empty.
// A missing default file yields a zero Config; a missing explicit file is
// an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Write marshals the config to YAML.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Validate reports every invalid field at once.
func Validate(cfg *Config) error {
	var errs []string

	if b := cfg.Budget; b != nil && (*b < 0 || math.IsNaN(*b) || math.IsInf(*b, 0)) {
		errs = append(errs, fmt.Sprintf("budget: must be a non-negative number, got %g", *b))
	}
	if cfg.Format != "" {
		if _, err := grant.ParseFormat(cfg.Format); err != nil {
			errs = append(errs, fmt.Sprintf("format: %v", err))
		}
	}
	if cfg.OutputFormat != "" {
		if _, err := grant.ParseFormat(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
