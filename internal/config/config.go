// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles cd2js project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the default name of the configuration file.
const FileName = "cd2js.yaml"

// StdoutOutput selects standard output as the export destination.
const StdoutOutput = "-"

// Config represents the cd2js.yaml project configuration file.
type Config struct {
	Version        int    `yaml:"version"`
	Model          string `yaml:"model,omitempty"`
	Output         string `yaml:"output,omitempty"`
	ClassPrefix    string `yaml:"classPrefix,omitempty"`
	NullSafeParser bool   `yaml:"nullSafeParser,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Version: CurrentConfigVersion}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Model != "" && c.Model == c.Output {
		return errors.New("output must differ from model")
	}
	if err := ValidatePrefix(c.ClassPrefix); err != nil {
		return fmt.Errorf("class prefix %q: %w", c.ClassPrefix, err)
	}
	return nil
}

// ValidatePrefix accepts an empty prefix or one that can start a type identifier.
func ValidatePrefix(prefix string) error {
	for i, r := range prefix {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return errors.New("must start with letter or underscore")
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return errors.New("must contain only letters, numbers, underscores")
		}
	}
	return nil
}
