// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project configuration loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/cd2js/internal/config"
	"github.com/spf13/cobra"
)

// EnvConfig names the environment variable that overrides the config file path.
const EnvConfig = "CD2JS_CONFIG"

var (
	// ErrConfigNotFound indicates the config file named by CD2JS_CONFIG doesn't exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config has model and output paths resolved against the config file directory.
	Config *config.Config

	// ConfigPath is the file the configuration was read from; empty when defaults are used.
	ConfigPath string
}

// Load resolves the project configuration and returns a new context.Context
// with the session Context stored in it. The config file is $CD2JS_CONFIG when
// set, otherwise cd2js.yaml in the current directory; a missing default file
// yields the default configuration.
func Load(ctx context.Context, getenv func(string) string) (context.Context, error) {
	configPath := getenv(EnvConfig)
	explicit := configPath != ""
	if !explicit {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		configPath = filepath.Join(cwd, config.FileName)
	}

	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		if explicit {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return context.WithValue(ctx, contextKey{}, &Context{Config: config.Default()}), nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	baseDir := filepath.Dir(configPath)
	cfg.Model = resolvePath(baseDir, cfg.Model)
	cfg.Output = resolvePath(baseDir, cfg.Output)

	return context.WithValue(ctx, contextKey{}, &Context{
		Config:     cfg,
		ConfigPath: configPath,
	}), nil
}

func resolvePath(baseDir, p string) string {
	if p == "" || p == config.StdoutOutput || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessionCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessionCtx
	}
	return nil
}

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project configuration not loaded")
	}
	return ctx, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the project
// configuration and stores it in the command's context.
func PreRunLoad(getenv func(string) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx, err := Load(cmd.Context(), getenv)
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}
