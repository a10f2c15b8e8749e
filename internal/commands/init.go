// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/cd2js/internal/config"
	"github.com/dacolabs/cd2js/internal/prompts"
	"github.com/spf13/cobra"
)

type initOptions struct {
	model          string
	output         string
	prefix         string
	nullSafe       bool
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new cd2js project",
		Long:  `Initialize a new cd2js project with a cd2js.yaml configuration file.`,
		Example: `  # Interactive mode
  cd2js init

  # Non-interactive
  cd2js init --model Model.xcdatamodeld --output schema.json --prefix BK --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Path to the Core Data model")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "schema.json", `Output file ("-" for stdout)`)
	cmd.Flags().StringVarP(&opts.prefix, "prefix", "p", "", "Class name prefix for generated types")
	cmd.Flags().BoolVar(&opts.nullSafe, "null-safe", false, "Allow null for optional members")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --model)")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New(config.FileName + " already exists; project already initialized")
	}

	if opts.nonInteractive {
		if opts.model == "" {
			return errors.New("non-interactive mode requires --model")
		}
	} else if err := prompts.RunInitForm(&opts.model, &opts.output, &opts.prefix, &opts.nullSafe); err != nil {
		return err
	}

	cfg := config.Config{
		Version:        config.CurrentConfigVersion,
		Model:          opts.model,
		Output:         opts.output,
		ClassPrefix:    opts.prefix,
		NullSafeParser: opts.nullSafe,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: configPath},
		{Label: "Model", Value: cfg.Model},
	}, "Initialization completed")
	return nil
}
