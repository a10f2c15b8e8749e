// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dacolabs/cd2js/internal/config"
	"github.com/dacolabs/cd2js/internal/jschema"
	"github.com/dacolabs/cd2js/internal/prompts"
	"github.com/dacolabs/cd2js/internal/session"
	"github.com/dacolabs/cd2js/internal/translate"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	model          string
	output         string
	prefix         string
	nullSafe       bool
	check          bool
	nonInteractive bool
}

func newExportCmd(preRun func(*cobra.Command, []string) error) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a Core Data model as JSON Schema",
		Long: `Export a Core Data model as a JSON Schema document.
Flags override the values in cd2js.yaml. Missing paths are prompted for
unless --non-interactive is set, in which case the document goes to stdout.`,
		Example: `  # Use cd2js.yaml
  cd2js export

  # Export a bundle to stdout
  cd2js export --model Model.xcdatamodeld --output - --prefix BK

  # Null-safe parsing hints, verified before writing
  cd2js export --null-safe --check --non-interactive`,
		PreRunE: preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Path to the Core Data model")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `Output file ("-" for stdout)`)
	cmd.Flags().StringVarP(&opts.prefix, "prefix", "p", "", "Class name prefix for generated types")
	cmd.Flags().BoolVar(&opts.nullSafe, "null-safe", false, "Allow null for optional members")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Verify the document before writing it")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runExport(cmd *cobra.Command, opts *exportOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	cfg := *ctx.Config
	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model = opts.model
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("prefix") {
		cfg.ClassPrefix = opts.prefix
	}
	if flags.Changed("null-safe") {
		cfg.NullSafeParser = opts.nullSafe
	}

	if opts.nonInteractive {
		if cfg.Model == "" {
			return errors.New("non-interactive mode requires --model or a model in " + config.FileName)
		}
		if cfg.Output == "" {
			cfg.Output = config.StdoutOutput
		}
	} else if err := prompts.RunExportForm(&cfg.Model, &cfg.Output); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", session.ErrInvalidConfig, err)
	}

	tr, err := translate.NewFromFile(cfg.Model)
	if err != nil {
		return err
	}

	res, err := tr.Translate(translate.Options{
		ClassNamePrefix: cfg.ClassPrefix,
		NullSafeParser:  cfg.NullSafeParser,
	})
	if err != nil {
		return err
	}

	if opts.check {
		if err := jschema.Check(res.Document); err != nil {
			return fmt.Errorf("exported document failed check: %w", err)
		}
	}

	prompts.PrintWarnings(cmd.ErrOrStderr(), res.Warnings)

	if cfg.Output == config.StdoutOutput {
		_, err := cmd.OutOrStdout().Write(res.Document)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(cfg.Output, res.Document, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Model", Value: cfg.Model},
		{Label: "Output", Value: cfg.Output},
		{Label: "Entities", Value: strconv.Itoa(len(tr.Model().Entities))},
		{Label: "Warnings", Value: strconv.Itoa(len(res.Warnings))},
	}, "Export completed")
	return nil
}
