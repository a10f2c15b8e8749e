// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/dacolabs/cd2js/internal/config"
	"github.com/dacolabs/cd2js/internal/jschema"
	"github.com/dacolabs/cd2js/internal/prompts"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Check an exported JSON Schema document",
		Long: `Check that an exported document can be consumed by code generators:
an array of object schemas with unique ids whose references all resolve.`,
		Example: `  # Check a document on disk
  cd2js check schema.json

  # Check a document from stdin
  cd2js export --output - --non-interactive | cd2js check -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}
	return cmd
}

func runCheck(cmd *cobra.Command, path string) error {
	var (
		doc []byte
		err error
	)
	if path == config.StdoutOutput {
		doc, err = io.ReadAll(cmd.InOrStdin())
	} else {
		doc, err = os.ReadFile(path) //nolint:gosec // path is provided by user
	}
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	if err := jschema.Check(doc); err != nil {
		return err
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Document", Value: path},
	}, "Document is valid")
	return nil
}
