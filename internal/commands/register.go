// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/cd2js/internal/session"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
// getenv is used to locate the project configuration.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cd2js",
		Short: "Export Core Data models as JSON Schema",
		Long: `Export Core Data managed object models as JSON Schema documents
for downstream code generators.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	load := session.PreRunLoad(getenv)

	rootCmd.AddCommand(newExportCmd(load))
	rootCmd.AddCommand(newEntitiesCmd(load))
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
