// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dacolabs/cd2js/internal/config"
	"github.com/dacolabs/cd2js/internal/coredata"
	"github.com/dacolabs/cd2js/internal/prompts"
	"github.com/dacolabs/cd2js/internal/session"
	"github.com/spf13/cobra"
)

type entitiesOptions struct {
	model    string
	describe bool
}

func newEntitiesCmd(preRun func(*cobra.Command, []string) error) *cobra.Command {
	opts := &entitiesOptions{}

	cmd := &cobra.Command{
		Use:   "entities",
		Short: "List the entities of a Core Data model",
		Long: `List the entities of a Core Data model with their parent and member counts.
With --describe the model is printed as a YAML model description.`,
		Example: `  # List entities of the configured model
  cd2js entities

  # Convert a bundle into a YAML description
  cd2js entities --model Model.xcdatamodeld --describe > model.yaml`,
		PreRunE: preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntities(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Path to the Core Data model")
	cmd.Flags().BoolVar(&opts.describe, "describe", false, "Print the model as YAML")

	return cmd
}

func runEntities(cmd *cobra.Command, opts *entitiesOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	modelPath := ctx.Config.Model
	if cmd.Flags().Changed("model") {
		modelPath = opts.model
	}
	if modelPath == "" {
		return errors.New("no model given; pass --model or set model in " + config.FileName)
	}

	model, err := coredata.LoadFile(modelPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.describe {
		return coredata.WriteDescription(out, model)
	}

	if len(model.Entities) == 0 {
		_, _ = fmt.Fprintln(out, "No entities defined.")
		return nil
	}

	rows := make([][]string, 0, len(model.Entities))
	for _, e := range model.Entities {
		parent := e.ParentName
		if parent == "" {
			parent = "-"
		}
		rows = append(rows, []string{
			e.Name,
			parent,
			strconv.Itoa(len(e.Attributes)),
			strconv.Itoa(len(e.Relationships)),
		})
	}
	prompts.PrintTable(out, []string{"ENTITY", "PARENT", "ATTRIBUTES", "RELATIONSHIPS"}, rows)
	return nil
}
