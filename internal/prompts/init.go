// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/cd2js/internal/config"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(model, output, prefix *string, nullSafe *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to the Core Data model").
				Placeholder("Model.xcdatamodeld").
				Validate(requiredValidator("model path")).
				Value(model),
			huh.NewInput().
				Title("Output file").
				Description(`Use "-" for standard output`).
				Placeholder("schema.json").
				Value(output),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Class name prefix").
				Description("Prepended to generated type names").
				Validate(config.ValidatePrefix).
				Value(prefix),
			huh.NewConfirm().
				Title("Generate null-safe parsing hints?").
				Value(nullSafe),
		),
	).WithTheme(Theme()).Run()
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}
