// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunExportForm prompts for the model and output paths when they are missing.
// It returns without prompting when both are set.
func RunExportForm(model, output *string) error {
	askModel := *model == ""
	askOutput := *output == ""
	if !askModel && !askOutput {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to the Core Data model").
				Placeholder("Model.xcdatamodeld").
				Validate(requiredValidator("model path")).
				Value(model),
		).WithHideFunc(func() bool { return !askModel }),
		huh.NewGroup(
			huh.NewInput().
				Title("Output file").
				Description(`Use "-" for standard output`).
				Placeholder("schema.json").
				Validate(requiredValidator("output file")).
				Value(output),
		).WithHideFunc(func() bool { return !askOutput }),
	).WithTheme(Theme()).Run()
}
