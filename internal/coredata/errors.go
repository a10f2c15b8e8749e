// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package coredata

import (
	"errors"
	"fmt"
)

var (
	// ErrModelNotFound indicates the model path does not exist or cannot be opened.
	ErrModelNotFound = errors.New("model not found")

	// ErrMalformedModel indicates the model exists but could not be parsed or resolved.
	ErrMalformedModel = errors.New("malformed model")
)

// LoadError reports a failure to load a model file.
// Err wraps ErrModelNotFound or ErrMalformedModel.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load model %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
