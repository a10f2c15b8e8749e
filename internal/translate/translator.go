// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate converts Core Data models into JSON Schema documents.
//
// The document is a JSON array with one object schema per entity, in model
// order. Each schema carries the entity name as "id" (the target of "$ref"
// and "extends"), the prefixed class name as "title" and "mappedType", and
// lists its own and inherited members under "properties" in declaration order.
// Names of non-optional members are listed under "required"; the key is
// omitted when an entity has none.
//
// User info entries become extra keywords on the entity schema or on the
// member descriptor. In null-safe mode they sit on the "anyOf" wrapper, next
// to the member's base descriptor rather than inside it.
package translate

import (
	"github.com/dacolabs/cd2js/internal/coredata"
)

// Options configure a translation.
type Options struct {
	// ClassNamePrefix is prepended to generated type identifiers, never to property names.
	ClassNamePrefix string
	// NullSafeParser wraps every optional member as anyOf [descriptor, null].
	NullSafeParser bool
}

// Result is a complete translated document.
type Result struct {
	Document []byte
	Warnings []Warning
}

// Translator exports a loaded model. It keeps no state between calls.
type Translator struct {
	model *coredata.Model
}

// New creates a Translator for an already resolved model.
func New(model *coredata.Model) *Translator {
	return &Translator{model: model}
}

// NewFromFile loads the model at path and creates a Translator for it.
// Load failures are returned as *coredata.LoadError.
func NewFromFile(path string) (*Translator, error) {
	model, err := coredata.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(model), nil
}

// Model returns the model being translated.
func (t *Translator) Model() *coredata.Model {
	return t.model
}

// Translate converts the model to a JSON Schema document.
// On failure it returns a *Error and no document.
func (t *Translator) Translate(opts Options) (*Result, error) {
	data, err := Prepare(t.model, opts.ClassNamePrefix)
	if err != nil {
		return nil, err
	}

	doc, err := Marshal(Build(data, opts.NullSafeParser))
	if err != nil {
		return nil, err
	}

	return &Result{Document: doc, Warnings: data.Warnings}, nil
}

// TranslateString is Translate returning the document as a string.
func (t *Translator) TranslateString(classNamePrefix string, nullSafeParser bool) (string, error) {
	res, err := t.Translate(Options{ClassNamePrefix: classNamePrefix, NullSafeParser: nullSafeParser})
	if err != nil {
		return "", err
	}
	return string(res.Document), nil
}
