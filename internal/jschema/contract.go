// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
)

// ErrContractViolation indicates a document that downstream generators cannot consume.
var ErrContractViolation = errors.New("document violates the export contract")

// contractSchema describes the shape of an exported document: an array of
// object schemas identified by "id".
func contractSchema() *jsonschema.Schema {
	str := &jsonschema.Schema{Type: "string"}
	return &jsonschema.Schema{
		Type: "array",
		Items: &jsonschema.Schema{
			Type:     "object",
			Required: []string{"id", "type", "properties"},
			Properties: map[string]*jsonschema.Schema{
				"id":         str,
				"title":      str,
				"mappedType": str,
				"type":       {Enum: []any{"object"}},
				"properties": {
					Type:                 "object",
					AdditionalProperties: &jsonschema.Schema{Type: "object"},
				},
				"required": {
					Type:  "array",
					Items: str,
				},
				"extends": {
					Type:       "object",
					Required:   []string{"$ref"},
					Properties: map[string]*jsonschema.Schema{"$ref": str},
				},
			},
		},
	}
}

var resolvedContract = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return contractSchema().Resolve(nil)
})

// Check validates an exported document. Beyond the structural contract it
// requires unique ids, "$ref" and "extends" targets that name an id in the
// document, and "required" entries that name a property. Properties are
// checked in document order, so the first dangling reference is reported.
func Check(doc []byte) error {
	var instance any
	if err := json.Unmarshal(doc, &instance); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrContractViolation, err)
	}

	rs, err := resolvedContract()
	if err != nil {
		return fmt.Errorf("failed to resolve contract schema: %w", err)
	}
	if err := rs.Validate(instance); err != nil {
		return fmt.Errorf("%w: %v", ErrContractViolation, err)
	}

	defs, _ := instance.([]any)
	ids := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		id, _ := asNode(d)["id"].(string)
		if _, dup := ids[id]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrContractViolation, id)
		}
		ids[id] = struct{}{}
	}

	keyOrder := ExtractKeyOrder(doc)
	for i, d := range defs {
		def := asNode(d)
		id, _ := def["id"].(string)

		if ext := asNode(def["extends"]); ext != nil {
			if ref, _ := ext["$ref"].(string); !hasID(ids, ref) {
				return fmt.Errorf("%w: %s: extends unknown schema %q", ErrContractViolation, id, ref)
			}
		}

		props := asNode(def["properties"])
		required, _ := def["required"].([]any)
		for _, r := range required {
			name, _ := r.(string)
			if _, ok := props[name]; !ok {
				return fmt.Errorf("%w: %s: required property %q is not defined", ErrContractViolation, id, name)
			}
		}

		for _, name := range keyOrder["["+strconv.Itoa(i)+"].properties"] {
			for s := range Traverse(asNode(props[name])) {
				ref, ok := s["$ref"].(string)
				if ok && !hasID(ids, ref) {
					return fmt.Errorf("%w: %s.%s: reference to unknown schema %q", ErrContractViolation, id, name, ref)
				}
			}
		}
	}

	return nil
}

func hasID(ids map[string]struct{}, id string) bool {
	_, ok := ids[id]
	return ok
}
