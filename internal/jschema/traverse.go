// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"iter"
	"maps"
	"slices"
)

// Node is a decoded JSON Schema object.
type Node = map[string]any

// Traverse returns an iterator over a schema and all of its sub-schemas
// reachable through properties, items, anyOf, oneOf and allOf.
// Nested properties are visited in name order.
func Traverse(schema Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		traverse(schema, yield)
	}
}

func traverse(schema Node, yield func(Node) bool) bool {
	if schema == nil {
		return true
	}
	if !yield(schema) {
		return false
	}

	if props, ok := schema["properties"].(Node); ok {
		for _, name := range slices.Sorted(maps.Keys(props)) {
			if !traverse(asNode(props[name]), yield) {
				return false
			}
		}
	}
	if !traverse(asNode(schema["items"]), yield) {
		return false
	}
	for _, key := range []string{"anyOf", "oneOf", "allOf"} {
		subs, _ := schema[key].([]any)
		for _, s := range subs {
			if !traverse(asNode(s), yield) {
				return false
			}
		}
	}
	return true
}

func asNode(v any) Node {
	n, _ := v.(Node)
	return n
}
