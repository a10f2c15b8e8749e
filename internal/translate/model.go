// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"github.com/invopop/jsonschema"
)

// SchemaData is the flattened, type-resolved model handed to the document builder.
type SchemaData struct {
	Defs     []TypeDef // one per entity, in model order
	Warnings []Warning
}

// TypeDef is one entity with its inherited members flattened in.
type TypeDef struct {
	ID     string // entity name, used as the $ref target
	Name   string // generated type identifier, e.g. "BKPerson"
	Parent string // parent entity name, empty for root entities
	Fields []Field
	Extras map[string]any // user info keywords
}

// Field is a single property of a TypeDef.
type Field struct {
	Name     string
	Schema   *jsonschema.Schema // base descriptor, without null wrapping
	Optional bool
	Extras   map[string]any // user info keywords, set on the outermost descriptor
}
