// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Build assembles the document schemas, one object schema per TypeDef.
func Build(data *SchemaData, nullSafe bool) []*jsonschema.Schema {
	schemas := make([]*jsonschema.Schema, 0, len(data.Defs))
	for _, def := range data.Defs {
		schemas = append(schemas, buildObject(def, nullSafe))
	}
	return schemas
}

func buildObject(def TypeDef, nullSafe bool) *jsonschema.Schema {
	obj := &jsonschema.Schema{
		Type:       "object",
		Title:      def.Name,
		Properties: jsonschema.NewProperties(),
	}

	for _, f := range def.Fields {
		schema := f.Schema
		if f.Optional {
			if nullSafe {
				schema = NullSafe(schema)
			}
		} else {
			obj.Required = append(obj.Required, f.Name)
		}
		obj.Properties.Set(f.Name, withExtras(schema, f.Extras))
	}

	obj.Extras = map[string]any{
		"id":         def.ID,
		"mappedType": def.Name,
	}
	if def.Parent != "" {
		obj.Extras["extends"] = map[string]string{"$ref": def.Parent}
	}

	return withExtras(obj, def.Extras)
}

// Marshal encodes the document as indented JSON followed by a newline.
func Marshal(schemas []*jsonschema.Schema) ([]byte, error) {
	out, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON schema: %w", err)
	}
	return append(out, '\n'), nil
}
