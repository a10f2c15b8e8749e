// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"strings"

	"github.com/dacolabs/cd2js/internal/coredata"
	"github.com/invopop/jsonschema"
)

// prepareContext holds mutable state during model preparation.
type prepareContext struct {
	resolver *resolver
	warnings []Warning
}

// Prepare flattens every entity of the model and resolves its members to
// JSON Schema descriptors. Entities keep the model's declaration order.
// It stops at the first unnamed member or unsupported attribute type.
func Prepare(model *coredata.Model, prefix string) (*SchemaData, error) {
	ctx := &prepareContext{resolver: &resolver{prefix: prefix}}

	data := &SchemaData{Defs: make([]TypeDef, 0, len(model.Entities))}
	for _, e := range model.Entities {
		fields, err := ctx.resolveFields(e)
		if err != nil {
			return nil, err
		}
		name := ctx.resolver.FormatDefName(e.Name)
		generated := &jsonschema.Schema{Extras: map[string]any{"mappedType": name}}

		def := TypeDef{
			ID:     e.Name,
			Name:   name,
			Fields: fields,
			Extras: ctx.userExtras(e.Name, "", generated, e.UserInfo),
		}
		if e.Parent != nil {
			def.Parent = e.Parent.Name
		}
		data.Defs = append(data.Defs, def)
	}

	data.Warnings = ctx.warnings
	return data, nil
}

// resolveFields walks the lineage of e root first. Each level contributes its
// attributes then its relationships; a redeclared member replaces the
// inherited one in place.
func (c *prepareContext) resolveFields(e *coredata.Entity) ([]Field, error) {
	var fields []Field
	position := make(map[string]int)

	add := func(f Field) {
		if i, ok := position[f.Name]; ok {
			fields[i] = f
			return
		}
		position[f.Name] = len(fields)
		fields = append(fields, f)
	}
	drop := func(name string) {
		i, ok := position[name]
		if !ok {
			return
		}
		fields = append(fields[:i], fields[i+1:]...)
		delete(position, name)
		for n, p := range position {
			if p > i {
				position[n] = p - 1
			}
		}
	}

	for _, level := range e.Lineage() {
		for i, a := range level.Attributes {
			if a.Name == "" {
				return nil, unnamedMember(level.Name, i+1)
			}
			schema, err := c.resolver.PrimitiveType(level.Name, a)
			if err != nil {
				return nil, err
			}
			if schema == nil {
				// an omitted attribute also hides any inherited member of the same name
				drop(a.Name)
				c.warn(e.Name, a.Name, fmt.Sprintf("%s attribute omitted", a.Type))
				continue
			}
			add(Field{
				Name:     a.Name,
				Schema:   schema,
				Optional: a.Optional,
				Extras:   c.userExtras(e.Name, a.Name, schema, a.UserInfo),
			})
		}

		for i, r := range level.Relationships {
			if r.Name == "" {
				return nil, unnamedMember(level.Name, len(level.Attributes)+i+1)
			}
			var schema *jsonschema.Schema
			if r.ToMany {
				schema = c.resolver.ArrayType(r.Destination.Name)
			} else {
				schema = c.resolver.RefType(r.Destination.Name)
			}
			add(Field{
				Name:     r.Name,
				Schema:   schema,
				Optional: r.Optional,
				Extras:   c.userExtras(e.Name, r.Name, schema, r.UserInfo),
			})
		}
	}

	return fields, nil
}

// userExtras collects the user info keywords of a descriptor and warns about skipped keys.
func (c *prepareContext) userExtras(entity, property string, schema *jsonschema.Schema, info coredata.UserInfo) map[string]any {
	extras, skipped := userExtras(schema, info)
	if len(skipped) > 0 {
		c.warn(entity, property, fmt.Sprintf("user info keys ignored: %s", strings.Join(skipped, ", ")))
	}
	return extras
}

func (c *prepareContext) warn(entity, property, msg string) {
	c.warnings = append(c.warnings, Warning{Entity: entity, Property: property, Message: msg})
}

func unnamedMember(entity string, position int) *Error {
	return &Error{
		Domain:   Domain,
		Code:     CodeUnknownPropertyIdentifier,
		Entity:   entity,
		Position: position,
	}
}
