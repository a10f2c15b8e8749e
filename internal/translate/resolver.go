// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"maps"

	"github.com/dacolabs/cd2js/internal/coredata"
	"github.com/invopop/jsonschema"
)

// Date and binary format hints emitted for Date and Binary attributes.
const (
	FormatDateTime        = "date-time"
	FormatBinary          = "binary"
	BinaryContentEncoding = "base64"
)

// reservedKeywords are structural keywords that cannot be set through user info.
// Keywords a descriptor already carries as extras, such as "mappedType" on
// to-one relationships and entity schemas, are protected as well.
var reservedKeywords = map[string]bool{
	"$ref":            true,
	"anyOf":           true,
	"contentEncoding": true,
	"extends":         true,
	"format":          true,
	"id":              true,
	"items":           true,
	"properties":      true,
	"required":        true,
	"title":           true,
	"type":            true,
}

// resolver maps Core Data types to JSON Schema descriptors and formats type identifiers.
type resolver struct {
	prefix string
}

// PrimitiveType maps an attribute type to its descriptor.
// It returns nil, nil for types that are left out of the document (Transformable).
func (r *resolver) PrimitiveType(entity string, a *coredata.Attribute) (*jsonschema.Schema, error) {
	switch a.Type {
	case coredata.String:
		return &jsonschema.Schema{Type: "string"}, nil
	case coredata.Integer16, coredata.Integer32, coredata.Integer64:
		return &jsonschema.Schema{Type: "integer"}, nil
	case coredata.Decimal, coredata.Double, coredata.Float:
		return &jsonschema.Schema{Type: "number"}, nil
	case coredata.Boolean:
		return &jsonschema.Schema{Type: "boolean"}, nil
	case coredata.Date:
		return &jsonschema.Schema{Type: "string", Format: FormatDateTime}, nil
	case coredata.Binary:
		return &jsonschema.Schema{Type: "string", Format: FormatBinary, ContentEncoding: BinaryContentEncoding}, nil
	case coredata.Transformable:
		return nil, nil
	case coredata.Undefined:
		return nil, &Error{
			Domain:        Domain,
			Code:          CodeUndefinedAttributeType,
			Entity:        entity,
			Property:      a.Name,
			AttributeType: a.RawType,
		}
	default:
		return nil, &Error{
			Domain:        Domain,
			Code:          CodeUnsupportedAttributeType,
			Entity:        entity,
			Property:      a.Name,
			AttributeType: a.RawType,
		}
	}
}

// RefType returns the descriptor of a to-one relationship.
func (r *resolver) RefType(target string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Ref:    target,
		Type:   "object",
		Extras: map[string]any{"mappedType": r.FormatDefName(target)},
	}
}

// ArrayType returns the descriptor of a to-many relationship.
func (r *resolver) ArrayType(target string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{Ref: target},
	}
}

// FormatDefName returns the generated type identifier of an entity.
func (r *resolver) FormatDefName(entity string) string {
	return r.prefix + entity
}

// NullSafe wraps a descriptor so that null is accepted alongside the base type.
func NullSafe(s *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{s, {Type: "null"}},
	}
}

// userExtras returns the user info entries that may be set on s as extra
// keywords. Entries naming reserved keywords or extras s already carries are
// returned as skipped.
func userExtras(s *jsonschema.Schema, info coredata.UserInfo) (extras map[string]any, skipped []string) {
	for _, e := range info {
		if _, generated := s.Extras[e.Key]; generated || reservedKeywords[e.Key] {
			skipped = append(skipped, e.Key)
			continue
		}
		if extras == nil {
			extras = make(map[string]any, len(info))
		}
		extras[e.Key] = e.Value
	}
	return extras, skipped
}

// withExtras returns a shallow copy of s carrying extras next to its own.
// s is returned unchanged when there is nothing to add.
func withExtras(s *jsonschema.Schema, extras map[string]any) *jsonschema.Schema {
	if len(extras) == 0 {
		return s
	}
	out := *s
	out.Extras = make(map[string]any, len(s.Extras)+len(extras))
	maps.Copy(out.Extras, s.Extras)
	maps.Copy(out.Extras, extras)
	return &out
}
