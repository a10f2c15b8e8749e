// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package coredata

import "strings"

// AttributeType is the declared storage type of an attribute.
type AttributeType int

const (
	// Undefined is an attribute whose type was never set (Core Data's "Undefined").
	Undefined AttributeType = iota
	String
	Integer16
	Integer32
	Integer64
	Decimal
	Double
	Float
	Boolean
	Date
	Binary
	Transformable
	// Unsupported is any declared type outside the set above.
	// The declared spelling is kept in Attribute.RawType.
	Unsupported
)

var attributeTypeNames = [...]string{
	Undefined:     "Undefined",
	String:        "String",
	Integer16:     "Integer 16",
	Integer32:     "Integer 32",
	Integer64:     "Integer 64",
	Decimal:       "Decimal",
	Double:        "Double",
	Float:         "Float",
	Boolean:       "Boolean",
	Date:          "Date",
	Binary:        "Binary",
	Transformable: "Transformable",
	Unsupported:   "Unsupported",
}

// String returns the Core Data spelling of the type.
func (t AttributeType) String() string {
	if t < 0 || int(t) >= len(attributeTypeNames) {
		return "Unsupported"
	}
	return attributeTypeNames[t]
}

// ParseAttributeType maps a declared type name to an AttributeType.
// It accepts the Core Data spelling ("Integer 16", "Binary") as well as the
// compact spelling used in model descriptions ("integer16", "binary-data").
// An empty name is Undefined; an unknown name is Unsupported.
func ParseAttributeType(name string) AttributeType {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))

	switch key {
	case "", "undefined":
		return Undefined
	case "string":
		return String
	case "integer16":
		return Integer16
	case "integer32":
		return Integer32
	case "integer64":
		return Integer64
	case "decimal":
		return Decimal
	case "double":
		return Double
	case "float":
		return Float
	case "boolean", "bool":
		return Boolean
	case "date":
		return Date
	case "binary", "binarydata":
		return Binary
	case "transformable":
		return Transformable
	default:
		return Unsupported
	}
}
