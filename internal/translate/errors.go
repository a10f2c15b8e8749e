// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
)

// Domain tags every Error produced by this package.
const Domain = "cd2js.translate"

// Code identifies the kind of translation failure.
type Code int

const (
	// CodeUnknownPropertyIdentifier: an attribute or relationship has no name.
	CodeUnknownPropertyIdentifier Code = iota + 1
	// CodeUnsupportedAttributeType: the declared attribute type is outside the supported set.
	CodeUnsupportedAttributeType
	// CodeUndefinedAttributeType: the attribute type is Undefined or was never set.
	CodeUndefinedAttributeType
)

func (c Code) String() string {
	switch c {
	case CodeUnknownPropertyIdentifier:
		return "UnknownPropertyIdentifier"
	case CodeUnsupportedAttributeType:
		return "UnsupportedAttributeType"
	case CodeUndefinedAttributeType:
		return "UndefinedAttributeType"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

var (
	// ErrUnknownPropertyIdentifier matches errors for unnamed attributes and relationships.
	ErrUnknownPropertyIdentifier = errors.New("unknown property identifier")

	// ErrUnsupportedAttributeType matches errors for unsupported and undefined attribute types.
	ErrUnsupportedAttributeType = errors.New("unsupported attribute type")
)

// Error is the structured failure returned by Translate.
type Error struct {
	Domain        string
	Code          Code
	Entity        string // entity declaring the offending member
	Property      string // empty for CodeUnknownPropertyIdentifier
	AttributeType string // declared type, for attribute type errors
	Position      int    // 1-based position of the member within its kind, for unnamed members
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeUnknownPropertyIdentifier:
		return fmt.Sprintf("%s(%d): entity %q: member #%d has no name: %v",
			e.Domain, e.Code, e.Entity, e.Position, ErrUnknownPropertyIdentifier)
	case CodeUndefinedAttributeType:
		return fmt.Sprintf("%s(%d): entity %q: attribute %q: type is undefined: %v",
			e.Domain, e.Code, e.Entity, e.Property, ErrUnsupportedAttributeType)
	default:
		return fmt.Sprintf("%s(%d): entity %q: attribute %q: type %q: %v",
			e.Domain, e.Code, e.Entity, e.Property, e.AttributeType, ErrUnsupportedAttributeType)
	}
}

func (e *Error) Unwrap() error {
	if e.Code == CodeUnknownPropertyIdentifier {
		return ErrUnknownPropertyIdentifier
	}
	return ErrUnsupportedAttributeType
}

// Warning reports a member that was left out of the document.
type Warning struct {
	Entity   string
	Property string
	Message  string
}

func (w Warning) String() string {
	if w.Property == "" {
		return fmt.Sprintf("%s: %s", w.Entity, w.Message)
	}
	return fmt.Sprintf("%s.%s: %s", w.Entity, w.Property, w.Message)
}
