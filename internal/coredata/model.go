// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package coredata loads Core Data managed object models into a resolved
// entity graph.
package coredata

import "fmt"

// Model is a resolved data model. Entities keep their declaration order.
type Model struct {
	Entities []*Entity

	index map[string]*Entity
}

// Entity is a named record type with attributes and relationships.
type Entity struct {
	Name          string
	ClassName     string // representedClassName, informational
	ParentName    string
	Parent        *Entity // nil for root entities
	Abstract      bool
	Attributes    []*Attribute
	Relationships []*Relationship
	UserInfo      UserInfo
}

// Attribute is a scalar field of an entity.
type Attribute struct {
	Name     string
	Type     AttributeType
	RawType  string // type as declared in the source model
	Optional bool
	UserInfo UserInfo
}

// Relationship is a reference from one entity to another.
type Relationship struct {
	Name            string
	DestinationName string
	Destination     *Entity
	ToMany          bool
	Optional        bool
	UserInfo        UserInfo
}

// UserInfo holds the key/value annotations attached to a model element,
// in declaration order.
type UserInfo []UserInfoEntry

// UserInfoEntry is a single user info annotation.
type UserInfoEntry struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// Get returns the value stored under key.
func (u UserInfo) Get(key string) (string, bool) {
	for _, e := range u {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// NewModel links parent and destination references by name and returns the
// resolved model. Duplicate entity names, dangling references and inheritance
// cycles are reported as ErrMalformedModel.
func NewModel(entities []*Entity) (*Model, error) {
	m := &Model{
		Entities: entities,
		index:    make(map[string]*Entity, len(entities)),
	}

	for i, e := range entities {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entity #%d has no name", ErrMalformedModel, i+1)
		}
		if _, exists := m.index[e.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate entity %q", ErrMalformedModel, e.Name)
		}
		m.index[e.Name] = e
	}

	for _, e := range entities {
		e.Parent = nil
		if e.ParentName != "" {
			parent, ok := m.index[e.ParentName]
			if !ok {
				return nil, fmt.Errorf("%w: entity %q: parent entity %q not found", ErrMalformedModel, e.Name, e.ParentName)
			}
			e.Parent = parent
		}
		for _, r := range e.Relationships {
			dest, ok := m.index[r.DestinationName]
			if !ok {
				return nil, fmt.Errorf("%w: entity %q: relationship %q: destination entity %q not found",
					ErrMalformedModel, e.Name, r.Name, r.DestinationName)
			}
			r.Destination = dest
		}
	}

	for _, e := range entities {
		seen := map[*Entity]struct{}{}
		for p := e; p != nil; p = p.Parent {
			if _, ok := seen[p]; ok {
				return nil, fmt.Errorf("%w: entity %q: inheritance cycle", ErrMalformedModel, e.Name)
			}
			seen[p] = struct{}{}
		}
	}

	return m, nil
}

// Entity returns the entity with the given name.
func (m *Model) Entity(name string) (*Entity, bool) {
	e, ok := m.index[name]
	return e, ok
}

// Lineage returns the inheritance chain of e, root ancestor first and e last.
func (e *Entity) Lineage() []*Entity {
	var chain []*Entity
	for p := e; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
