// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package coredata

import (
	"io"

	"gopkg.in/yaml.v3"
)

// modelDescription is the YAML/JSON form of a model.
type modelDescription struct {
	Entities []entityDescription `yaml:"entities" json:"entities"`
}

type entityDescription struct {
	Name          string                    `yaml:"name" json:"name"`
	ClassName     string                    `yaml:"className,omitempty" json:"className,omitempty"`
	Parent        string                    `yaml:"parent,omitempty" json:"parent,omitempty"`
	Abstract      bool                      `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	UserInfo      UserInfo                  `yaml:"userInfo,omitempty" json:"userInfo,omitempty"`
	Attributes    []attributeDescription    `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Relationships []relationshipDescription `yaml:"relationships,omitempty" json:"relationships,omitempty"`
}

type attributeDescription struct {
	Name     string   `yaml:"name" json:"name"`
	Type     string   `yaml:"type" json:"type"`
	Optional bool     `yaml:"optional,omitempty" json:"optional,omitempty"`
	UserInfo UserInfo `yaml:"userInfo,omitempty" json:"userInfo,omitempty"`
}

type relationshipDescription struct {
	Name        string   `yaml:"name" json:"name"`
	Destination string   `yaml:"destination" json:"destination"`
	ToMany      bool     `yaml:"toMany,omitempty" json:"toMany,omitempty"`
	Optional    bool     `yaml:"optional,omitempty" json:"optional,omitempty"`
	UserInfo    UserInfo `yaml:"userInfo,omitempty" json:"userInfo,omitempty"`
}

func (d modelDescription) entities() []*Entity {
	entities := make([]*Entity, 0, len(d.Entities))
	for _, de := range d.Entities {
		e := &Entity{
			Name:       de.Name,
			ClassName:  de.ClassName,
			ParentName: de.Parent,
			Abstract:   de.Abstract,
			UserInfo:   de.UserInfo,
		}
		for _, da := range de.Attributes {
			e.Attributes = append(e.Attributes, &Attribute{
				Name:     da.Name,
				Type:     ParseAttributeType(da.Type),
				RawType:  da.Type,
				Optional: da.Optional,
				UserInfo: da.UserInfo,
			})
		}
		for _, dr := range de.Relationships {
			e.Relationships = append(e.Relationships, &Relationship{
				Name:            dr.Name,
				DestinationName: dr.Destination,
				ToMany:          dr.ToMany,
				Optional:        dr.Optional,
				UserInfo:        dr.UserInfo,
			})
		}
		entities = append(entities, e)
	}
	return entities
}

// WriteDescription writes m to w as a YAML model description that Parse can
// read back.
func WriteDescription(w io.Writer, m *Model) error {
	desc := modelDescription{Entities: make([]entityDescription, 0, len(m.Entities))}
	for _, e := range m.Entities {
		de := entityDescription{
			Name:      e.Name,
			ClassName: e.ClassName,
			Parent:    e.ParentName,
			Abstract:  e.Abstract,
			UserInfo:  e.UserInfo,
		}
		for _, a := range e.Attributes {
			typeName := a.RawType
			if a.Type != Unsupported {
				typeName = a.Type.String()
			}
			de.Attributes = append(de.Attributes, attributeDescription{
				Name:     a.Name,
				Type:     typeName,
				Optional: a.Optional,
				UserInfo: a.UserInfo,
			})
		}
		for _, r := range e.Relationships {
			de.Relationships = append(de.Relationships, relationshipDescription{
				Name:        r.Name,
				Destination: r.DestinationName,
				ToMany:      r.ToMany,
				Optional:    r.Optional,
				UserInfo:    r.UserInfo,
			})
		}
		desc.Entities = append(desc.Entities, de)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(desc); err != nil {
		return err
	}
	return enc.Close()
}
