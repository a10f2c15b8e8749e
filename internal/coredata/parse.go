// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package coredata

import (
	"encoding/xml"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a model source.
type Format int

const (
	// XML is the Core Data "contents" document found inside .xcdatamodel directories.
	XML Format = iota
	// YAML is a model description in YAML.
	YAML
	// JSON is a model description in JSON.
	JSON
)

func (f Format) String() string {
	switch f {
	case XML:
		return "xml"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Parse decodes a model from r and resolves its references.
// Every failure wraps ErrMalformedModel.
func Parse(r io.Reader, format Format) (*Model, error) {
	var (
		entities []*Entity
		err      error
	)

	switch format {
	case XML:
		entities, err = parseXML(r)
	case YAML:
		var desc modelDescription
		if err = yaml.NewDecoder(r).Decode(&desc); err == nil {
			entities = desc.entities()
		}
	case JSON:
		var desc modelDescription
		if err = json.NewDecoder(r).Decode(&desc); err == nil {
			entities = desc.entities()
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %s", ErrMalformedModel, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModel, err)
	}

	return NewModel(entities)
}

type xmlModel struct {
	XMLName  xml.Name    `xml:"model"`
	Entities []xmlEntity `xml:"entity"`
}

type xmlEntity struct {
	Name          string            `xml:"name,attr"`
	ClassName     string            `xml:"representedClassName,attr"`
	Parent        string            `xml:"parentEntity,attr"`
	Abstract      string            `xml:"isAbstract,attr"`
	Attributes    []xmlAttribute    `xml:"attribute"`
	Relationships []xmlRelationship `xml:"relationship"`
	UserInfo      []xmlEntry        `xml:"userInfo>entry"`
}

type xmlAttribute struct {
	Name     string     `xml:"name,attr"`
	Type     string     `xml:"attributeType,attr"`
	Optional string     `xml:"optional,attr"`
	UserInfo []xmlEntry `xml:"userInfo>entry"`
}

type xmlRelationship struct {
	Name        string     `xml:"name,attr"`
	Destination string     `xml:"destinationEntity,attr"`
	ToMany      string     `xml:"toMany,attr"`
	Optional    string     `xml:"optional,attr"`
	UserInfo    []xmlEntry `xml:"userInfo>entry"`
}

type xmlEntry struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

func parseXML(r io.Reader) ([]*Entity, error) {
	var doc xmlModel
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	entities := make([]*Entity, 0, len(doc.Entities))
	for _, xe := range doc.Entities {
		e := &Entity{
			Name:       xe.Name,
			ClassName:  xe.ClassName,
			ParentName: xe.Parent,
			Abstract:   yes(xe.Abstract),
			UserInfo:   xmlUserInfo(xe.UserInfo),
		}
		for _, xa := range xe.Attributes {
			e.Attributes = append(e.Attributes, &Attribute{
				Name:     xa.Name,
				Type:     ParseAttributeType(xa.Type),
				RawType:  xa.Type,
				Optional: yes(xa.Optional),
				UserInfo: xmlUserInfo(xa.UserInfo),
			})
		}
		for _, xr := range xe.Relationships {
			e.Relationships = append(e.Relationships, &Relationship{
				Name:            xr.Name,
				DestinationName: xr.Destination,
				ToMany:          yes(xr.ToMany),
				Optional:        yes(xr.Optional),
				UserInfo:        xmlUserInfo(xr.UserInfo),
			})
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func yes(v string) bool {
	return v == "YES"
}

func xmlUserInfo(entries []xmlEntry) UserInfo {
	if len(entries) == 0 {
		return nil
	}
	info := make(UserInfo, len(entries))
	for i, e := range entries {
		info[i] = UserInfoEntry(e)
	}
	return info
}
