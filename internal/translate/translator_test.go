// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dacolabs/cd2js/internal/coredata"
	"github.com/dacolabs/cd2js/internal/jschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// personModel builds Person{name, age?, friends*} and Employee(Person){salary}.
func personModel(t *testing.T) *coredata.Model {
	t.Helper()
	m, err := coredata.NewModel([]*coredata.Entity{
		{
			Name: "Person",
			Attributes: []*coredata.Attribute{
				{Name: "name", Type: coredata.String, RawType: "String"},
				{Name: "age", Type: coredata.Integer16, RawType: "Integer 16", Optional: true},
			},
			Relationships: []*coredata.Relationship{
				{Name: "friends", DestinationName: "Person", ToMany: true, Optional: true},
			},
		},
		{
			Name:       "Employee",
			ParentName: "Person",
			Attributes: []*coredata.Attribute{
				{Name: "salary", Type: coredata.Decimal, RawType: "Decimal"},
			},
		},
	})
	require.NoError(t, err)
	return m
}

func translateDoc(t *testing.T, m *coredata.Model, opts Options) ([]map[string]any, []byte) {
	t.Helper()
	res, err := New(m).Translate(opts)
	require.NoError(t, err)

	var doc []map[string]any
	require.NoError(t, json.Unmarshal(res.Document, &doc))
	return doc, res.Document
}

func TestTranslate_PersonScenario(t *testing.T) {
	doc, raw := translateDoc(t, personModel(t), Options{})
	require.Len(t, doc, 2)

	person := doc[0]
	assert.Equal(t, "Person", person["id"])
	assert.Equal(t, "object", person["type"])
	assert.Equal(t, []any{"name"}, person["required"])

	props := person["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, props["name"])
	assert.Equal(t, map[string]any{"type": "integer"}, props["age"])
	assert.Equal(t, map[string]any{
		"type":  "array",
		"items": map[string]any{"$ref": "Person"},
	}, props["friends"])

	order := jschema.ExtractKeyOrder(raw)
	assert.Equal(t, []string{"name", "age", "friends"}, order["[0].properties"])
}

func TestTranslate_EmployeeInheritsPerson(t *testing.T) {
	doc, raw := translateDoc(t, personModel(t), Options{})

	employee := doc[1]
	assert.Equal(t, "Employee", employee["id"])
	assert.Equal(t, map[string]any{"$ref": "Person"}, employee["extends"])
	assert.Equal(t, []any{"name", "salary"}, employee["required"])

	props := employee["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "number"}, props["salary"])

	order := jschema.ExtractKeyOrder(raw)
	assert.Equal(t, []string{"name", "age", "friends", "salary"}, order["[1].properties"])
}

func TestTranslate_ClassNamePrefix(t *testing.T) {
	m, err := coredata.NewModel([]*coredata.Entity{
		{Name: "Company"},
		{
			Name: "Person",
			Attributes: []*coredata.Attribute{
				{Name: "name", Type: coredata.String},
			},
			Relationships: []*coredata.Relationship{
				{Name: "employer", DestinationName: "Company"},
			},
		},
	})
	require.NoError(t, err)

	doc, _ := translateDoc(t, m, Options{ClassNamePrefix: "BK"})

	person := doc[1]
	assert.Equal(t, "Person", person["id"])
	assert.Equal(t, "BKPerson", person["title"])
	assert.Equal(t, "BKPerson", person["mappedType"])

	props := person["properties"].(map[string]any)
	assert.Contains(t, props, "name")
	assert.Equal(t, map[string]any{
		"$ref":       "Company",
		"type":       "object",
		"mappedType": "BKCompany",
	}, props["employer"])
}

func TestTranslate_AttributeTypeTable(t *testing.T) {
	tests := []struct {
		typ  coredata.AttributeType
		want map[string]any
	}{
		{coredata.String, map[string]any{"type": "string"}},
		{coredata.Integer16, map[string]any{"type": "integer"}},
		{coredata.Integer32, map[string]any{"type": "integer"}},
		{coredata.Integer64, map[string]any{"type": "integer"}},
		{coredata.Decimal, map[string]any{"type": "number"}},
		{coredata.Double, map[string]any{"type": "number"}},
		{coredata.Float, map[string]any{"type": "number"}},
		{coredata.Boolean, map[string]any{"type": "boolean"}},
		{coredata.Date, map[string]any{"type": "string", "format": "date-time"}},
		{coredata.Binary, map[string]any{"type": "string", "format": "binary", "contentEncoding": "base64"}},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			m, err := coredata.NewModel([]*coredata.Entity{{
				Name:       "Thing",
				Attributes: []*coredata.Attribute{{Name: "value", Type: tt.typ, RawType: tt.typ.String()}},
			}})
			require.NoError(t, err)

			doc, _ := translateDoc(t, m, Options{})
			props := doc[0]["properties"].(map[string]any)
			assert.Equal(t, tt.want, props["value"])
		})
	}
}

func TestTranslate_TransformableOmittedWithWarning(t *testing.T) {
	m, err := coredata.NewModel([]*coredata.Entity{{
		Name: "Note",
		Attributes: []*coredata.Attribute{
			{Name: "body", Type: coredata.String},
			{Name: "payload", Type: coredata.Transformable, RawType: "Transformable"},
		},
	}})
	require.NoError(t, err)

	res, err := New(m).Translate(Options{})
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Note", res.Warnings[0].Entity)
	assert.Equal(t, "payload", res.Warnings[0].Property)
	assert.Contains(t, res.Warnings[0].String(), "Transformable attribute omitted")

	order := jschema.ExtractKeyOrder(res.Document)
	assert.Equal(t, []string{"body"}, order["[0].properties"])
}

func TestTranslate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		attr      *coredata.Attribute
		rel       *coredata.Relationship
		wantCode  Code
		wantErr   error
		wantProp  string
		wantType  string
		wantInMsg string
	}{
		{
			name:      "unsupported type",
			attr:      &coredata.Attribute{Name: "id", Type: coredata.Unsupported, RawType: "UUID"},
			wantCode:  CodeUnsupportedAttributeType,
			wantErr:   ErrUnsupportedAttributeType,
			wantProp:  "id",
			wantType:  "UUID",
			wantInMsg: `attribute "id": type "UUID"`,
		},
		{
			name:      "undefined type",
			attr:      &coredata.Attribute{Name: "blob", Type: coredata.Undefined},
			wantCode:  CodeUndefinedAttributeType,
			wantErr:   ErrUnsupportedAttributeType,
			wantProp:  "blob",
			wantInMsg: "type is undefined",
		},
		{
			name:      "unnamed attribute",
			attr:      &coredata.Attribute{Type: coredata.String},
			wantCode:  CodeUnknownPropertyIdentifier,
			wantErr:   ErrUnknownPropertyIdentifier,
			wantInMsg: "member #2 has no name",
		},
		{
			name:      "unnamed relationship",
			rel:       &coredata.Relationship{DestinationName: "Thing"},
			wantCode:  CodeUnknownPropertyIdentifier,
			wantErr:   ErrUnknownPropertyIdentifier,
			wantInMsg: "member #2 has no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thing := &coredata.Entity{
				Name:       "Thing",
				Attributes: []*coredata.Attribute{{Name: "ok", Type: coredata.String}},
			}
			if tt.attr != nil {
				thing.Attributes = append(thing.Attributes, tt.attr)
			}
			if tt.rel != nil {
				thing.Relationships = append(thing.Relationships, tt.rel)
			}
			m, err := coredata.NewModel([]*coredata.Entity{thing})
			require.NoError(t, err)

			res, err := New(m).Translate(Options{})
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)

			var terr *Error
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, Domain, terr.Domain)
			assert.Equal(t, tt.wantCode, terr.Code)
			assert.Equal(t, "Thing", terr.Entity)
			assert.Equal(t, tt.wantProp, terr.Property)
			assert.Equal(t, tt.wantType, terr.AttributeType)
			assert.Contains(t, err.Error(), tt.wantInMsg)
		})
	}
}

func TestTranslate_ErrorHaltsWholeDocument(t *testing.T) {
	m, err := coredata.NewModel([]*coredata.Entity{
		{Name: "Good", Attributes: []*coredata.Attribute{{Name: "a", Type: coredata.String}}},
		{Name: "Bad", Attributes: []*coredata.Attribute{{Name: "b", Type: coredata.Unsupported, RawType: "URI"}}},
	})
	require.NoError(t, err)

	out, err := New(m).TranslateString("", false)
	assert.Empty(t, out)

	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "Bad", terr.Entity)
	assert.Equal(t, "b", terr.Property)
}

func TestTranslate_NullSafeParser(t *testing.T) {
	m := personModel(t)
	plain, _ := translateDoc(t, m, Options{})
	safe, _ := translateDoc(t, m, Options{NullSafeParser: true})

	for i := range plain {
		plainProps := plain[i]["properties"].(map[string]any)
		safeProps := safe[i]["properties"].(map[string]any)
		required := map[string]bool{}
		for _, r := range plain[i]["required"].([]any) {
			required[r.(string)] = true
		}

		for name, desc := range plainProps {
			if required[name] {
				assert.Equal(t, desc, safeProps[name], name)
				continue
			}
			assert.Equal(t, map[string]any{
				"anyOf": []any{desc, map[string]any{"type": "null"}},
			}, safeProps[name], name)
		}
		assert.Equal(t, plain[i]["required"], safe[i]["required"])
	}
}

func TestTranslate_Idempotent(t *testing.T) {
	tr := New(personModel(t))

	first, err := tr.TranslateString("BK", true)
	require.NoError(t, err)
	second, err := tr.TranslateString("BK", true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTranslate_DeclarationOrderNotAlphabetical(t *testing.T) {
	m, err := coredata.NewModel([]*coredata.Entity{
		{
			Name: "Zebra",
			Attributes: []*coredata.Attribute{
				{Name: "zulu", Type: coredata.String},
				{Name: "alpha", Type: coredata.String},
				{Name: "mike", Type: coredata.String},
			},
		},
		{Name: "Aardvark"},
	})
	require.NoError(t, err)

	doc, raw := translateDoc(t, m, Options{})
	assert.Equal(t, "Zebra", doc[0]["id"])
	assert.Equal(t, "Aardvark", doc[1]["id"])
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, jschema.ExtractKeyOrder(raw)["[0].properties"])
	assert.Equal(t, []any{"zulu", "alpha", "mike"}, doc[0]["required"])
	assert.NotContains(t, doc[1], "required")
}

func TestTranslate_OverrideKeepsPosition(t *testing.T) {
	m, err := coredata.NewModel([]*coredata.Entity{
		{
			Name: "Base",
			Attributes: []*coredata.Attribute{
				{Name: "id", Type: coredata.Integer32},
				{Name: "label", Type: coredata.String, Optional: true},
			},
		},
		{
			Name:       "Derived",
			ParentName: "Base",
			Attributes: []*coredata.Attribute{
				{Name: "extra", Type: coredata.Boolean},
				{Name: "label", Type: coredata.String},
			},
		},
	})
	require.NoError(t, err)

	doc, raw := translateDoc(t, m, Options{})
	assert.Equal(t, []string{"id", "label", "extra"}, jschema.ExtractKeyOrder(raw)["[1].properties"])
	assert.Equal(t, []any{"id", "label", "extra"}, doc[1]["required"])
	assert.Equal(t, []any{"id"}, doc[0]["required"])
}

func TestTranslate_UserInfoPassThrough(t *testing.T) {
	m, err := coredata.NewModel([]*coredata.Entity{{
		Name:     "Person",
		UserInfo: coredata.UserInfo{{Key: "jsonKey", Value: "person"}, {Key: "id", Value: "clobber"}},
		Attributes: []*coredata.Attribute{{
			Name: "name",
			Type: coredata.String,
			UserInfo: coredata.UserInfo{
				{Key: "mappedProperty", Value: "fullName"},
				{Key: "type", Value: "number"},
			},
		}},
	}})
	require.NoError(t, err)

	res, err := New(m).Translate(Options{})
	require.NoError(t, err)

	var doc []map[string]any
	require.NoError(t, json.Unmarshal(res.Document, &doc))

	assert.Equal(t, "Person", doc[0]["id"])
	assert.Equal(t, "person", doc[0]["jsonKey"])
	props := doc[0]["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string", "mappedProperty": "fullName"}, props["name"])

	var msgs []string
	for _, w := range res.Warnings {
		msgs = append(msgs, w.String())
	}
	assert.ElementsMatch(t, []string{
		"Person.name: user info keys ignored: type",
		"Person: user info keys ignored: id",
	}, msgs)
}

func TestTranslate_UserInfoMappedType(t *testing.T) {
	m, err := coredata.NewModel([]*coredata.Entity{
		{
			Name:     "Order",
			UserInfo: coredata.UserInfo{{Key: "mappedType", Value: "Custom"}},
			Attributes: []*coredata.Attribute{{
				Name:     "status",
				Type:     coredata.Integer16,
				UserInfo: coredata.UserInfo{{Key: "mappedType", Value: "BKOrderStatus"}},
			}},
			Relationships: []*coredata.Relationship{{
				Name:            "parent",
				DestinationName: "Order",
				UserInfo:        coredata.UserInfo{{Key: "mappedType", Value: "Other"}},
			}},
		},
	})
	require.NoError(t, err)

	res, err := New(m).Translate(Options{ClassNamePrefix: "BK"})
	require.NoError(t, err)

	var doc []map[string]any
	require.NoError(t, json.Unmarshal(res.Document, &doc))

	assert.Equal(t, "BKOrder", doc[0]["mappedType"])
	props := doc[0]["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "integer", "mappedType": "BKOrderStatus"}, props["status"])
	assert.Equal(t, "BKOrder", props["parent"].(map[string]any)["mappedType"])

	var msgs []string
	for _, w := range res.Warnings {
		msgs = append(msgs, w.String())
	}
	assert.ElementsMatch(t, []string{
		"Order.parent: user info keys ignored: mappedType",
		"Order: user info keys ignored: mappedType",
	}, msgs)
}

func TestTranslate_NullSafeUserInfoOnWrapper(t *testing.T) {
	m, err := coredata.NewModel([]*coredata.Entity{{
		Name: "Person",
		Attributes: []*coredata.Attribute{{
			Name:     "born",
			Type:     coredata.Date,
			Optional: true,
			UserInfo: coredata.UserInfo{{Key: "typeConverter", Value: "BKDateConverter"}},
		}},
	}})
	require.NoError(t, err)

	tr := New(m)
	for _, nullSafe := range []bool{false, true} {
		res, err := tr.Translate(Options{NullSafeParser: nullSafe})
		require.NoError(t, err)

		var doc []map[string]any
		require.NoError(t, json.Unmarshal(res.Document, &doc))
		_, hasRequired := doc[0]["required"]
		assert.False(t, hasRequired, "entity without required members has no required key")

		born := doc[0]["properties"].(map[string]any)["born"].(map[string]any)

		assert.Equal(t, "BKDateConverter", born["typeConverter"])
		if nullSafe {
			anyOf := born["anyOf"].([]any)
			require.Len(t, anyOf, 2)
			assert.Equal(t, map[string]any{"type": "string", "format": FormatDateTime}, anyOf[0])
		}
	}
}

func TestTranslate_OutputPassesContractCheck(t *testing.T) {
	m, err := coredata.LoadFile("../coredata/testdata/Company.xcdatamodeld")
	require.NoError(t, err)

	for _, nullSafe := range []bool{false, true} {
		res, err := New(m).Translate(Options{ClassNamePrefix: "BK", NullSafeParser: nullSafe})
		require.NoError(t, err)
		assert.NoError(t, jschema.Check(res.Document))
	}
}

func TestNewFromFile(t *testing.T) {
	tr, err := NewFromFile("../coredata/testdata/company.yaml")
	require.NoError(t, err)
	assert.Len(t, tr.Model().Entities, 3)

	_, err = NewFromFile("../coredata/testdata/missing.xcdatamodeld")
	require.Error(t, err)
	assert.ErrorIs(t, err, coredata.ErrModelNotFound)

	var le *coredata.LoadError
	assert.ErrorAs(t, err, &le)
}

func TestTranslate_EmptyModel(t *testing.T) {
	m, err := coredata.NewModel(nil)
	require.NoError(t, err)

	out, err := New(m).TranslateString("", false)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}
