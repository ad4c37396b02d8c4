// Package jsonschema holds the typed read-only view of resolved schema
// nodes, for consumers that prefer a struct over the raw document maps.
package jsonschema

import (
	"github.com/goccy/go-json"
)

// Schema is a minimal JSON Schema representation covering the subset the
// field compiler resolves. Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type    string `json:"type,omitempty"`
	Format  string `json:"format,omitempty"`
	Default any    `json:"default,omitempty"`
	Enum    []any  `json:"enum,omitempty"`
	Ref     string `json:"$ref,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`

	// Array. Items holds the single item schema; TupleItems the positional
	// schemas of a tuple-typed array. At most one of the two is set.
	Items      *Schema   `json:"-"`
	TupleItems []*Schema `json:"-"`

	// Combinators
	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// FromNode converts a raw decoded schema node into the typed view. Unknown
// keys are dropped; non-schema values in schema positions are ignored.
func FromNode(node map[string]any) *Schema {
	if node == nil {
		return nil
	}
	s := &Schema{}
	s.Type, _ = node["type"].(string)
	s.Format, _ = node["format"].(string)
	s.Default = node["default"]
	s.Enum, _ = node["enum"].([]any)
	s.Ref, _ = node["$ref"].(string)
	if props, ok := node["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*Schema, len(props))
		for name, raw := range props {
			if m, ok := raw.(map[string]any); ok {
				s.Properties[name] = FromNode(m)
			}
		}
	}
	if req, ok := node["required"].([]any); ok {
		for _, it := range req {
			if name, ok := it.(string); ok {
				s.Required = append(s.Required, name)
			}
		}
	}
	switch items := node["items"].(type) {
	case map[string]any:
		s.Items = FromNode(items)
	case []any:
		for _, it := range items {
			if m, ok := it.(map[string]any); ok {
				s.TupleItems = append(s.TupleItems, FromNode(m))
			}
		}
	}
	s.AllOf = schemaList(node["allOf"])
	s.AnyOf = schemaList(node["anyOf"])
	s.OneOf = schemaList(node["oneOf"])
	return s
}

func schemaList(v any) []*Schema {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []*Schema
	for _, it := range list {
		if m, ok := it.(map[string]any); ok {
			out = append(out, FromNode(m))
		}
	}
	return out
}

// MarshalJSON emits items from whichever of Items/TupleItems is set.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type alias Schema
	out := struct {
		*alias
		Items any `json:"items,omitempty"`
	}{alias: (*alias)(s)}
	switch {
	case s.Items != nil:
		out.Items = s.Items
	case len(s.TupleItems) > 0:
		out.Items = s.TupleItems
	}
	return json.Marshal(out)
}
