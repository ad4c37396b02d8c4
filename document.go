package fieldschema

import (
	"errors"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseDocument decodes a JSON schema document. The top level must be an
// object (a schema node), not an array or scalar.
func ParseDocument(data []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New("fieldschema: document root must be an object")
	}
	return doc, nil
}

// ParseYAMLDocument decodes a YAML schema document, normalizing map keys to
// strings so the result matches the JSON shape.
func ParseYAMLDocument(data []byte) (map[string]any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	doc := yamlToStringMap(v)
	if doc == nil {
		return nil, errors.New("fieldschema: document root must be a mapping")
	}
	return doc, nil
}

// NewFromJSON decodes data as JSON and builds a Compiler over it.
func NewFromJSON(data []byte, opts ...Option) (*Compiler, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return New(doc, opts...)
}

// NewFromYAML decodes data as YAML and builds a Compiler over it.
func NewFromYAML(data []byte, opts ...Option) (*Compiler, error) {
	doc, err := ParseYAMLDocument(data)
	if err != nil {
		return nil, err
	}
	return New(doc, opts...)
}

// yamlToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots
// return nil.
func yamlToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
