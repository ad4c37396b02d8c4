package fieldschema

// FieldType is the downstream-facing mapping of a resolved schema type.
type FieldType int

const (
	TypeUnknown FieldType = iota // No type declared or inferred.
	TypeObject
	TypeArray
	TypeString
	TypeNumber
	TypeInteger
	TypeBoolean
)

func (t FieldType) String() string {
	switch t {
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// fieldTypeOf maps a schema "type" value onto FieldType. The "null" type is
// not representable downstream and is rejected by TypeOf with an Issue.
func fieldTypeOf(s string) (FieldType, bool) {
	switch s {
	case "object":
		return TypeObject, true
	case "array":
		return TypeArray, true
	case "string":
		return TypeString, true
	case "number":
		return TypeNumber, true
	case "integer":
		return TypeInteger, true
	case "boolean":
		return TypeBoolean, true
	}
	return TypeUnknown, false
}

// nodeKind classifies the shape a walk step descends through, so the branch
// selection in the compiler is an exhaustive switch rather than scattered
// field-presence checks.
type nodeKind int

const (
	kindScalar nodeKind = iota
	kindObject
	kindArray
	kindCombinator
)

func kindOf(node map[string]any) nodeKind {
	switch t, _ := node["type"].(string); t {
	case "object":
		return kindObject
	case "array":
		return kindArray
	}
	if hasCombinator(node) {
		return kindCombinator
	}
	return kindScalar
}

func hasCombinator(node map[string]any) bool {
	for _, kw := range combinatorKeywords {
		if _, ok := node[kw].([]any); ok {
			return true
		}
	}
	return false
}

// combinatorKeywords is the fixed branch-priority order: a property defined
// in more than one branch resolves to the allOf branch first.
var combinatorKeywords = [...]string{"allOf", "anyOf", "oneOf"}
