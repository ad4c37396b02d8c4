package fieldschema

// normalizeRoot derives the working root the field walk starts from. An
// object-typed document is used as-is. A document that is itself a bare $ref
// is dereferenced once against itself, the target merged over its siblings.
// Anything else (a scalar- or array-typed top level) passes through unchanged.
// Runs exactly once, at construction.
func normalizeRoot(doc map[string]any) (map[string]any, error) {
	if t, _ := doc["type"].(string); t == "object" {
		return doc, nil
	}
	if _, ok := doc["$ref"].(string); ok {
		return derefNode(doc, doc, "/")
	}
	return doc, nil
}
