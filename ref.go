package fieldschema

import (
	"strconv"
	"strings"
)

// resolveRef looks up an in-document reference against the root document.
// The reference must be "#"-anchored; pointers are split on '/', empty and
// "#" tokens dropped, and the remaining tokens descend the document one step
// each (maps by key, slices by index). atPath names the field being resolved,
// for error reporting only.
func resolveRef(root map[string]any, ref, atPath string) (map[string]any, error) {
	if !strings.HasPrefix(ref, "#") {
		return nil, Issue{
			Path:    atPath,
			Code:    CodeInvalidReference,
			Ref:     ref,
			Message: "only in-document references are supported",
		}
	}
	var cur any = root
	for _, tok := range strings.Split(ref, "/") {
		if tok == "" || tok == "#" {
			continue
		}
		tok = decodePointerToken(tok)
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[tok]
			if !ok {
				return nil, refNotFound(ref, atPath, tok)
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, refNotFound(ref, atPath, tok)
			}
			cur = node[idx]
		default:
			return nil, refNotFound(ref, atPath, tok)
		}
	}
	target, ok := cur.(map[string]any)
	if !ok {
		return nil, Issue{
			Path:    atPath,
			Code:    CodeReferenceNotFound,
			Ref:     ref,
			Message: "reference target is not a schema object",
		}
	}
	return target, nil
}

func refNotFound(ref, atPath, tok string) Issue {
	return Issue{
		Path:    atPath,
		Code:    CodeReferenceNotFound,
		Ref:     ref,
		Message: "no value at pointer segment " + strconv.Quote(tok),
	}
}

// derefNode replaces a $ref node by its target merged over the sibling keys:
// the dereferenced fields win on conflict, siblings survive where the target
// lacks the key. Nodes without $ref are returned untouched.
func derefNode(root, node map[string]any, atPath string) (map[string]any, error) {
	ref, ok := node["$ref"].(string)
	if !ok {
		return node, nil
	}
	target, err := resolveRef(root, ref, atPath)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(node)+len(target))
	for k, v := range node {
		if k == "$ref" {
			continue
		}
		out[k] = v
	}
	for k, v := range target {
		out[k] = v
	}
	return out, nil
}
