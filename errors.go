package fieldschema

import (
	"errors"
	"fmt"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidReference    = "invalid_reference"
	CodeReferenceNotFound   = "reference_not_found"
	CodeNotAnArray          = "not_an_array"
	CodeNoProperties        = "no_properties"
	CodeFieldNotFound       = "field_not_found"
	CodeUnrepresentableType = "unrepresentable_type"
)

// Issue is a single resolution failure. Every Issue is a contract violation
// on the schema or the path, never a transient condition.
type Issue struct {
	Path    string // Canonical path key of the offending field (JSON Pointer form).
	Code    string // One of the codes listed above.
	Message string
	Ref     string // Offending reference string, when the failure involves a $ref.
	// Params carries structured parameters (e.g., {"segment":"x", "index":3})
	// for observability.
	Params map[string]any
}

// Error renders "code at path", appending the reference string when present.
func (it Issue) Error() string {
	s := fmt.Sprintf("%s at %s", it.Code, it.Path)
	if it.Ref != "" {
		s += fmt.Sprintf(" (ref %q)", it.Ref)
	}
	if it.Message != "" {
		s += ": " + it.Message
	}
	return s
}

// AsIssue extracts an Issue from an error using errors.As internally.
func AsIssue(err error) (Issue, bool) {
	if err == nil {
		return Issue{}, false
	}
	var it Issue
	if errors.As(err, &it) {
		return it, true
	}
	return Issue{}, false
}
