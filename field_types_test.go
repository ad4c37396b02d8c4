package fieldschema_test

import (
	"testing"

	fieldschema "github.com/reoring/fieldschema"
)

func TestFieldType_String(t *testing.T) {
	cases := map[fieldschema.FieldType]string{
		fieldschema.TypeUnknown: "unknown",
		fieldschema.TypeObject:  "object",
		fieldschema.TypeArray:   "array",
		fieldschema.TypeString:  "string",
		fieldschema.TypeNumber:  "number",
		fieldschema.TypeInteger: "integer",
		fieldschema.TypeBoolean: "boolean",
	}
	for ft, want := range cases {
		if got := ft.String(); got != want {
			t.Fatalf("String(%d) = %q, want %q", int(ft), got, want)
		}
	}
}

func TestDescribe_TypedView(t *testing.T) {
	c := mustCompiler(t, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status": map[string]any{
				"type": "string",
				"enum": []any{"on", "off"},
			},
		},
	})
	s, err := c.Describe(".status")
	if err != nil {
		t.Fatalf("describe err: %v", err)
	}
	if s.Type != "string" || len(s.Enum) != 2 {
		t.Fatalf("unexpected typed view: %+v", s)
	}
}
