package fieldschema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	fieldschema "github.com/reoring/fieldschema"
)

const userJSON = `{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "tags": {"type": "array", "items": {"type": "string"}}
  },
  "required": ["name"]
}`

const userYAML = `type: object
properties:
  name:
    type: string
  tags:
    type: array
    items:
      type: string
required:
  - name
`

func TestNewFromJSON_And_NewFromYAML_Agree(t *testing.T) {
	cj, err := fieldschema.NewFromJSON([]byte(userJSON))
	if err != nil {
		t.Fatalf("json compiler: %v", err)
	}
	cy, err := fieldschema.NewFromYAML([]byte(userYAML))
	if err != nil {
		t.Fatalf("yaml compiler: %v", err)
	}
	for _, path := range []string{".name", ".tags.$", ""} {
		nj, err := cj.Resolve(path)
		if err != nil {
			t.Fatalf("json resolve %q: %v", path, err)
		}
		ny, err := cy.Resolve(path)
		if err != nil {
			t.Fatalf("yaml resolve %q: %v", path, err)
		}
		if diff := cmp.Diff(nj, ny); diff != "" {
			t.Fatalf("resolve %q differs across intakes (-json +yaml):\n%s", path, diff)
		}
	}
	ej, _ := cj.Entry(".name")
	ey, _ := cy.Entry(".name")
	if ej == nil || ey == nil || ej.IsRequired != ey.IsRequired {
		t.Fatalf("entries differ across intakes: %+v vs %+v", ej, ey)
	}
	if !ej.IsRequired {
		t.Fatalf("expected name required")
	}
}

func TestParseDocument_RejectsNonObjectRoot(t *testing.T) {
	if _, err := fieldschema.ParseDocument([]byte(`["not","a","schema"]`)); err == nil {
		t.Fatalf("expected error for array root")
	}
	if _, err := fieldschema.ParseDocument([]byte(`{`)); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
	if _, err := fieldschema.ParseYAMLDocument([]byte(`- a`)); err == nil {
		t.Fatalf("expected error for YAML sequence root")
	}
}
