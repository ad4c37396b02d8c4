package fieldschema_test

import (
	"reflect"
	"testing"

	fieldschema "github.com/reoring/fieldschema"
)

func TestParsePath_DotBracket(t *testing.T) {
	cases := []struct {
		raw  string
		want fieldschema.Path
	}{
		{"", nil},
		{".a.b", fieldschema.Path{"a", "b"}},
		{"a.b", fieldschema.Path{"a", "b"}},
		{".a.b[0]", fieldschema.Path{"a", "b", "0"}},
		{".a['x.y'].b", fieldschema.Path{"a", "x.y", "b"}},
		{`.a['it\'s']`, fieldschema.Path{"a", "it's"}},
		{".a.$", fieldschema.Path{"a", "$"}},
		{".a[$]", fieldschema.Path{"a", "$"}},
	}
	for _, tc := range cases {
		got := fieldschema.ParsePath(tc.raw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParsePath(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParsePath_Pointer(t *testing.T) {
	cases := []struct {
		raw  string
		want fieldschema.Path
	}{
		{"/a/b/0", fieldschema.Path{"a", "b", "0"}},
		{"/", nil},
		{"/a~1b/c~0d", fieldschema.Path{"a/b", "c~d"}},
		{"/a/$", fieldschema.Path{"a", "$"}},
	}
	for _, tc := range cases {
		got := fieldschema.ParsePath(tc.raw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParsePath(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestPathKey_CanonicalAcrossSyntaxes(t *testing.T) {
	pairs := [][2]string{
		{".a.b[0]", "/a/b/0"},
		{".a['x.y']", "/a/x.y"},
		{".a.$", "/a/$"},
		{"", "/"},
	}
	for _, pr := range pairs {
		if k1, k2 := fieldschema.ParsePath(pr[0]).Key(), fieldschema.ParsePath(pr[1]).Key(); k1 != k2 {
			t.Fatalf("keys differ for equivalent paths %q vs %q: %q vs %q", pr[0], pr[1], k1, k2)
		}
	}
	if k := (fieldschema.Path{"a/b", "c~d"}).Key(); k != "/a~1b/c~0d" {
		t.Fatalf("expected RFC 6901 escapes in key, got %q", k)
	}
	if k := (fieldschema.Path)(nil).Key(); k != "/" {
		t.Fatalf("empty path key = %q, want /", k)
	}
}

func TestPath_Builders(t *testing.T) {
	p := fieldschema.Path{}.Field("a").Index(2).Item()
	want := fieldschema.Path{"a", "2", "$"}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("built path = %v, want %v", p, want)
	}
	// builders copy; the source path stays untouched
	base := fieldschema.Path{"a"}
	_ = base.Field("b")
	if !reflect.DeepEqual(base, fieldschema.Path{"a"}) {
		t.Fatalf("base path mutated: %v", base)
	}
}
