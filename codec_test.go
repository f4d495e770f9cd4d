package envmap

import (
	"reflect"
	"strings"
	"testing"
)

func TestKeyFormPathForm(t *testing.T) {
	cases := []struct {
		name string
		path string
		key  string
	}{
		{name: "single segment", path: "foo", key: "foo"},
		{name: "nested segments", path: "foo.bar.baz", key: "foo_bar_baz"},
		{name: "literal underscore escaped", path: "foo.und_und", key: "foo_und\\_und"},
		{name: "escaped dot becomes literal", path: "foo.dot\\.dot", key: "foo_dot.dot"},
		{name: "empty path", path: "", key: ""},
		{name: "mixed escapes", path: "a\\.b.c_d", key: "a.b_c\\_d"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := KeyForm(tc.path); got != tc.key {
				t.Fatalf("KeyForm(%q) = %q, want %q", tc.path, got, tc.key)
			}
			if got := PathForm(tc.key); got != tc.path {
				t.Fatalf("PathForm(%q) = %q, want %q", tc.key, got, tc.path)
			}
		})
	}
}

func TestCodecRoundTrips(t *testing.T) {
	paths := []string{
		"foo",
		"foo.bar",
		"foo.dot\\.dot",
		"foo.und_und",
		"deeply.nested.path.with.many.segments",
		"trailing.",
		".leading",
		"back\\slash",
		"\\_preserved",
	}
	for _, path := range paths {
		if got := PathForm(KeyForm(path)); !strings.EqualFold(got, path) {
			t.Fatalf("path round trip %q -> %q -> %q", path, KeyForm(path), got)
		}
	}

	keys := []string{
		"FOO_BAR",
		"FOO_DOT.DOT",
		"FOO_UND\\_UND",
		"PLAIN",
		"A__B",
	}
	for _, key := range keys {
		if got := KeyForm(PathForm(key)); got != key {
			t.Fatalf("key round trip %q -> %q -> %q", key, PathForm(key), got)
		}
	}
}

func TestCodecAcceptsAnyInput(t *testing.T) {
	// Both transforms are total; stray backslashes and delimiter runs must
	// not panic or drop characters other than by the documented rules.
	inputs := []string{"\\", "\\\\", "...", "___", "a\\", "\\.", "\\_"}
	for _, input := range inputs {
		_ = KeyForm(input)
		_ = PathForm(input)
	}
}

func TestSplitPath(t *testing.T) {
	cases := []struct {
		path string
		want []string
	}{
		{path: "", want: nil},
		{path: "foo", want: []string{"foo"}},
		{path: "foo.bar", want: []string{"foo", "bar"}},
		{path: "foo.dot\\.dot", want: []string{"foo", "dot.dot"}},
		{path: "a..b", want: []string{"a", "", "b"}},
		{path: "trailing.", want: []string{"trailing", ""}},
	}
	for _, tc := range cases {
		if got := splitPath(tc.path); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitPath(%q) = %#v, want %#v", tc.path, got, tc.want)
		}
	}
}
