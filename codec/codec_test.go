package codec

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/deep"
	"github.com/signadot/tony-format/deep/format"
	"github.com/signadot/tony-format/deep/value"
)

func TestDecodeYAML(t *testing.T) {
	in := `
a: 1
b:
  - x
  - 2.5
  - null
c:
  d: true
`
	docs, err := Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{map[string]any{
		"a": 1,
		"b": []any{"x", 2.5, nil},
		"c": map[string]any{"d": true},
	}}
	if diff := cmp.Diff(want, docs); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeYAMLNonStringKeys(t *testing.T) {
	docs, err := Decode([]byte("2: two\n1: one\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d docs", len(docs))
	}
	m, ok := docs[0].(*value.Map)
	if !ok {
		t.Fatalf("got %T, want *value.Map", docs[0])
	}
	if diff := cmp.Diff([]any{2, 1}, m.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
	if v, _ := m.Get(1); v != "one" {
		t.Errorf("Get(1) = %v", v)
	}
}

func TestDecodeYAMLDocuments(t *testing.T) {
	docs, err := Decode([]byte("a: 1\n---\nb: 2\n---\n- 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{
		map[string]any{"a": 1},
		map[string]any{"b": 2},
		[]any{3},
	}
	if diff := cmp.Diff(want, docs); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeJSON(t *testing.T) {
	docs, err := Decode([]byte(`{"a": 1.5, "b": [1, null]} [2]`), DecodeFormat(format.JSONFormat))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{
		map[string]any{"a": 1.5, "b": []any{1, nil}},
		[]any{2},
	}
	if diff := cmp.Diff(want, docs); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := Decode([]byte(`{a: 1}`), DecodeFormat(format.JSONFormat)); err == nil {
		t.Errorf("expected error for non JSON input")
	}
}

func TestEncodeJSON(t *testing.T) {
	doc := map[string]any{
		"b": []any{true, value.NewSet("x")},
		"a": value.NewMap().Set(2, "two").Set("k", nil),
	}
	d, err := Marshal(doc, EncodeFormat(format.JSONFormat))
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": {
    "2": "two",
    "k": null
  },
  "b": [
    true,
    [
      "x"
    ]
  ]
}
`
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeScalars(t *testing.T) {
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	doc := []any{when, regexp.MustCompile(`a+`), value.NewSymbol("s")}
	d, err := Marshal(doc, EncodeFormat(format.JSONFormat), EncodeIndent(0))
	if err != nil {
		t.Fatal(err)
	}
	want := `["2024-05-01T12:00:00Z","a+","Symbol(s)"]` + "\n"
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		v    any
		err  error
	}{
		{"func", map[string]any{"f": func() {}}, ErrUnencodable},
		{"container key", value.NewMap().Set([]any{1}, 1), ErrBadKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Marshal(tt.v, EncodeFormat(format.JSONFormat))
			if !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
		})
	}
	if _, err := Marshal(func() {}); !errors.Is(err, ErrUnencodable) {
		t.Errorf("yaml: got %v, want %v", err, ErrUnencodable)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	docs := []any{
		map[string]any{
			"name":  "svc",
			"ports": []any{80, 443},
			"meta":  map[string]any{"tier": "web", "weight": 0.5},
		},
		value.NewMap().Set(1, "one").Set(2, []any{"two"}),
		[]any{nil, true, "x"},
	}
	for _, doc := range docs {
		d, err := Marshal(doc)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Decode(d)
		if err != nil {
			t.Fatalf("decoding %q: %v", d, err)
		}
		if len(got) != 1 || !deep.Equal(doc, got[0]) {
			t.Errorf("round trip of %v gave %v (%q)", doc, got, d)
		}
	}
}
