package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/deep"
	"github.com/signadot/tony-format/deep/value"
)

func TestMergeDocs(t *testing.T) {
	docs := []any{
		map[string]any{"a": 1, "l": []any{1}, "s": value.NewSet("x")},
		map[string]any{"b": 2, "l": []any{2}},
		map[string]any{"a": 3, "s": value.NewSet("y")},
	}
	tests := []struct {
		name string
		opts []deep.MergeOption
		want any
	}{
		{"defaults", nil, map[string]any{
			"a": 3, "b": 2, "l": []any{1, 2}, "s": value.NewSet("x", "y"),
		}},
		{"replace", []deep.MergeOption{deep.MergeArrays(false), deep.MergeSets(false)}, map[string]any{
			"a": 3, "b": 2, "l": []any{2}, "s": value.NewSet("y"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := deep.Clone(docs).([]any)
			got := mergeDocs(deep.New(), in, tt.opts...)
			if !deep.Equal(tt.want, got) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergePatch(t *testing.T) {
	docs := []any{
		map[string]any{"a": 1, "b": map[string]any{"c": 2}, "l": []any{1}},
		map[string]any{"b": map[string]any{"c": nil, "d": 3}, "l": []any{2}},
	}
	got, err := mergePatch(docs)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": 1, "b": map[string]any{"d": 3}, "l": []any{2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSelectAt(t *testing.T) {
	doc := map[string]any{
		"spec": map[string]any{
			"replicas":   3,
			"containers": []any{map[string]any{"name": "app"}},
		},
	}
	tests := []struct {
		at   string
		want any
	}{
		{"", doc},
		{"doc.spec.replicas", 3},
		{"doc.spec.containers[0].name", "app"},
	}
	for _, tt := range tests {
		t.Run(tt.at, func(t *testing.T) {
			got, err := selectAt(doc, tt.at)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	if _, err := selectAt(doc, "doc.("); err == nil {
		t.Errorf("expected error for bad expression")
	}
}

func TestLineDiff(t *testing.T) {
	got := lineDiff("a: 1\nb: 2\nc: 3\n", "a: 1\nb: 4\nc: 3\n", false)
	want := " a: 1\n-b: 2\n+b: 4\n c: 3\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := lineDiff("x\n", "x\n", false); got != " x\n" {
		t.Errorf("got %q for identical input", got)
	}
}
