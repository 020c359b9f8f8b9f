package deep

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

type version struct {
	Major, Minor int
}

func TestRegisterValidation(t *testing.T) {
	e := New()
	vt := reflect.TypeFor[version]()
	tests := []struct {
		name    string
		op      Op
		typ     reflect.Type
		handler any
		err     error
	}{
		{"bogus op", "bogus", vt, func(a, b any) bool { return true }, ErrInvalidOperation},
		{"original name is not an op", "deepMerge", vt, func(t, s any) any { return s }, ErrInvalidOperation},
		{"not callable", OpMerge, vt, 42, ErrInvalidHandler},
		{"nil handler", OpClone, vt, nil, ErrInvalidHandler},
		{"typed nil", OpEqual, vt, EqualFunc(nil), ErrInvalidHandler},
		{"wrong signature", OpEqual, vt, func(a any) any { return a }, ErrInvalidHandler},
		{"nil type", OpClone, nil, func(v any) any { return v }, ErrInvalidType},
		{"clone ok", OpClone, vt, func(v any) any { return v }, nil},
		{"equal ok", OpEqual, vt, func(a, b any) bool { return true }, nil},
		{"merge ok", OpMerge, vt, func(t, s any, o *MergeOptions) any { return s }, nil},
		{"merge engine ok", OpMerge, vt, MergeFunc(func(_ *Engine, t, s any, _ *MergeOptions) any { return s }), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.Register(tt.op, tt.typ, tt.handler)
			if tt.err == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestParseOp(t *testing.T) {
	for in, want := range map[string]Op{
		"clone":     OpClone,
		"equal":     OpEqual,
		"merge":     OpMerge,
		"deepClone": OpClone,
		"deepEqual": OpEqual,
		"deepMerge": OpMerge,
	} {
		got, err := ParseOp(in)
		if err != nil {
			t.Fatalf("ParseOp(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseOp(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseOp("bogus"); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("ParseOp(bogus) err = %v", err)
	}
}

func TestRegisterOverwrites(t *testing.T) {
	e := New()
	vt := reflect.TypeFor[version]()
	if err := e.Register(OpEqual, vt, func(a, b any) bool { return false }); err != nil {
		t.Fatal(err)
	}
	if err := e.Register(OpEqual, vt, func(a, b any) bool { return true }); err != nil {
		t.Fatal(err)
	}
	if !e.Equal(version{1, 0}, version{2, 0}) {
		t.Errorf("second registration should win")
	}
}

type sequence []any

func TestNoFallbackToUnderlyingType(t *testing.T) {
	e := New()
	a := sequence{1, 2}
	b := sequence{1, 2}
	if e.Equal(a, b) {
		t.Errorf("a type defined from []any must not use the []any handler")
	}
	if c := e.Clone(a).(sequence); &c[0] != &a[0] {
		t.Errorf("unregistered type should be returned unchanged by Clone")
	}
}

func TestHandlers(t *testing.T) {
	e := New()
	got := e.Handlers(OpMerge)
	want := []reflect.Type{mappingType, collectionType, sequenceType, recordType}
	slices.SortFunc(want, func(a, b reflect.Type) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if n := len(e.Handlers(OpEqual)); n != 6 {
		t.Errorf("got %d equal handlers, want 6", n)
	}
}

func TestEnginesAreIndependent(t *testing.T) {
	a, b := New(), New()
	if err := RegisterEqual(a, func(_ *Engine, x, y version) bool { return x.Major == y.Major }); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(version{1, 1}, version{1, 2}) {
		t.Errorf("engine a should use its handler")
	}
	if b.Equal(version{1, 1}, version{1, 2}) {
		t.Errorf("engine b should not see a's handler")
	}
}
