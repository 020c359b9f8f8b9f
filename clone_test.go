package deep

import (
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/deep/value"
)

func stub() map[string]any {
	return map[string]any{
		"obj": map[string]any{"a": true, "b": false},
		"arr": []any{1, 2, 3},
		"map": value.NewMap().Set(1, 2).Set(3, 4),
		"set": value.NewSet(1, 2, 3, 4),
		"complex": map[string]any{
			"isOpen": true,
			"editorOpts": map[string]any{
				"mode":        "view",
				"mainMenuBar": false,
			},
			"beep": []any{
				map[string]any{
					"bop":  true,
					"beer": []any{map[string]any{"german": []any{nil}}},
				},
			},
		},
	}
}

func sameRef(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	return va.Pointer() == vb.Pointer()
}

func TestCloneContainers(t *testing.T) {
	e := New()
	s := stub()
	for _, k := range []string{"obj", "arr", "map", "set", "complex"} {
		t.Run(k, func(t *testing.T) {
			orig := s[k]
			c := e.Clone(orig)
			if sameRef(c, orig) {
				t.Errorf("clone shares identity with original")
			}
			if !e.Equal(c, orig) {
				t.Errorf("clone %v not equal to original %v", c, orig)
			}
		})
	}
}

func TestCloneNested(t *testing.T) {
	e := New()
	s := stub()
	c := e.Clone(s).(map[string]any)
	for _, k := range []string{"obj", "arr", "map", "set"} {
		if sameRef(c[k], s[k]) {
			t.Errorf("%s shared between clone and original", k)
		}
	}
	c["obj"].(map[string]any)["a"] = "changed"
	c["complex"].(map[string]any)["beep"].([]any)[0].(map[string]any)["bop"] = false
	if diff := cmp.Diff(stub()["obj"], s["obj"]); diff != "" {
		t.Errorf("original changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(stub()["complex"], s["complex"]); diff != "" {
		t.Errorf("original changed (-want +got):\n%s", diff)
	}
}

func TestCloneMappingKeys(t *testing.T) {
	e := New()
	key := []any{"k"}
	m := value.NewMap().Set(key, map[string]any{"v": 1})
	c := e.Clone(m).(*value.Map)
	keys := c.Keys()
	if len(keys) != 1 {
		t.Fatalf("got %d keys", len(keys))
	}
	if sameRef(keys[0], key) {
		t.Errorf("mapping keys should be cloned")
	}
	if !e.Equal(c, m) {
		t.Errorf("cloned mapping should equal original")
	}
}

func TestCloneAtomicAndUnknown(t *testing.T) {
	e := New()
	now := time.Now()
	re := regexp.MustCompile(`(?i)ab+`)
	fn := func() int { return 1 }
	sym := value.NewSymbol("s")
	v := &version{1, 2}
	ints := []int{1, 2}

	if got := e.Clone(now).(time.Time); !got.Equal(now) {
		t.Errorf("time changed")
	}
	if got := e.Clone(re); got != re {
		t.Errorf("pattern should be returned as is")
	}
	if got := e.Clone(fn); !sameRef(got, fn) {
		t.Errorf("func should be returned as is")
	}
	if got := e.Clone(sym); got != sym {
		t.Errorf("symbol should be returned as is")
	}
	if got := e.Clone(v); got != v {
		t.Errorf("unregistered pointer should be returned as is")
	}
	if got := e.Clone(ints); !sameRef(got, ints) {
		t.Errorf("unregistered slice type should be returned as is")
	}
	for _, p := range []any{nil, "abc", 12, 1.5, true} {
		if got := e.Clone(p); got != p {
			t.Errorf("Clone(%v) = %v", p, got)
		}
	}
}

func TestCloneNilContainers(t *testing.T) {
	e := New()
	if got := e.Clone(map[string]any(nil)).(map[string]any); got != nil {
		t.Errorf("nil record cloned to %v", got)
	}
	if got := e.Clone([]any(nil)).([]any); got != nil {
		t.Errorf("nil sequence cloned to %v", got)
	}
	if got := e.Clone((*value.Map)(nil)).(*value.Map); got != nil {
		t.Errorf("nil mapping cloned to %v", got)
	}
}

func TestCloneCustomHandler(t *testing.T) {
	e := New()
	calls := 0
	err := RegisterClone(e, func(_ *Engine, v *version) *version {
		calls++
		c := *v
		return &c
	})
	if err != nil {
		t.Fatal(err)
	}
	orig := &version{1, 2}
	got := e.Clone([]any{orig}).([]any)[0].(*version)
	if got == orig || *got != *orig {
		t.Errorf("custom clone not applied: %v", got)
	}
	if calls != 1 {
		t.Errorf("handler called %d times", calls)
	}
}
