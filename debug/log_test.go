package debug

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("type %s record %s seq %s n %d\n",
		reflect.TypeFor[[]any](),
		map[string]any{"a": 1},
		[]any{"x"},
		3)
	got := buf.String()
	for _, want := range []string{
		"type []interface {}",
		"\"a\": 1",
		"\"x\"",
		"n 3\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q does not contain %q", got, want)
		}
	}
}
