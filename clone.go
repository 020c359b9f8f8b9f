package deep

import (
	"reflect"

	"github.com/signadot/tony-format/deep/debug"
	"github.com/signadot/tony-format/deep/value"
)

// Clone returns a copy of v that shares no mutable containers with it.
//
// Primitives, times, patterns and funcs are returned as is. Other values are
// copied by the clone handler registered for their type; values of a type
// with no handler are returned unchanged.
//
// Clone does not detect cycles. See CheckAcyclic.
func (e *Engine) Clone(v any) any {
	if value.IsLeaf(v) {
		return v
	}
	t := reflect.TypeOf(v)
	h := e.cloneHandler(t)
	if h == nil {
		if debug.Clone() {
			debug.Logf("clone: no handler for %s, sharing original\n", t)
		}
		return v
	}
	return h(e, v)
}
