package deep

import (
	"reflect"

	"github.com/signadot/tony-format/deep/debug"
	"github.com/signadot/tony-format/deep/value"
)

// Equal reports whether a and b are structurally equal.
//
// If either is a primitive, they are equal when value.Identical reports
// so. Values of different dynamic types are never equal. Otherwise the
// equal handler registered for the type decides; without one, funcs are
// compared by code pointer and anything else by value.Identical.
//
// Equal stops at the first difference it finds.
func (e *Engine) Equal(a, b any) bool {
	if value.OneIsPrimitive(a, b) {
		return value.Identical(a, b)
	}
	if !value.SameType(a, b) {
		if debug.Equal() {
			debug.Logf("equal: type %s differs from %s\n", reflect.TypeOf(a), reflect.TypeOf(b))
		}
		return false
	}
	t := reflect.TypeOf(a)
	if h := e.equalHandler(t); h != nil {
		return h(e, a, b)
	}
	if value.IsCallable(a) && value.IsCallable(b) {
		return callableEqual(a, b)
	}
	return value.Identical(a, b)
}

// callableEqual is a best effort comparison of two funcs of one type.
// Closures from the same literal share code and compare equal.
func callableEqual(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsNil() || vb.IsNil() {
		return va.IsNil() && vb.IsNil()
	}
	return va.Pointer() == vb.Pointer()
}
