package value

import (
	"reflect"
	"regexp"
	"time"
)

// KindOf classifies v without consulting any handler registry.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil, *Symbol:
		return PrimitiveKind
	case time.Time:
		return TemporalKind
	case *regexp.Regexp:
		return PatternKind
	case map[string]any:
		return RecordKind
	case []any:
		return SequenceKind
	case *Map:
		return MappingKind
	case *Set:
		return CollectionKind
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return PrimitiveKind
	case reflect.Func:
		return CallableKind
	}
	return CustomKind
}

// IsPrimitive reports whether v is nil, text, numeric, boolean or a Symbol.
func IsPrimitive(v any) bool {
	return KindOf(v) == PrimitiveKind
}

// IsLeaf reports whether v is never recursed into: a primitive or an
// atomic value.
func IsLeaf(v any) bool {
	return KindOf(v).IsLeaf()
}

func OneIsPrimitive(a, b any) bool {
	return IsPrimitive(a) || IsPrimitive(b)
}

// IsAtomic reports whether v is a temporal, pattern or callable value.
// Atomic values are never recursed into.
func IsAtomic(v any) bool {
	k := KindOf(v)
	return k.IsLeaf() && k != PrimitiveKind
}

func IsCallable(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// SameType reports whether a and b have the same dynamic type. Two nil
// interfaces have the same type.
func SameType(a, b any) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// Identical is strict equality: == for comparable values and reference
// identity for slices, maps and funcs. It never panics.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return identical(reflect.ValueOf(a), reflect.ValueOf(b))
}

func identical(va, vb reflect.Value) bool {
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() {
		return va.Equal(vb)
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Interface:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return identical(va.Elem(), vb.Elem())
	case reflect.Array:
		for i := range va.Len() {
			if !identical(va.Index(i), vb.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range va.NumField() {
			if !identical(va.Field(i), vb.Field(i)) {
				return false
			}
		}
		return true
	}
	return false
}

type refKey struct {
	t reflect.Type
	p uintptr
	n int
}

type nanKey struct {
	t reflect.Type
}

// IdentityKey returns a Go map key k such that two values share k exactly
// when Identical reports true, except that all NaNs of one type share a key.
// The second result is false when no such key exists.
func IdentityKey(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	rv := reflect.ValueOf(v)
	if rv.Comparable() {
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			if f := rv.Float(); f != f {
				return nanKey{t: rv.Type()}, true
			}
		}
		return v, true
	}
	switch rv.Kind() {
	case reflect.Slice:
		return refKey{t: rv.Type(), p: rv.Pointer(), n: rv.Len()}, true
	case reflect.Map, reflect.Func:
		return refKey{t: rv.Type(), p: rv.Pointer()}, true
	}
	return nil, false
}
