package deep

import (
	"fmt"
	"reflect"
)

// RegisterClone registers a typed clone handler for T.
func RegisterClone[T any](e *Engine, fn func(e *Engine, v T) T) error {
	if fn == nil {
		return fmt.Errorf("%w: nil clone func for %s", ErrInvalidHandler, reflect.TypeFor[T]())
	}
	return e.Register(OpClone, reflect.TypeFor[T](), CloneFunc(func(e *Engine, v any) any {
		return fn(e, v.(T))
	}))
}

// RegisterEqual registers a typed equal handler for T.
func RegisterEqual[T any](e *Engine, fn func(e *Engine, a, b T) bool) error {
	if fn == nil {
		return fmt.Errorf("%w: nil equal func for %s", ErrInvalidHandler, reflect.TypeFor[T]())
	}
	return e.Register(OpEqual, reflect.TypeFor[T](), EqualFunc(func(e *Engine, a, b any) bool {
		return fn(e, a.(T), b.(T))
	}))
}

// RegisterMerge registers a typed merge handler for T.
func RegisterMerge[T any](e *Engine, fn func(e *Engine, target, source T, o *MergeOptions) T) error {
	if fn == nil {
		return fmt.Errorf("%w: nil merge func for %s", ErrInvalidHandler, reflect.TypeFor[T]())
	}
	return e.Register(OpMerge, reflect.TypeFor[T](), MergeFunc(func(e *Engine, target, source any, o *MergeOptions) any {
		return fn(e, target.(T), source.(T), o)
	}))
}

// RegisterSlice makes []E an ordered sequence: elements are cloned and
// compared through e, and merged by concatenation when arrays are merged.
func RegisterSlice[E any](e *Engine) error {
	err := RegisterClone(e, func(e *Engine, s []E) []E {
		if s == nil {
			return nil
		}
		res := make([]E, len(s))
		for i := range s {
			res[i] = as[E](e.Clone(s[i]))
		}
		return res
	})
	if err != nil {
		return err
	}
	err = RegisterEqual(e, func(e *Engine, a, b []E) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !e.Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	})
	if err != nil {
		return err
	}
	return RegisterMerge(e, func(_ *Engine, target, source []E, o *MergeOptions) []E {
		if !o.Arrays {
			return source
		}
		res := make([]E, 0, len(target)+len(source))
		res = append(res, target...)
		return append(res, source...)
	})
}

// RegisterMap makes map[K]V a keyed mapping. Keys are located with == as Go
// maps do; values are cloned, compared and merged through e. Merges mutate
// and return the target map.
func RegisterMap[K comparable, V any](e *Engine) error {
	err := RegisterClone(e, func(e *Engine, m map[K]V) map[K]V {
		if m == nil {
			return nil
		}
		res := make(map[K]V, len(m))
		for k, v := range m {
			res[as[K](e.Clone(k))] = as[V](e.Clone(v))
		}
		return res
	})
	if err != nil {
		return err
	}
	err = RegisterEqual(e, func(e *Engine, a, b map[K]V) bool {
		if len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !e.Equal(av, bv) {
				return false
			}
		}
		return true
	})
	if err != nil {
		return err
	}
	return RegisterMerge(e, func(e *Engine, target, source map[K]V, o *MergeOptions) map[K]V {
		if target == nil {
			if source == nil {
				return target
			}
			target = make(map[K]V, len(source))
		}
		for k, sv := range source {
			if tv, ok := target[k]; ok {
				target[k] = as[V](e.MergeWith(tv, sv, o))
				continue
			}
			target[k] = sv
		}
		return target
	})
}

// as converts a handler result back to T. A nil result, as when cloning a
// nil interface element, gives the zero T.
func as[T any](v any) T {
	res, _ := v.(T)
	return res
}
