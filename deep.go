package deep

import "reflect"

var std = New()

// Default returns the engine used by the package level functions.
func Default() *Engine {
	return std
}

func Clone(v any) any {
	return std.Clone(v)
}

func Equal(a, b any) bool {
	return std.Equal(a, b)
}

func Merge(target, source any, opts ...MergeOption) any {
	return std.Merge(target, source, opts...)
}

func Register(op Op, t reflect.Type, handler any) error {
	return std.Register(op, t, handler)
}

func Hash(v any) uint64 {
	return std.Hash(v)
}
