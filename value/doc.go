// Package value classifies the values handled by the deep engine and
// provides the built-in containers that Go lacks.
//
// # Kinds
//
// Every value falls in exactly one Kind:
//
//   - PrimitiveKind: nil, booleans, strings, numbers and *Symbol
//   - TemporalKind: time.Time
//   - PatternKind: *regexp.Regexp
//   - CallableKind: funcs
//   - RecordKind: map[string]any
//   - SequenceKind: []any
//   - MappingKind: *Map
//   - CollectionKind: *Set
//   - CustomKind: everything else
//
// Classification is by dynamic type. Named types are not their underlying
// types: a value of type
//
//	type Attrs map[string]any
//
// is CustomKind, not RecordKind. Named types over booleans, strings and
// numbers are primitives.
//
// # Identity
//
// Identical is strict equality. It is the equality used for primitives and
// for custom values without an equality handler, and it is how Map and Set
// locate keys and elements:
//
//	m := value.NewMap().Set("a", 1).Set([]any{1}, 2)
//	m.Get("a")       // 1, true
//	m.Get([]any{1})  // nil, false: a different slice
//
// NaN keys are the exception: all NaNs of one type are the same key.
package value
