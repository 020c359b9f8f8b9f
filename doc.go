// Package deep clones, compares and merges arbitrarily nested values.
//
// # Overview
//
// The three operations Clone, Equal and Merge recurse through records
// (map[string]any), sequences ([]any), keyed mappings (*value.Map) and
// unique-element collections (*value.Set). They agree with one another:
// a clone is Equal to its original, and merging into a clone never touches
// the original.
//
//	a := map[string]any{"a": true, "b": false, "tags": []any{"x"}}
//	b := map[string]any{"b": true, "c": false, "tags": []any{"y"}}
//
//	c := deep.Clone(a).(map[string]any)
//	deep.Equal(a, c)  // true
//	deep.Merge(c, b)  // {a: true, b: true, c: false, tags: [x, y]}
//
// See package value for how values are classified.
//
// # Dispatch
//
// Each operation looks up a handler by the exact dynamic type of its
// operands in one of three registries held by an Engine. The built-in
// container handlers are ordinary entries and can be replaced. Handlers
// receive the Engine and call back into it for child values.
//
// Lookup never falls back: a handler for T serves neither a type defined
// from T nor *T. Values of a type without a handler are returned unchanged
// by Clone and Merge, and compared with value.Identical by Equal.
//
// # Extending
//
// Register takes an operation, a reflect.Type and a handler func. The typed
// helpers are usually more convenient:
//
//	type Version struct{ Major, Minor int }
//
//	deep.RegisterEqual(e, func(_ *deep.Engine, a, b Version) bool {
//	    return a.Major == b.Major
//	})
//
// RegisterSlice, RegisterMap and RegisterStruct install all three handlers
// for typed slices, Go maps and structs.
//
// # Merging
//
// Merge mutates: records, mappings and collections are merged into the
// target, which is returned. Sequences are concatenated into a new slice.
// Sources that are primitives, times, or of a different type than the
// target replace the target. Patterns and funcs of the target's type have
// no merge handler, so the target is kept. MergeArrays(false) and
// MergeSets(false) make sequences and collections replace instead of
// combine.
//
// # Cycles
//
// None of the operations detect cycles; a value that contains itself
// recurses until the stack is exhausted. CheckAcyclic reports
// ErrCyclicStructure for such values.
package deep
