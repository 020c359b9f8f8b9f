package deep

import (
	"reflect"

	"github.com/signadot/tony-format/deep/debug"
	"github.com/signadot/tony-format/deep/value"
)

// Merge combines source into target and returns the result.
//
// A primitive or time source replaces target, so merging an explicit nil
// clears a record field. A source whose type differs from
// target's replaces it entirely. Otherwise the merge handler registered for
// the type decides; without one target is returned unchanged.
//
// The built-in handlers differ in what they return:
//
//   - records (map[string]any), *value.Map and *value.Set are merged into
//     target, which is mutated and returned
//   - sequences ([]any) are concatenated into a new slice, or replaced by
//     source when arrays are not merged
//   - collections are replaced by source when sets are not merged
//
// Values taken from source are shared with the result, not cloned.
func (e *Engine) Merge(target, source any, opts ...MergeOption) any {
	return e.MergeWith(target, source, mergeOpts(opts))
}

// MergeWith is Merge with explicit options, for use by merge handlers when
// recursing. A nil o means the defaults.
func (e *Engine) MergeWith(target, source any, o *MergeOptions) any {
	if o == nil {
		o = mergeOpts(nil)
	}
	if value.IsPrimitive(source) || value.KindOf(source) == value.TemporalKind {
		return source
	}
	if !value.SameType(target, source) {
		return source
	}
	t := reflect.TypeOf(target)
	h := e.mergeHandler(t)
	if h == nil {
		if debug.Merge() {
			debug.Logf("merge: no handler for %s, keeping target\n", t)
		}
		return target
	}
	return h(e, target, source, o)
}
