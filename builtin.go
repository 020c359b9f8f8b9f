package deep

import (
	"reflect"
	"regexp"
	"time"

	"github.com/signadot/tony-format/deep/value"
)

var (
	recordType     = reflect.TypeFor[map[string]any]()
	sequenceType   = reflect.TypeFor[[]any]()
	mappingType    = reflect.TypeFor[*value.Map]()
	collectionType = reflect.TypeFor[*value.Set]()
	timeType       = reflect.TypeFor[time.Time]()
	patternType    = reflect.TypeFor[*regexp.Regexp]()
)

func installBuiltins(e *Engine) {
	e.setClone(recordType, cloneRecord)
	e.setClone(sequenceType, cloneSequence)
	e.setClone(mappingType, cloneMapping)
	e.setClone(collectionType, cloneCollection)

	e.setEqual(recordType, equalRecord)
	e.setEqual(sequenceType, equalSequence)
	e.setEqual(mappingType, equalMapping)
	e.setEqual(collectionType, equalCollection)
	e.setEqual(timeType, equalTime)
	e.setEqual(patternType, equalPattern)

	e.setMerge(recordType, mergeRecord)
	e.setMerge(sequenceType, mergeSequence)
	e.setMerge(mappingType, mergeMapping)
	e.setMerge(collectionType, mergeCollection)
}

func cloneRecord(e *Engine, v any) any {
	m := v.(map[string]any)
	if m == nil {
		return m
	}
	res := make(map[string]any, len(m))
	for k, x := range m {
		res[k] = e.Clone(x)
	}
	return res
}

func cloneSequence(e *Engine, v any) any {
	s := v.([]any)
	if s == nil {
		return s
	}
	res := make([]any, len(s))
	for i, x := range s {
		res[i] = e.Clone(x)
	}
	return res
}

func cloneMapping(e *Engine, v any) any {
	m := v.(*value.Map)
	if m == nil {
		return m
	}
	res := value.NewMap()
	for k, x := range m.All() {
		res.Set(e.Clone(k), e.Clone(x))
	}
	return res
}

func cloneCollection(e *Engine, v any) any {
	s := v.(*value.Set)
	if s == nil {
		return s
	}
	res := value.NewSet()
	for x := range s.All() {
		res.Add(e.Clone(x))
	}
	return res
}

func equalRecord(e *Engine, a, b any) bool {
	am, bm := a.(map[string]any), b.(map[string]any)
	if len(am) != len(bm) {
		return false
	}
	for k, av := range am {
		bv, ok := bm[k]
		if !ok {
			return false
		}
		if !e.Equal(av, bv) {
			return false
		}
	}
	return true
}

func equalSequence(e *Engine, a, b any) bool {
	as, bs := a.([]any), b.([]any)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !e.Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

// equalMapping matches each entry of a to a distinct entry of b with an
// equal key and an equal value. Identical keys are tried first; other
// candidates are bucketed by the structural hash of their key.
func equalMapping(e *Engine, a, b any) bool {
	am, bm := a.(*value.Map), b.(*value.Map)
	if am == bm {
		return true
	}
	if am.Len() != bm.Len() {
		return false
	}
	n := bm.Len()
	bks, bvs := make([]any, 0, n), make([]any, 0, n)
	ident := make(map[any]int, n)
	buckets := make(map[uint64][]int, n)
	for k, v := range bm.All() {
		i := len(bks)
		bks, bvs = append(bks, k), append(bvs, v)
		if ik, ok := value.IdentityKey(k); ok {
			ident[ik] = i
		}
		h := e.Hash(k)
		buckets[h] = append(buckets[h], i)
	}
	used := make([]bool, n)
	for k, av := range am.All() {
		if ik, ok := value.IdentityKey(k); ok {
			if i, ok := ident[ik]; ok && !used[i] && e.Equal(av, bvs[i]) {
				used[i] = true
				continue
			}
		}
		found := false
		for _, i := range buckets[e.Hash(k)] {
			if used[i] || !e.Equal(k, bks[i]) || !e.Equal(av, bvs[i]) {
				continue
			}
			used[i] = true
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}

// equalCollection matches each element of a to a distinct equal element of
// b. Candidates are bucketed by structural hash.
func equalCollection(e *Engine, a, b any) bool {
	as, bs := a.(*value.Set), b.(*value.Set)
	if as == bs {
		return true
	}
	if as.Len() != bs.Len() {
		return false
	}
	bvs := bs.Values()
	buckets := make(map[uint64][]int, len(bvs))
	for i, x := range bvs {
		h := e.Hash(x)
		buckets[h] = append(buckets[h], i)
	}
	used := make([]bool, len(bvs))
	for x := range as.All() {
		found := false
		for _, i := range buckets[e.Hash(x)] {
			if used[i] || !e.Equal(x, bvs[i]) {
				continue
			}
			used[i] = true
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}

func equalTime(_ *Engine, a, b any) bool {
	return a.(time.Time).Equal(b.(time.Time))
}

// equalPattern compares pattern text, which carries Go's flags inline.
func equalPattern(_ *Engine, a, b any) bool {
	ap, bp := a.(*regexp.Regexp), b.(*regexp.Regexp)
	if ap == nil || bp == nil {
		return ap == bp
	}
	return ap.String() == bp.String()
}

func mergeRecord(e *Engine, target, source any, o *MergeOptions) any {
	tm, sm := target.(map[string]any), source.(map[string]any)
	if tm == nil {
		if sm == nil {
			return tm
		}
		tm = make(map[string]any, len(sm))
	}
	for k, sv := range sm {
		tm[k] = e.MergeWith(tm[k], sv, o)
	}
	return tm
}

func mergeSequence(_ *Engine, target, source any, o *MergeOptions) any {
	ts, ss := target.([]any), source.([]any)
	if !o.Arrays {
		return ss
	}
	res := make([]any, 0, len(ts)+len(ss))
	res = append(res, ts...)
	return append(res, ss...)
}

func mergeMapping(e *Engine, target, source any, o *MergeOptions) any {
	tm, sm := target.(*value.Map), source.(*value.Map)
	if tm == nil {
		return sm
	}
	for k, sv := range sm.All() {
		if tv, ok := tm.Get(k); ok {
			tm.Set(k, e.MergeWith(tv, sv, o))
			continue
		}
		tm.Set(k, sv)
	}
	return tm
}

func mergeCollection(_ *Engine, target, source any, o *MergeOptions) any {
	ts, ss := target.(*value.Set), source.(*value.Set)
	if !o.Sets || ts == nil {
		return ss
	}
	for _, x := range ss.Values() {
		ts.Add(x)
	}
	return ts
}
