package value

import "slices"

// index is an insertion ordered list of distinct items. Items with an
// identity key are located through pos; the rest are scanned with Identical.
type index struct {
	items []any
	pos   map[any]int
	loose []int
}

func (x *index) find(v any) int {
	if k, ok := IdentityKey(v); ok {
		if i, ok := x.pos[k]; ok {
			return i
		}
		return -1
	}
	for _, i := range x.loose {
		if Identical(x.items[i], v) {
			return i
		}
	}
	return -1
}

// insert adds v if absent and reports its position and whether it was added.
func (x *index) insert(v any) (int, bool) {
	if i := x.find(v); i >= 0 {
		return i, false
	}
	i := len(x.items)
	x.items = append(x.items, v)
	x.track(v, i)
	return i, true
}

func (x *index) track(v any, i int) {
	if k, ok := IdentityKey(v); ok {
		if x.pos == nil {
			x.pos = make(map[any]int)
		}
		x.pos[k] = i
		return
	}
	x.loose = append(x.loose, i)
}

func (x *index) remove(i int) {
	x.items = slices.Delete(x.items, i, i+1)
	clear(x.pos)
	x.loose = x.loose[:0]
	for j, v := range x.items {
		x.track(v, j)
	}
}

func (x *index) len() int {
	return len(x.items)
}
