package value

import (
	"fmt"
	"iter"
	"strings"
)

// Map is an insertion ordered keyed mapping whose keys may be any value,
// including slices and maps. Keys are located by identity: comparable keys
// by ==, other keys by reference.
//
// The zero Map is empty and ready to use.
type Map struct {
	keys index
	vals []any
}

func NewMap() *Map {
	return &Map{}
}

// Set associates v with k and returns m.
func (m *Map) Set(k, v any) *Map {
	i, added := m.keys.insert(k)
	if added {
		m.vals = append(m.vals, v)
		return m
	}
	m.vals[i] = v
	return m
}

func (m *Map) Get(k any) (any, bool) {
	if m == nil {
		return nil, false
	}
	i := m.keys.find(k)
	if i < 0 {
		return nil, false
	}
	return m.vals[i], true
}

func (m *Map) Has(k any) bool {
	_, ok := m.Get(k)
	return ok
}

// Delete removes k and reports whether it was present.
func (m *Map) Delete(k any) bool {
	if m == nil {
		return false
	}
	i := m.keys.find(k)
	if i < 0 {
		return false
	}
	m.keys.remove(i)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	return true
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.keys.len()
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []any {
	if m == nil {
		return nil
	}
	res := make([]any, len(m.keys.items))
	copy(res, m.keys.items)
	return res
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if m == nil {
			return
		}
		for i, k := range m.keys.items {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}

func (m *Map) String() string {
	var b strings.Builder
	b.WriteString("Map{")
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", k, v)
		i++
	}
	b.WriteString("}")
	return b.String()
}
