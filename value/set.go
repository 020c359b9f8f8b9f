package value

import (
	"fmt"
	"iter"
	"strings"
)

// Set is an insertion ordered collection of unique elements. Membership
// follows the same identity rules as Map keys.
//
// The zero Set is empty and ready to use.
type Set struct {
	items index
}

func NewSet(vs ...any) *Set {
	s := &Set{}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was absent.
func (s *Set) Add(v any) bool {
	_, added := s.items.insert(v)
	return added
}

func (s *Set) Has(v any) bool {
	if s == nil {
		return false
	}
	return s.items.find(v) >= 0
}

func (s *Set) Delete(v any) bool {
	if s == nil {
		return false
	}
	i := s.items.find(v)
	if i < 0 {
		return false
	}
	s.items.remove(i)
	return true
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.items.len()
}

// Values returns the elements in insertion order.
func (s *Set) Values() []any {
	if s == nil {
		return nil
	}
	res := make([]any, len(s.items.items))
	copy(res, s.items.items)
	return res
}

func (s *Set) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		if s == nil {
			return
		}
		for _, v := range s.items.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Set) String() string {
	var b strings.Builder
	b.WriteString("Set{")
	for i, v := range s.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("}")
	return b.String()
}
