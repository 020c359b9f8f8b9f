package deep

import (
	"fmt"
	"hash/maphash"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/signadot/tony-format/deep/debug"
)

// Op names one of the three operations handlers are registered for.
type Op string

const (
	OpClone Op = "clone"
	OpEqual Op = "equal"
	OpMerge Op = "merge"
)

func (o Op) Valid() bool {
	switch o {
	case OpClone, OpEqual, OpMerge:
		return true
	}
	return false
}

// ParseOp accepts clone, equal and merge, as well as deepClone, deepEqual
// and deepMerge.
func ParseOp(s string) (Op, error) {
	o, ok := map[string]Op{
		"clone":     OpClone,
		"equal":     OpEqual,
		"merge":     OpMerge,
		"deepClone": OpClone,
		"deepEqual": OpEqual,
		"deepMerge": OpMerge,
	}[s]
	if ok {
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOperation, s)
}

// CloneFunc returns an independent copy of v, whose dynamic type is the
// type the handler is registered for.
type CloneFunc func(e *Engine, v any) any

// EqualFunc reports whether a and b, which share the registered type, are
// structurally equal.
type EqualFunc func(e *Engine, a, b any) bool

// MergeFunc combines source into target. Both share the registered type
// and o is never nil.
type MergeFunc func(e *Engine, target, source any, o *MergeOptions) any

// Engine holds the clone, equal and merge handler registries. Handlers are
// keyed by exact dynamic type: a handler for T is never used for a type
// defined from T, nor for *T.
//
// Registration takes a lock, but registering while other goroutines
// traverse values is unsupported: a traversal may observe either handler.
type Engine struct {
	mu     sync.RWMutex
	clone  map[reflect.Type]CloneFunc
	equal  map[reflect.Type]EqualFunc
	merge  map[reflect.Type]MergeFunc
	coarse map[reflect.Type]bool
	seed   maphash.Seed
}

// New returns an engine with the built-in handlers installed.
func New() *Engine {
	e := newEngine()
	installBuiltins(e)
	return e
}

func newEngine() *Engine {
	return &Engine{
		clone:  map[reflect.Type]CloneFunc{},
		equal:  map[reflect.Type]EqualFunc{},
		merge:  map[reflect.Type]MergeFunc{},
		coarse: map[reflect.Type]bool{},
		seed:   maphash.MakeSeed(),
	}
}

// Register installs handler for op on values of type t, replacing any
// previous handler. The handler must be the func type of op: a CloneFunc,
// EqualFunc or MergeFunc, or one of the equivalent signatures
//
//	clone: func(any) any
//	equal: func(a, b any) bool
//	merge: func(target, source any) any
//	merge: func(target, source any, o *MergeOptions) any
func (e *Engine) Register(op Op, t reflect.Type, handler any) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOperation, op)
	}
	if t == nil {
		return fmt.Errorf("%w: nil type for %s handler", ErrInvalidType, op)
	}
	var ok bool
	switch op {
	case OpClone:
		var f CloneFunc
		if f, ok = asCloneFunc(handler); ok {
			e.setClone(t, f)
		}
	case OpEqual:
		var f EqualFunc
		if f, ok = asEqualFunc(handler); ok {
			e.setEqual(t, f)
			e.mu.Lock()
			e.coarse[t] = true
			e.mu.Unlock()
		}
	case OpMerge:
		var f MergeFunc
		if f, ok = asMergeFunc(handler); ok {
			e.setMerge(t, f)
		}
	}
	if !ok {
		return fmt.Errorf("%w: %T is not a %s handler", ErrInvalidHandler, handler, op)
	}
	if debug.Register() {
		debug.Logf("registered %s handler for %s\n", op, t)
	}
	return nil
}

// Handlers lists the types with a handler for op, sorted by name.
func (e *Engine) Handlers(op Op) []reflect.Type {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var res []reflect.Type
	switch op {
	case OpClone:
		for t := range e.clone {
			res = append(res, t)
		}
	case OpEqual:
		for t := range e.equal {
			res = append(res, t)
		}
	case OpMerge:
		for t := range e.merge {
			res = append(res, t)
		}
	}
	slices.SortFunc(res, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return res
}

func (e *Engine) setClone(t reflect.Type, f CloneFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clone[t] = f
}

func (e *Engine) setEqual(t reflect.Type, f EqualFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.equal[t] = f
}

func (e *Engine) setMerge(t reflect.Type, f MergeFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.merge[t] = f
}

func (e *Engine) cloneHandler(t reflect.Type) CloneFunc {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.clone[t]
}

func (e *Engine) equalHandler(t reflect.Type) EqualFunc {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.equal[t]
}

func (e *Engine) mergeHandler(t reflect.Type) MergeFunc {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.merge[t]
}

// isCoarse reports whether values of type t have a registered equality
// whose meaning the structural hash cannot follow.
func (e *Engine) isCoarse(t reflect.Type) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.coarse[t]
}

func asCloneFunc(h any) (CloneFunc, bool) {
	switch f := h.(type) {
	case CloneFunc:
		return f, f != nil
	case func(*Engine, any) any:
		return f, f != nil
	case func(any) any:
		if f == nil {
			return nil, false
		}
		return func(_ *Engine, v any) any { return f(v) }, true
	}
	return nil, false
}

func asEqualFunc(h any) (EqualFunc, bool) {
	switch f := h.(type) {
	case EqualFunc:
		return f, f != nil
	case func(*Engine, any, any) bool:
		return f, f != nil
	case func(any, any) bool:
		if f == nil {
			return nil, false
		}
		return func(_ *Engine, a, b any) bool { return f(a, b) }, true
	}
	return nil, false
}

func asMergeFunc(h any) (MergeFunc, bool) {
	switch f := h.(type) {
	case MergeFunc:
		return f, f != nil
	case func(*Engine, any, any, *MergeOptions) any:
		return f, f != nil
	case func(any, any, *MergeOptions) any:
		if f == nil {
			return nil, false
		}
		return func(_ *Engine, t, s any, o *MergeOptions) any { return f(t, s, o) }, true
	case func(any, any) any:
		if f == nil {
			return nil, false
		}
		return func(_ *Engine, t, s any, _ *MergeOptions) any { return f(t, s) }, true
	}
	return nil, false
}
