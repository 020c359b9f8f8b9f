package deep

import (
	"fmt"
	"reflect"
)

// RegisterStruct makes the struct type T, and *T, a record whose fields
// are its exported fields.
//
// Clone copies the struct and replaces each exported field by its clone;
// unexported fields are copied shallowly. Equal compares exported fields
// only. Merge merges each non-zero exported field of source into target: a
// zero field counts as absent. Merging T values returns a new value,
// merging *T values mutates and returns the target pointer.
func RegisterStruct[T any](e *Engine) error {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s is not a struct", ErrInvalidType, t)
	}
	fields := exportedFields(t)
	pt := reflect.PointerTo(t)

	regs := []struct {
		op Op
		t  reflect.Type
		h  any
	}{
		{OpClone, t, CloneFunc(func(e *Engine, v any) any {
			return cloneStruct(e, reflect.ValueOf(v), fields).Interface()
		})},
		{OpClone, pt, CloneFunc(func(e *Engine, v any) any {
			p := reflect.ValueOf(v)
			if p.IsNil() {
				return v
			}
			res := reflect.New(t)
			res.Elem().Set(cloneStruct(e, p.Elem(), fields))
			return res.Interface()
		})},
		{OpEqual, t, EqualFunc(func(e *Engine, a, b any) bool {
			return equalStruct(e, reflect.ValueOf(a), reflect.ValueOf(b), fields)
		})},
		{OpEqual, pt, EqualFunc(func(e *Engine, a, b any) bool {
			pa, pb := reflect.ValueOf(a), reflect.ValueOf(b)
			if pa.IsNil() || pb.IsNil() {
				return pa.IsNil() && pb.IsNil()
			}
			if pa.Pointer() == pb.Pointer() {
				return true
			}
			return equalStruct(e, pa.Elem(), pb.Elem(), fields)
		})},
		{OpMerge, t, MergeFunc(func(e *Engine, target, source any, o *MergeOptions) any {
			res := reflect.New(t).Elem()
			res.Set(reflect.ValueOf(target))
			mergeStruct(e, res, reflect.ValueOf(source), fields, o)
			return res.Interface()
		})},
		{OpMerge, pt, MergeFunc(func(e *Engine, target, source any, o *MergeOptions) any {
			tp, sp := reflect.ValueOf(target), reflect.ValueOf(source)
			if tp.IsNil() {
				return source
			}
			if sp.IsNil() {
				return target
			}
			mergeStruct(e, tp.Elem(), sp.Elem(), fields, o)
			return target
		})},
	}
	for _, r := range regs {
		if err := e.Register(r.op, r.t, r.h); err != nil {
			return err
		}
	}
	return nil
}

func exportedFields(t reflect.Type) []int {
	var res []int
	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			res = append(res, i)
		}
	}
	return res
}

func cloneStruct(e *Engine, v reflect.Value, fields []int) reflect.Value {
	res := reflect.New(v.Type()).Elem()
	res.Set(v)
	for _, i := range fields {
		setField(res.Field(i), e.Clone(v.Field(i).Interface()))
	}
	return res
}

func equalStruct(e *Engine, a, b reflect.Value, fields []int) bool {
	for _, i := range fields {
		if !e.Equal(a.Field(i).Interface(), b.Field(i).Interface()) {
			return false
		}
	}
	return true
}

// mergeStruct merges the non-zero exported fields of src into the
// addressable struct dst.
func mergeStruct(e *Engine, dst, src reflect.Value, fields []int, o *MergeOptions) {
	for _, i := range fields {
		sf := src.Field(i)
		if sf.IsZero() {
			continue
		}
		df := dst.Field(i)
		setField(df, e.MergeWith(df.Interface(), sf.Interface(), o))
	}
}

// setField stores x in dst when its type allows it. A nil x zeroes dst.
func setField(dst reflect.Value, x any) {
	if x == nil {
		dst.SetZero()
		return
	}
	xv := reflect.ValueOf(x)
	if xv.Type().AssignableTo(dst.Type()) {
		dst.Set(xv)
	}
}
