package deep

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/signadot/tony-format/deep/value"
)

// CheckAcyclic reports ErrCyclicStructure if v contains itself through maps,
// slices, pointers, interfaces, *value.Map or *value.Set. Shared sub-values
// that do not lead back to an ancestor are allowed.
//
// Clone, Equal and Merge recurse without bound; callers that accept
// untrusted structures should check them first.
func CheckAcyclic(v any) error {
	c := &cycleCheck{onPath: map[ref]bool{}}
	return c.walk(reflect.ValueOf(v), "$")
}

type ref struct {
	t reflect.Type
	p uintptr
}

type cycleCheck struct {
	onPath map[ref]bool
}

var (
	mapPtrType = reflect.TypeFor[*value.Map]()
	setPtrType = reflect.TypeFor[*value.Set]()
)

func (c *cycleCheck) walk(v reflect.Value, path string) error {
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return c.walk(v.Elem(), path)
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() || (v.Kind() == reflect.Slice && v.Len() == 0) {
			return nil
		}
		r := ref{t: v.Type(), p: v.Pointer()}
		if v.Kind() == reflect.Slice {
			// subslices share the backing array
			r.t = v.Type().Elem()
		}
		if c.onPath[r] {
			return fmt.Errorf("%w at %s", ErrCyclicStructure, path)
		}
		c.onPath[r] = true
		defer delete(c.onPath, r)
		return c.children(v, path)
	case reflect.Array:
		for i := range v.Len() {
			if err := c.walk(v.Index(i), path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			if err := c.walk(v.Field(i), path+"."+v.Type().Field(i).Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *cycleCheck) children(v reflect.Value, path string) error {
	switch v.Kind() {
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			p := fmt.Sprintf("%s[%v]", path, iter.Key())
			if err := c.walk(iter.Key(), p); err != nil {
				return err
			}
			if err := c.walk(iter.Value(), p); err != nil {
				return err
			}
		}
	case reflect.Slice:
		for i := range v.Len() {
			if err := c.walk(v.Index(i), path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
	case reflect.Pointer:
		switch v.Type() {
		case mapPtrType:
			m := v.Interface().(*value.Map)
			i := 0
			for k, x := range m.All() {
				p := fmt.Sprintf("%s{%d}", path, i)
				if err := c.walk(reflect.ValueOf(k), p+".key"); err != nil {
					return err
				}
				if err := c.walk(reflect.ValueOf(x), p); err != nil {
					return err
				}
				i++
			}
		case setPtrType:
			s := v.Interface().(*value.Set)
			i := 0
			for x := range s.All() {
				if err := c.walk(reflect.ValueOf(x), fmt.Sprintf("%s{%d}", path, i)); err != nil {
					return err
				}
				i++
			}
		default:
			return c.walk(v.Elem(), path)
		}
	}
	return nil
}
