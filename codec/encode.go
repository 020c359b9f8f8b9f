package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/signadot/tony-format/deep/format"
	"github.com/signadot/tony-format/deep/value"
)

// Encode writes v to w, followed by a newline.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(v, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func Marshal(v any, opts ...EncodeOption) ([]byte, error) {
	es := encOpts(opts)
	switch es.format {
	case format.YAMLFormat:
		x, err := toYAML(v)
		if err != nil {
			return nil, err
		}
		yOpts := []yaml.EncodeOption{yaml.IndentSequence(true)}
		if es.indent > 0 {
			yOpts = append(yOpts, yaml.Indent(es.indent))
		}
		return yaml.MarshalWithOptions(x, yOpts...)
	case format.JSONFormat:
		x, err := toJSON(v)
		if err != nil {
			return nil, err
		}
		var d []byte
		if es.indent > 0 {
			d, err = json.MarshalIndent(x, "", strings.Repeat(" ", es.indent))
		} else {
			d, err = json.Marshal(x)
		}
		if err != nil {
			return nil, err
		}
		return append(d, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

// scalar converts the leaf kinds with no native representation.
func scalar(v any) (any, bool, error) {
	switch x := v.(type) {
	case time.Time:
		return x.Format(time.RFC3339Nano), true, nil
	case *regexp.Regexp:
		if x == nil {
			return nil, true, nil
		}
		return x.String(), true, nil
	case *value.Symbol:
		return x.String(), true, nil
	}
	if value.IsCallable(v) {
		return nil, true, fmt.Errorf("%w: %T", ErrUnencodable, v)
	}
	return v, false, nil
}

func toYAML(v any) (any, error) {
	if x, ok, err := scalar(v); ok || err != nil {
		return x, err
	}
	switch x := v.(type) {
	case map[string]any:
		if x == nil {
			return nil, nil
		}
		res := make(yaml.MapSlice, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			e, err := toYAML(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res = append(res, yaml.MapItem{Key: k, Value: e})
		}
		return res, nil
	case []any:
		return seqTo(x, toYAML)
	case *value.Set:
		if x == nil {
			return nil, nil
		}
		return seqTo(x.Values(), toYAML)
	case *value.Map:
		if x == nil {
			return nil, nil
		}
		res := make(yaml.MapSlice, 0, x.Len())
		for k, e := range x.All() {
			yk, err := toYAML(k)
			if err != nil {
				return nil, err
			}
			ye, err := toYAML(e)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", k, err)
			}
			res = append(res, yaml.MapItem{Key: yk, Value: ye})
		}
		return res, nil
	}
	return v, nil
}

func seqTo(s []any, conv func(any) (any, error)) (any, error) {
	if s == nil {
		return nil, nil
	}
	res := make([]any, len(s))
	for i, e := range s {
		x, err := conv(e)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		res[i] = x
	}
	return res, nil
}

// object is a JSON object which keeps member order.
type object []member

type member struct {
	key   string
	value any
}

func (o object) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer([]byte{'{'})
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		d, err := json.Marshal(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(d)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func toJSON(v any) (any, error) {
	if x, ok, err := scalar(v); ok || err != nil {
		return x, err
	}
	switch x := v.(type) {
	case map[string]any:
		if x == nil {
			return nil, nil
		}
		res := make(object, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			e, err := toJSON(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res = append(res, member{k, e})
		}
		return res, nil
	case []any:
		return seqTo(x, toJSON)
	case *value.Set:
		if x == nil {
			return nil, nil
		}
		return seqTo(x.Values(), toJSON)
	case *value.Map:
		if x == nil {
			return nil, nil
		}
		res := make(object, 0, x.Len())
		for k, e := range x.All() {
			key, err := jsonKey(k)
			if err != nil {
				return nil, err
			}
			je, err := toJSON(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			res = append(res, member{key, je})
		}
		return res, nil
	}
	return v, nil
}

// jsonKey renders a mapping key as an object member name. Only primitive
// keys have one.
func jsonKey(k any) (string, error) {
	if s, ok := k.(string); ok {
		return s, nil
	}
	if !value.IsPrimitive(k) {
		return "", fmt.Errorf("%w: %T", ErrBadKey, k)
	}
	return fmt.Sprint(k), nil
}
