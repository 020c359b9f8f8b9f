package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/signadot/tony-format/deep/format"
	"github.com/signadot/tony-format/deep/value"
)

// Decode decodes every document in d.
func Decode(d []byte, opts ...DecodeOption) ([]any, error) {
	ds := decOpts(opts)
	switch ds.format {
	case format.YAMLFormat:
		return decodeYAML(d)
	case format.JSONFormat:
		return decodeJSON(d)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, ds.format)
	}
}

// DecodeReader reads r to the end and decodes every document in it.
func DecodeReader(r io.Reader, opts ...DecodeOption) ([]any, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return Decode(d, opts...)
}

func decodeYAML(d []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(d), yaml.UseOrderedMap())
	var res []any
	for i := 0; ; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, fromYAML(v))
	}
}

func fromYAML(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		if stringKeys(x) {
			res := make(map[string]any, len(x))
			for _, item := range x {
				res[item.Key.(string)] = fromYAML(item.Value)
			}
			return res
		}
		res := value.NewMap()
		for _, item := range x {
			res.Set(fromYAML(item.Key), fromYAML(item.Value))
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = fromYAML(e)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = fromYAML(e)
		}
		return res
	case uint64:
		if x <= math.MaxInt {
			return int(x)
		}
		return x
	case int64:
		return int(x)
	}
	return v
}

func stringKeys(m yaml.MapSlice) bool {
	for _, item := range m {
		if _, ok := item.Key.(string); !ok {
			return false
		}
	}
	return true
}

// decodeJSON reads a stream of JSON values. Unlike the YAML decoder it
// rejects anything that is not strict JSON.
func decodeJSON(d []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var res []any
	for i := 0; ; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, fromJSON(v))
	}
}

func fromJSON(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = fromJSON(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = fromJSON(e)
		}
		return x
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n)
		}
		f, _ := x.Float64()
		return f
	}
	return v
}
