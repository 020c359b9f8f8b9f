package codec

import "github.com/signadot/tony-format/deep/format"

type DecodeOption func(*decState)

type decState struct {
	format format.Format
}

// DecodeFormat sets the input format. YAML, the default, also reads JSON.
func DecodeFormat(f format.Format) DecodeOption {
	return func(ds *decState) { ds.format = f }
}

type EncodeOption func(*encState)

type encState struct {
	format format.Format
	indent int
}

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *encState) { es.format = f }
}

// EncodeIndent sets the number of spaces per indentation level.
func EncodeIndent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

func decOpts(opts []DecodeOption) *decState {
	ds := &decState{format: format.YAMLFormat}
	for _, opt := range opts {
		opt(ds)
	}
	return ds
}

func encOpts(opts []EncodeOption) *encState {
	es := &encState{format: format.YAMLFormat, indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
