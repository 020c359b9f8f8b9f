// Package codec decodes YAML and JSON documents into the values understood
// by the deep engine and encodes such values back.
//
// Decoded YAML mappings whose keys are all strings become records
// (map[string]any); any other mapping becomes a *value.Map keeping key
// order. Sequences become []any and integers become int when they fit.
//
// Encoding accepts every built-in kind: a *value.Set is written as a
// sequence, time.Time as an RFC 3339 string, *regexp.Regexp and
// *value.Symbol by their String form. Funcs cannot be encoded.
//
// # Usage
//
//	docs, err := codec.Decode(data, codec.DecodeFormat(format.YAMLFormat))
//	err = codec.Encode(docs[0], os.Stdout, codec.EncodeFormat(format.JSONFormat))
package codec
