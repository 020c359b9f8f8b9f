// Package format names the document formats read and written by the codec
// package and the deep command.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	f = format.FromPath("values.yml") // format.YAMLFormat
//
// # Related Packages
//
//   - github.com/signadot/tony-format/deep/codec - Decode and encode documents
package format
