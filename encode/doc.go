// Package encode encodes IR nodes to JSON or YAML text.
//
// # Usage
//
//	// Encode to indented JSON
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode compactly
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// Encode to YAML
//	err := encode.Encode(node, w, encode.EncodeFormat(encode.YAMLFormat))
//
// Object keys are written in node order; the encoder never sorts, since
// key order carries document order information.
//
// # Related Packages
//
//   - github.com/signadot/xj/ir - IR representation
//   - github.com/signadot/xj/parse - Convert XML to IR
package encode
