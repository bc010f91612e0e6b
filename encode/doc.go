// Package encode encodes tree documents to indented key-value text.
//
// # Usage
//
//	doc := tree.NewDocument()
//	doc.Create("User").WithValue("gennyble")
//	err := encode.Encode(doc, os.Stdout)
//
//	// Encode the JSON projection
//	err := encode.Encode(doc, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
//	// Colored output for terminals
//	err := encode.Encode(doc, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Output is canonical: one tab per depth level regardless of the
// indentation the source used.
//
// # Related Packages
//
//   - github.com/confindent/go-confindent/tree - Document and node model
//   - github.com/confindent/go-confindent/parse - Parse text to documents
package encode
