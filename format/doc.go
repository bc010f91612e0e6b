// Package format names the output encodings a document can take:
// the conf text itself, or its JSON and YAML projections.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if err != nil {
//	    return err
//	}
//	path := "config" + f.Suffix()
//
// # Related Packages
//
//   - github.com/confindent/go-confindent/encode - Encodes documents in a format
package format
