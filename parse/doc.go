// Package parse parses indented key-value text into tree documents.
//
// # Usage
//
//	doc, err := parse.ParseString("User gennyble\n\tID 256\n")
//	if err != nil {
//	    return err
//	}
//	id, ok := doc.Get("User/ID")
//
//	// Record node positions for tooling
//	positions := map[*tree.Node]*token.Pos{}
//	doc, err := parse.Parse(data, parse.ParsePositions(positions))
//
// Parse errors wrap ErrParse and one of ErrMixedIndentation,
// ErrInvalidIndentation or ErrEmptyKey; the whole input either parses
// or no document is returned.
//
// # Related Packages
//
//   - github.com/confindent/go-confindent/tree - Document and node model
//   - github.com/confindent/go-confindent/encode - Encode documents to text
//   - github.com/confindent/go-confindent/token - Line scanning and positions
package parse
