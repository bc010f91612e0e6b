// Package confindent reads, writes, and transforms indentation
// delimited key-value configuration, the style of ssh_config. It ties
// together the parse, tree, and encode packages and adds file
// handling, RFC 6902 patching, and expression selection.
package confindent

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/confindent/go-confindent/encode"
	"github.com/confindent/go-confindent/parse"
	"github.com/confindent/go-confindent/tree"
)

// Parse parses conf text into a document.
func Parse(data []byte, opts ...parse.ParseOption) (*tree.Document, error) {
	return parse.Parse(data, opts...)
}

// ParseString parses conf text into a document.
func ParseString(s string, opts ...parse.ParseOption) (*tree.Document, error) {
	return parse.ParseString(s, opts...)
}

// ParseFile reads and parses the file at path.
func ParseFile(path string, opts ...parse.ParseOption) (*tree.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	doc, err := parse.Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", path, err)
	}
	return doc, nil
}

// String renders doc as canonical conf text without a final newline.
func String(doc *tree.Document) string {
	return encode.MustString(doc)
}

// Write encodes doc to w in canonical form.
func Write(doc *tree.Document, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(doc, w, opts...)
}

// Save writes doc to the file at path, replacing its contents.
func Save(doc *tree.Document, path string) error {
	var buf bytes.Buffer
	if err := encode.Encode(doc, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *tree.Document) bool {
	return tree.CompareDocuments(a, b) == 0
}
