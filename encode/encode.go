package encode

import (
	"io"
	"strings"

	"github.com/confindent/go-confindent/format"
	"github.com/confindent/go-confindent/tree"
)

type EncState struct {
	depth  int
	indent string

	format format.Format

	Color func(ColorAttr, string) string
}

// Encode writes doc as indented key-value text: one indent unit per
// depth level, the key, then one space and the value when the node
// has one. The empty value emits the trailing space so it survives a
// round trip. Conf output is canonical tabs no matter what the source
// used; EncodeFormat selects the JSON or YAML projection instead.
func Encode(doc *tree.Document, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if !es.format.IsConf() {
		return encodeFormat(doc.Nodes, w, es)
	}
	for _, n := range doc.Nodes {
		if err := encodeNode(n, w, es); err != nil {
			return err
		}
	}
	return nil
}

// EncodeNode writes the subtree rooted at n.
func EncodeNode(n *tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if !es.format.IsConf() {
		return encodeFormat([]*tree.Node{n}, w, es)
	}
	return encodeNode(n, w, es)
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func encodeNode(n *tree.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, strings.Repeat(es.indent, es.depth)); err != nil {
		return err
	}
	key := n.Key
	if es.Color != nil {
		key = es.Color(KeyColor, key)
	}
	if err := writeString(w, key); err != nil {
		return err
	}
	if n.Value != nil {
		value := *n.Value
		if es.Color != nil {
			value = es.Color(ValueColor, value)
		}
		if err := writeString(w, " "+value); err != nil {
			return err
		}
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	es.depth++
	for _, kid := range n.Nodes {
		if err := encodeNode(kid, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
