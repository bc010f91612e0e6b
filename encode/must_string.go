package encode

import (
	"bytes"
	"strings"

	"github.com/confindent/go-confindent/tree"
)

// MustString returns doc as conf text without the final newline. The
// trailing space of an empty value is not trimmed; it is what keeps
// "Key " distinct from "Key".
func MustString(doc *tree.Document) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
