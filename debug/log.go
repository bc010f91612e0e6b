package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/confindent/go-confindent/encode"
	"github.com/confindent/go-confindent/tree"
)

type JSON any
type Conf struct{ *tree.Document }

func (c Conf) String() string {
	doc := c.Document
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf); err != nil {
		return fmt.Sprintf("[raw doc] %v", doc)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *tree.Document:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw doc] %v", x)
				continue
			}
			args[i] = buf.String()
		case *tree.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.EncodeNode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
