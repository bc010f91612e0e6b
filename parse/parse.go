package parse

import (
	"github.com/confindent/go-confindent/token"
	"github.com/confindent/go-confindent/tree"
)

// Parse reads indented key-value text into a document. The whole
// input either parses or an error wrapping ErrParse is returned with
// no partial document.
func Parse(d []byte, opts ...ParseOption) (*tree.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	lines, pd := token.ScanLines(d)
	return build(lines, pd, pOpts)
}

func ParseString(s string, opts ...ParseOption) (*tree.Document, error) {
	return Parse([]byte(s), opts...)
}

// frame is one open level: the indentation count that introduced it,
// the depth it resolved to, and the node owning that level.
type frame struct {
	count int
	depth int
	node  *tree.Node
}

func build(lines []token.Line, pd *token.PosDoc, opts *parseOpts) (*tree.Document, error) {
	doc := tree.NewDocument()
	var (
		stack []frame
		char  byte
	)
	for i := range lines {
		line := &lines[i]
		if line.Blank {
			continue
		}
		if line.Indent.Mixed {
			return nil, errAt(ErrMixedIndentation, pd.Pos(line.Offset))
		}
		count := line.Indent.Count
		if count > 0 {
			if len(stack) == 0 {
				return nil, errAt(ErrInvalidIndentation, pd.Pos(line.Offset))
			}
			if char == 0 {
				char = line.Indent.Char
			} else if line.Indent.Char != char {
				return nil, errAt(ErrMixedIndentation, pd.Pos(line.Offset))
			}
		} else {
			char = 0
		}

		var depth int
		switch {
		case len(stack) == 0:
			depth = 0
		case count > stack[len(stack)-1].count:
			depth = stack[len(stack)-1].depth + 1
		default:
			// A lesser count must match an open level exactly.
			for len(stack) > 0 && stack[len(stack)-1].count > count {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 || stack[len(stack)-1].count != count {
				return nil, errAt(ErrInvalidIndentation, pd.Pos(line.Offset))
			}
			depth = stack[len(stack)-1].depth
		}

		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}

		key, value := token.Split(line.Text)
		if key == "" {
			return nil, errAt(ErrEmptyKey, pd.Pos(line.TextOffset()))
		}
		node := &tree.Node{Key: key, Value: value}
		if len(stack) == 0 {
			doc.Append(node)
		} else {
			stack[len(stack)-1].node.Append(node)
		}
		if opts.positions != nil {
			opts.positions[node] = pd.Pos(line.TextOffset())
		}
		stack = append(stack, frame{count: count, depth: depth, node: node})
	}
	return doc, nil
}
