package confindent

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/confindent/go-confindent/debug"
	"github.com/confindent/go-confindent/tree"
)

// Select returns the nodes of doc for which the expression evaluates
// to true, in document order. The expression is compiled once and run
// against every node with these variables:
//
//	key       string  the node's key
//	value     string  the node's value, "" when absent
//	hasValue  bool    whether a value is present
//	path      string  slash-joined key path from the root
//	depth     int     0 for roots
//	nchildren int     number of children
//
// For example `key == "Host" && nchildren > 0` selects Host blocks.
func Select(doc *tree.Document, expression string) ([]*tree.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}
	program, err := expr.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", expression, err)
	}
	var hits []*tree.Node
	err = doc.Visit(func(n *tree.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		out, err := vm.Run(program, selectEnv(n))
		if err != nil {
			return false, fmt.Errorf("could not evaluate %q at %s: %w", expression, n.Path(), err)
		}
		hit, ok := out.(bool)
		if !ok {
			return false, fmt.Errorf("expression %q evaluated to %T, not bool", expression, out)
		}
		if hit {
			if debug.Select() {
				debug.Logf("select hit at %s\n", n.Path())
			}
			hits = append(hits, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return hits, nil
}

func selectEnv(n *tree.Node) map[string]any {
	return map[string]any{
		"key":       n.Key,
		"value":     n.ValueOr(""),
		"hasValue":  n.HasValue(),
		"path":      n.Path(),
		"depth":     nodeDepth(n),
		"nchildren": len(n.Nodes),
	}
}

func nodeDepth(n *tree.Node) int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}
