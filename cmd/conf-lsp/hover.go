package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/confindent/go-confindent/tree"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tree == nil {
		return nil, nil
	}

	pos := params.Position
	line := int(pos.Line)

	targetNode := s.findNodeAtLine(doc, line)
	if targetNode == nil {
		return nil, nil
	}

	hoverText := buildHoverText(targetNode)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNodeAtLine returns the node whose line matches. Each non-blank
// line holds exactly one node, so the first hit wins.
func (s *Server) findNodeAtLine(doc *document, line int) *tree.Node {
	var found *tree.Node
	doc.tree.Visit(func(n *tree.Node, isPost bool) (bool, error) {
		if isPost || found != nil {
			return false, nil
		}
		pos := doc.positions[n]
		if pos != nil && pos.Line() == line {
			found = n
			return false, nil
		}
		return true, nil
	})
	return found
}

func buildHoverText(node *tree.Node) string {
	if node == nil {
		return ""
	}

	var parts []string

	parts = append(parts, fmt.Sprintf("**Key:** `%s`", node.Key))

	if node.HasValue() {
		val := node.ValueOr("")
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		if val == "" {
			parts = append(parts, "**Value:** empty")
		} else {
			parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
		}
	}

	parts = append(parts, fmt.Sprintf("**Path:** `%s`", node.Path()))

	if len(node.Nodes) > 0 {
		parts = append(parts, fmt.Sprintf("block with %d children", len(node.Nodes)))
	}

	return strings.Join(parts, "\n\n")
}
