package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/confindent/go-confindent/tree"
	"go.lsp.dev/protocol"
)

// Completion offers every key already used in the document. Repeated
// block keys like Host make this a cheap schema of the file at hand.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tree == nil {
		return nil, nil
	}

	counts := map[string]int{}
	doc.tree.Visit(func(n *tree.Node, isPost bool) (bool, error) {
		if !isPost {
			counts[n.Key]++
		}
		return true, nil
	})

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	items := make([]protocol.CompletionItem, 0, len(keys))
	for _, key := range keys {
		item := protocol.CompletionItem{
			Label: key,
		}
		if counts[key] > 1 {
			item.Detail = fmt.Sprintf("used %d times", counts[key])
		}
		items = append(items, item)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}
