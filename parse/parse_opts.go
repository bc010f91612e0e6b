package parse

import (
	"github.com/confindent/go-confindent/token"
	"github.com/confindent/go-confindent/tree"
)

type parseOpts struct {
	positions map[*tree.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the position of each parsed node's key into
// m. The map is keyed by node pointer and stays valid for the life of
// the document.
func ParsePositions(m map[*tree.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
// This allows consumers to access position information.
func GetPositions(opts ...ParseOption) map[*tree.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
