package main

import (
	"context"
	"sort"
	"strconv"

	"github.com/confindent/go-confindent/tree"
	"go.lsp.dev/protocol"
)

// valueTokenType classifies a node value for highlighting.
func valueTokenType(val string) protocol.SemanticTokenTypes {
	if _, err := strconv.ParseFloat(val, 64); err == nil {
		return protocol.SemanticTokenNumber
	}
	return protocol.SemanticTokenString
}

// collectSemanticTokens walks the tree and emits LSP delta encoded
// tokens: keys as properties, values as strings or numbers. Keys of
// root nodes carry the definition modifier.
func (s *Server) collectSemanticTokens(doc *document) []uint32 {
	if doc.tree == nil {
		return nil
	}

	type tokenInfo struct {
		line      uint32
		character uint32
		length    uint32
		tokenType protocol.SemanticTokenTypes
		modifiers []protocol.SemanticTokenModifiers
	}

	var tokenList []tokenInfo

	doc.tree.Visit(func(n *tree.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		pos := doc.positions[n]
		if pos == nil {
			return true, nil
		}
		line, col := pos.LineCol()

		var keyMods []protocol.SemanticTokenModifiers
		if n.Parent == nil {
			keyMods = append(keyMods, protocol.SemanticTokenModifierDefinition)
		}
		tokenList = append(tokenList, tokenInfo{
			line:      uint32(line),
			character: uint32(col),
			length:    uint32(len(n.Key)),
			tokenType: protocol.SemanticTokenProperty,
			modifiers: keyMods,
		})

		if n.HasValue() {
			val := n.ValueOr("")
			if val != "" {
				// The value starts one space past the key.
				tokenList = append(tokenList, tokenInfo{
					line:      uint32(line),
					character: uint32(col + len(n.Key) + 1),
					length:    uint32(len(val)),
					tokenType: valueTokenType(val),
				})
			}
		}
		return true, nil
	})

	// LSP delta encoding requires tokens ordered by position.
	sort.Slice(tokenList, func(i, j int) bool {
		if tokenList[i].line != tokenList[j].line {
			return tokenList[i].line < tokenList[j].line
		}
		return tokenList[i].character < tokenList[j].character
	})

	// These must match the legend in main.go.
	tokenTypes := []protocol.SemanticTokenTypes{
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
	}

	tokenModifiers := []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
	}

	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}

	modifierMap := make(map[protocol.SemanticTokenModifiers]uint32)
	for i, tm := range tokenModifiers {
		modifierMap[tm] = uint32(i)
	}

	tokens := []uint32{}
	var prevLine uint32 = 0
	var prevChar uint32 = 0

	for _, ti := range tokenList {
		deltaLine := ti.line - prevLine
		deltaChar := uint32(0)
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		} else {
			deltaChar = ti.character
		}

		tokenType, ok := typeMap[ti.tokenType]
		if !ok {
			tokenType = 1
		}

		tokenModifierBits := uint32(0)
		for _, mod := range ti.modifiers {
			if modIdx, ok := modifierMap[mod]; ok {
				tokenModifierBits |= (1 << modIdx)
			}
		}

		tokens = append(tokens, deltaLine, deltaChar, ti.length, tokenType, tokenModifierBits)

		prevLine = ti.line
		prevChar = ti.character
	}

	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tree == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	tokens := s.collectSemanticTokens(doc)

	return &protocol.SemanticTokens{
		Data: tokens,
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tree == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	// Range requests serve the full token set; clients discard what
	// falls outside the range.
	tokens := s.collectSemanticTokens(doc)

	return &protocol.SemanticTokens{
		Data: tokens,
	}, nil
}
