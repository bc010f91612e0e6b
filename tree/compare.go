package tree

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Keys order first, then values with the missing value before any
// present one, then children elementwise.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	if c := compareValues(a.Value, b.Value); c != 0 {
		return c
	}
	return compareChildren(a.Nodes, b.Nodes)
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// CompareDocuments compares two documents by their roots.
func CompareDocuments(a, b *Document) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return compareChildren(a.Nodes, b.Nodes)
}

func (d *Document) Equal(o *Document) bool {
	return CompareDocuments(d, o) == 0
}

func compareValues(a, b *string) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return strings.Compare(*a, *b)
}

func compareChildren(a, b []*Node) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
