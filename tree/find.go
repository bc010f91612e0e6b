package tree

import "strings"

// PathDelim is the delimiter Find and Get split key paths on.
const PathDelim = "/"

// Find returns the node at the slash joined key path below n, or nil
// when any segment is missing.
func (n *Node) Find(path string) *Node {
	return n.FindDelim(path, PathDelim)
}

func (n *Node) FindDelim(path, delim string) *Node {
	if n == nil {
		return nil
	}
	return findDelim(n.Nodes, path, delim)
}

// Get returns the value at the slash joined key path below n. The
// bool is false when the path is missing or names a valueless node.
func (n *Node) Get(path string) (string, bool) {
	return n.GetDelim(path, PathDelim)
}

func (n *Node) GetDelim(path, delim string) (string, bool) {
	return valueOf(n.FindDelim(path, delim))
}

// Find returns the node at the slash joined key path, or nil when any
// segment is missing.
func (d *Document) Find(path string) *Node {
	return d.FindDelim(path, PathDelim)
}

func (d *Document) FindDelim(path, delim string) *Node {
	return findDelim(d.Nodes, path, delim)
}

// Get returns the value at the slash joined key path. The bool is
// false when the path is missing or names a valueless node.
func (d *Document) Get(path string) (string, bool) {
	return d.GetDelim(path, PathDelim)
}

func (d *Document) GetDelim(path, delim string) (string, bool) {
	return valueOf(d.FindDelim(path, delim))
}

func findDelim(nodes []*Node, path, delim string) *Node {
	if path == "" || delim == "" {
		return nil
	}
	var cur *Node
	for _, seg := range strings.Split(path, delim) {
		cur = childOf(nodes, seg)
		if cur == nil {
			return nil
		}
		nodes = cur.Nodes
	}
	return cur
}

func valueOf(n *Node) (string, bool) {
	if n == nil || n.Value == nil {
		return "", false
	}
	return *n.Value, true
}
