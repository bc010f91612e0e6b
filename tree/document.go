package tree

// Document is an ordered forest of root nodes. It has no key or value
// of its own.
type Document struct {
	Nodes []*Node
}

func NewDocument() *Document {
	return &Document{}
}

// Append adds root at the end of the document's roots.
func (d *Document) Append(root *Node) {
	root.Parent = nil
	d.Nodes = append(d.Nodes, root)
}

// Create appends a new root with the given key and returns it.
func (d *Document) Create(key string) *Node {
	root := New(key)
	d.Append(root)
	return root
}

// Child returns the first root whose key is exactly key, or nil.
func (d *Document) Child(key string) *Node {
	return childOf(d.Nodes, key)
}

// Children returns every root whose key is exactly key, in order.
func (d *Document) Children(key string) []*Node {
	return childrenOf(d.Nodes, key)
}

func (d *Document) HasChild(key string) bool {
	return d.Child(key) != nil
}

// ChildValue returns the value of the first root with the given key.
// It is nil when there is no such root or the root has no value.
func (d *Document) ChildValue(key string) *string {
	if c := d.Child(key); c != nil {
		return c.Value
	}
	return nil
}

func (d *Document) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	for _, n := range d.Nodes {
		if err := n.Visit(f); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) Clone() *Document {
	res := &Document{Nodes: make([]*Node, len(d.Nodes))}
	for i, n := range d.Nodes {
		res.Nodes[i] = n.Clone()
		res.Nodes[i].Parent = nil
	}
	return res
}
