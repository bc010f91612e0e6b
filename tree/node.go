package tree

type Node struct {
	Parent *Node   `json:"-" yaml:"-"`
	Key    string  `json:"key" yaml:"key"`
	Value  *string `json:"value,omitempty" yaml:"value,omitempty"`
	Nodes  []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

func New(key string) *Node {
	return &Node{Key: key}
}

func (n *Node) WithValue(v string) *Node {
	n.Value = &v
	return n
}

func (n *Node) WithChildren(kids ...*Node) *Node {
	for _, kid := range kids {
		n.Append(kid)
	}
	return n
}

// HasValue reports whether n carries a value. The empty value counts.
func (n *Node) HasValue() bool {
	return n != nil && n.Value != nil
}

// ValueOr returns n's value, or def when n is nil or has no value.
func (n *Node) ValueOr(def string) string {
	if n == nil || n.Value == nil {
		return def
	}
	return *n.Value
}

func (n *Node) SetValue(v string) {
	n.Value = &v
}

func (n *Node) ClearValue() {
	n.Value = nil
}

// Append adds child at the end of n's children and reparents it.
func (n *Node) Append(child *Node) {
	child.Parent = n
	n.Nodes = append(n.Nodes, child)
}

// Create appends a new child with the given key and returns it.
func (n *Node) Create(key string) *Node {
	child := New(key)
	n.Append(child)
	return child
}

// Child returns the first child whose key is exactly key, or nil.
func (n *Node) Child(key string) *Node {
	if n == nil {
		return nil
	}
	return childOf(n.Nodes, key)
}

// Children returns every child whose key is exactly key, in order.
func (n *Node) Children(key string) []*Node {
	if n == nil {
		return nil
	}
	return childrenOf(n.Nodes, key)
}

func (n *Node) HasChild(key string) bool {
	return n.Child(key) != nil
}

// ChildValue returns the value of the first child with the given key.
// It is nil when there is no such child or the child has no value.
func (n *Node) ChildValue(key string) *string {
	if c := n.Child(key); c != nil {
		return c.Value
	}
	return nil
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, kid := range n.Nodes {
			if err := kid.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Path returns the slash joined key path from the document root to n.
func (n *Node) Path() string {
	if n.Parent == nil {
		return n.Key
	}
	return n.Parent.Path() + "/" + n.Key
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Parent = n.Parent
	dst.Key = n.Key
	if n.Value != nil {
		v := *n.Value
		dst.Value = &v
	}
	dst.Nodes = make([]*Node, len(n.Nodes))
	for i, kid := range n.Nodes {
		dstI := &Node{}
		kid.CloneTo(dstI)
		dstI.Parent = dst
		dst.Nodes[i] = dstI
	}
	return dst
}

func childOf(nodes []*Node, key string) *Node {
	for _, n := range nodes {
		if n.Key == key {
			return n
		}
	}
	return nil
}

func childrenOf(nodes []*Node, key string) []*Node {
	var res []*Node
	for _, n := range nodes {
		if n.Key == key {
			res = append(res, n)
		}
	}
	return res
}
