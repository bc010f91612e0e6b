package gomap

import (
	"reflect"

	"github.com/confindent/go-confindent/tree"
)

// Parent is the navigation surface shared by tree.Node and
// tree.Document: anything with keyed children.
type Parent interface {
	Child(key string) *tree.Node
}

// As converts the value of n to T. A nil node or a node without a
// value converts from the empty string, so As[string] yields "" while
// numeric conversions report an error. Types implementing
// encoding.TextUnmarshaler, such as net.IP, parse through that.
func As[T any](n *tree.Node) (T, error) {
	var out T
	if err := setScalar(reflect.ValueOf(&out).Elem(), n.ValueOr(""), nodePath(n)); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// ChildAs converts the value of the first child of p named key to T.
// A missing child behaves like a valueless node.
func ChildAs[T any](p Parent, key string) (T, error) {
	return As[T](p.Child(key))
}

func nodePath(n *tree.Node) string {
	if n == nil {
		return ""
	}
	return n.Path()
}
