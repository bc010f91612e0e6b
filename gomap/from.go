package gomap

import (
	"fmt"
	"reflect"

	"github.com/confindent/go-confindent/tree"
)

// FromDocument unmarshals the roots of doc into v, which must be a
// non-nil pointer to a struct or map. Roots bind to struct fields by
// key; repeated keys gather into slice fields in document order.
func FromDocument(doc *tree.Document, v any) error {
	if doc == nil {
		return &UnmarshalError{Message: "document cannot be nil"}
	}
	val, err := decodeTarget(v)
	if err != nil {
		return err
	}
	return decodeChildren(doc.Nodes, val, "", map[uintptr]string{})
}

// FromNode unmarshals the children of n into v, which must be a
// non-nil pointer to a struct or map. The value of n itself is not
// consumed; use As for that.
func FromNode(n *tree.Node, v any) error {
	if n == nil {
		return &UnmarshalError{Message: "node cannot be nil"}
	}
	val, err := decodeTarget(v)
	if err != nil {
		return err
	}
	return decodeChildren(n.Nodes, val, "", map[uintptr]string{})
}

func decodeTarget(v any) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return reflect.Value{}, &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return reflect.Value{}, &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	elem := val.Elem()
	switch elem.Kind() {
	case reflect.Struct, reflect.Map, reflect.Ptr:
		return elem, nil
	}
	return reflect.Value{}, &UnmarshalError{
		Message: fmt.Sprintf("destination must point to a struct or map, not %s", elem.Type()),
	}
}

// decodeChildren binds a run of sibling nodes to val, which holds the
// struct or map they are children of.
func decodeChildren(nodes []*tree.Node, val reflect.Value, fieldPath string, visited map[uintptr]string) error {
	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			if !val.CanSet() {
				return &UnmarshalError{FieldPath: fieldPath, Message: "cannot set pointer"}
			}
			val.Set(reflect.New(val.Type().Elem()))
		}
		ptr := val.Pointer()
		if prev, ok := visited[ptr]; ok {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cycle detected: pointer already visited at %q", prev),
			}
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
		return decodeChildren(nodes, val.Elem(), fieldPath, visited)
	case reflect.Struct:
		return decodeStruct(nodes, val, fieldPath, visited)
	case reflect.Map:
		return decodeMap(nodes, val, fieldPath, visited)
	}
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("cannot decode children into %s", val.Type()),
	}
}

func decodeStruct(nodes []*tree.Node, val reflect.Value, fieldPath string, visited map[uintptr]string) error {
	fields, err := structFields(val.Type())
	if err != nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	for _, fi := range fields {
		if fi.value {
			continue
		}
		kids := childrenNamed(nodes, fi.name)
		if len(kids) == 0 {
			continue
		}
		fval := val.FieldByIndex(fi.index)
		if !fval.CanSet() {
			continue
		}
		fpath := joinPath(fieldPath, fi.name)
		ft := fval.Type()
		if ft.Kind() == reflect.Slice && ft.Elem().Kind() != reflect.Uint8 {
			// Repeated keys gather into one slice, an element per node.
			slice := reflect.MakeSlice(ft, len(kids), len(kids))
			for i, kid := range kids {
				if err := decodeNode(kid, slice.Index(i), fpath, visited); err != nil {
					return err
				}
			}
			fval.Set(slice)
			continue
		}
		if err := decodeNode(kids[0], fval, fpath, visited); err != nil {
			return err
		}
	}
	return nil
}

func decodeMap(nodes []*tree.Node, val reflect.Value, fieldPath string, visited map[uintptr]string) error {
	mt := val.Type()
	if mt.Key().Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map key type must be string, not %s", mt.Key()),
		}
	}
	if val.IsNil() {
		if !val.CanSet() {
			return &UnmarshalError{FieldPath: fieldPath, Message: "cannot set map"}
		}
		val.Set(reflect.MakeMap(mt))
	}
	et := mt.Elem()
	for _, n := range nodes {
		if n == nil {
			continue
		}
		// Duplicate keys overwrite; the last node wins.
		ev := reflect.New(et).Elem()
		if err := decodeNode(n, ev, joinPath(fieldPath, n.Key), visited); err != nil {
			return err
		}
		kv := reflect.New(mt.Key()).Elem()
		kv.SetString(n.Key)
		val.SetMapIndex(kv, ev)
	}
	return nil
}

// decodeNode binds one node to val. Kinds with children recurse
// through decodeChildren; scalars take the node's value.
func decodeNode(n *tree.Node, val reflect.Value, fieldPath string, visited map[uintptr]string) error {
	if n == nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "node cannot be nil"}
	}
	if val.CanAddr() && val.Addr().Type().Implements(textUnmarshalerType) {
		return setScalar(val, n.ValueOr(""), fieldPath)
	}
	switch val.Kind() {
	case reflect.Ptr:
		if val.Type().Elem().Kind() == reflect.String && !n.HasValue() {
			// A *string tracks value presence: a bare key stays nil.
			if val.CanSet() {
				val.Set(reflect.Zero(val.Type()))
			}
			return nil
		}
		if val.IsNil() {
			if !val.CanSet() {
				return &UnmarshalError{FieldPath: fieldPath, Message: "cannot set pointer"}
			}
			val.Set(reflect.New(val.Type().Elem()))
		}
		ptr := val.Pointer()
		if prev, ok := visited[ptr]; ok {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cycle detected: pointer already visited at %q", prev),
			}
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
		return decodeNode(n, val.Elem(), fieldPath, visited)
	case reflect.Bool:
		// A bare key reads as true.
		if !n.HasValue() {
			if !val.CanSet() {
				return &UnmarshalError{FieldPath: fieldPath, Message: "cannot set bool"}
			}
			val.SetBool(true)
			return nil
		}
		return setScalar(val, n.ValueOr(""), fieldPath)
	case reflect.Struct:
		if err := decodeValueField(n, val, fieldPath); err != nil {
			return err
		}
		return decodeStruct(n.Nodes, val, fieldPath, visited)
	case reflect.Map:
		return decodeMap(n.Nodes, val, fieldPath, visited)
	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			if !val.CanSet() {
				return &UnmarshalError{FieldPath: fieldPath, Message: "cannot set bytes"}
			}
			val.SetBytes([]byte(n.ValueOr("")))
			return nil
		}
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   "nested slices are not supported; use repeated keys on a struct field",
		}
	}
	return setScalar(val, n.ValueOr(""), fieldPath)
}

// decodeValueField fills the struct field tagged "value", if any,
// from the node's own value.
func decodeValueField(n *tree.Node, val reflect.Value, fieldPath string) error {
	fields, err := structFields(val.Type())
	if err != nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	for _, fi := range fields {
		if !fi.value {
			continue
		}
		fval := val.FieldByIndex(fi.index)
		if !fval.CanSet() {
			return nil
		}
		fpath := joinPath(fieldPath, fi.field.Name)
		if fval.Kind() == reflect.Ptr && fval.Type().Elem().Kind() == reflect.String {
			if !n.HasValue() {
				fval.Set(reflect.Zero(fval.Type()))
				return nil
			}
			fval.Set(reflect.New(fval.Type().Elem()))
			fval.Elem().SetString(n.ValueOr(""))
			return nil
		}
		return setScalar(fval, n.ValueOr(""), fpath)
	}
	return nil
}

func childrenNamed(nodes []*tree.Node, key string) []*tree.Node {
	var out []*tree.Node
	for _, n := range nodes {
		if n != nil && n.Key == key {
			out = append(out, n)
		}
	}
	return out
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
