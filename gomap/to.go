package gomap

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/confindent/go-confindent/tree"
)

// ToDocument marshals v, a struct or map or a pointer to one, into a
// document with one root per field. Fields emit in declaration order;
// map entries emit sorted by key.
func ToDocument(v any) (*tree.Document, error) {
	if v == nil {
		return nil, &MarshalError{Message: "source value cannot be nil"}
	}
	nodes, err := encodeChildren(reflect.ValueOf(v), "", map[uintptr]string{})
	if err != nil {
		return nil, err
	}
	doc := tree.NewDocument()
	for _, n := range nodes {
		doc.Append(n)
	}
	return doc, nil
}

// ToNode marshals v into a single node named key, with one child per
// field.
func ToNode(key string, v any) (*tree.Node, error) {
	if v == nil {
		return nil, &MarshalError{Message: "source value cannot be nil"}
	}
	nodes, err := encodeChildren(reflect.ValueOf(v), "", map[uintptr]string{})
	if err != nil {
		return nil, err
	}
	node := tree.New(key)
	for _, n := range nodes {
		node.Append(n)
	}
	return node, nil
}

func encodeChildren(val reflect.Value, fieldPath string, visited map[uintptr]string) ([]*tree.Node, error) {
	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "source pointer cannot be nil"}
		}
		ptr := val.Pointer()
		if prev, ok := visited[ptr]; ok {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cycle detected: pointer already visited at %q", prev),
			}
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
		return encodeChildren(val.Elem(), fieldPath, visited)
	case reflect.Struct:
		return encodeStruct(val, fieldPath, visited)
	case reflect.Map:
		return encodeMap(val, fieldPath, visited)
	}
	return nil, &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("cannot encode %s as children", val.Type()),
	}
}

func encodeStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) ([]*tree.Node, error) {
	fields, err := structFields(val.Type())
	if err != nil {
		return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	var nodes []*tree.Node
	for _, fi := range fields {
		if fi.value {
			continue
		}
		fval := val.FieldByIndex(fi.index)
		fpath := joinPath(fieldPath, fi.name)
		kids, err := encodeField(fi, fval, fpath, visited)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, kids...)
	}
	return nodes, nil
}

// encodeField renders one struct field as zero or more sibling nodes.
// Repeated-key slices expand to one node per element. A false bool or
// a nil pointer emits nothing.
func encodeField(fi fieldInfo, fval reflect.Value, fieldPath string, visited map[uintptr]string) ([]*tree.Node, error) {
	if fi.omitEmpty && fval.IsZero() {
		return nil, nil
	}
	ft := fval.Type()
	if ft.Kind() == reflect.Slice && ft.Elem().Kind() != reflect.Uint8 {
		var nodes []*tree.Node
		for i := 0; i < fval.Len(); i++ {
			n, err := encodeElemNode(fi.name, fval.Index(i), fieldPath, visited)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		}
		return nodes, nil
	}
	switch fval.Kind() {
	case reflect.Bool:
		// Presence is the boolean: true emits a bare key.
		if fval.Bool() {
			return []*tree.Node{tree.New(fi.name)}, nil
		}
		return nil, nil
	case reflect.Ptr:
		if fval.IsNil() {
			return nil, nil
		}
	case reflect.Map:
		if fval.IsNil() {
			return nil, nil
		}
	}
	n, err := encodeValueNode(fi.name, fval, fieldPath, visited)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	return []*tree.Node{n}, nil
}

// encodeValueNode renders one value as one node named key.
func encodeValueNode(key string, val reflect.Value, fieldPath string, visited map[uintptr]string) (*tree.Node, error) {
	if s, ok, err := marshalText(val); err != nil {
		return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	} else if ok {
		return tree.New(key).WithValue(s), nil
	}
	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			return nil, nil
		}
		if val.Type().Elem().Kind() == reflect.String {
			return tree.New(key).WithValue(val.Elem().String()), nil
		}
		ptr := val.Pointer()
		if prev, ok := visited[ptr]; ok {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cycle detected: pointer already visited at %q", prev),
			}
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
		return encodeValueNode(key, val.Elem(), fieldPath, visited)
	case reflect.Struct:
		node := tree.New(key)
		if err := encodeValueField(node, val, fieldPath); err != nil {
			return nil, err
		}
		kids, err := encodeStruct(val, fieldPath, visited)
		if err != nil {
			return nil, err
		}
		for _, kid := range kids {
			node.Append(kid)
		}
		return node, nil
	case reflect.Map:
		node := tree.New(key)
		kids, err := encodeMap(val, fieldPath, visited)
		if err != nil {
			return nil, err
		}
		for _, kid := range kids {
			node.Append(kid)
		}
		return node, nil
	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return tree.New(key).WithValue(string(val.Bytes())), nil
		}
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   "nested slices are not supported; use repeated keys on a struct field",
		}
	}
	s, err := formatScalar(val, fieldPath)
	if err != nil {
		return nil, err
	}
	return tree.New(key).WithValue(s), nil
}

// encodeElemNode renders one slice element. Unlike fields, elements
// never omit: a false bool writes an explicit value and a nil *string
// writes a bare key, keeping element count and order intact.
func encodeElemNode(key string, val reflect.Value, fieldPath string, visited map[uintptr]string) (*tree.Node, error) {
	switch val.Kind() {
	case reflect.Bool:
		s, err := formatScalar(val, fieldPath)
		if err != nil {
			return nil, err
		}
		return tree.New(key).WithValue(s), nil
	case reflect.Ptr:
		if val.IsNil() {
			return tree.New(key), nil
		}
	}
	n, err := encodeValueNode(key, val, fieldPath, visited)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return tree.New(key), nil
	}
	return n, nil
}

func encodeMap(val reflect.Value, fieldPath string, visited map[uintptr]string) ([]*tree.Node, error) {
	mt := val.Type()
	if mt.Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map key type must be string, not %s", mt.Key()),
		}
	}
	keys := make([]string, 0, val.Len())
	for _, kv := range val.MapKeys() {
		keys = append(keys, kv.String())
	}
	sort.Strings(keys)
	var nodes []*tree.Node
	for _, k := range keys {
		kv := reflect.New(mt.Key()).Elem()
		kv.SetString(k)
		n, err := encodeElemNode(k, val.MapIndex(kv), joinPath(fieldPath, k), visited)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// encodeValueField sets the node's own value from the struct field
// tagged "value", if any.
func encodeValueField(node *tree.Node, val reflect.Value, fieldPath string) error {
	fields, err := structFields(val.Type())
	if err != nil {
		return &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	for _, fi := range fields {
		if !fi.value {
			continue
		}
		fval := val.FieldByIndex(fi.index)
		fpath := joinPath(fieldPath, fi.field.Name)
		if fval.Kind() == reflect.Ptr && fval.Type().Elem().Kind() == reflect.String {
			if fval.IsNil() {
				return nil
			}
			node.SetValue(fval.Elem().String())
			return nil
		}
		s, err := formatScalar(fval, fpath)
		if err != nil {
			return err
		}
		node.SetValue(s)
		return nil
	}
	return nil
}
