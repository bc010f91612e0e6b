package gomap

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName is the struct tag key read by this package.
const TagName = "conf"

// ParseStructTag parses a struct tag value into a name and flag set.
// The part before the first comma is the name; the rest are flags
// such as "omitempty" and "value".
func ParseStructTag(tag string) (name string, flags map[string]bool) {
	parts := strings.Split(tag, ",")
	name = parts[0]
	flags = make(map[string]bool, len(parts)-1)
	for _, flag := range parts[1:] {
		if flag != "" {
			flags[flag] = true
		}
	}
	return name, flags
}

// fieldInfo describes one usable field of a struct. The index path
// reaches the field through at most one level of embedding.
type fieldInfo struct {
	name      string
	index     []int
	field     reflect.StructField
	omitEmpty bool
	value     bool
}

// structFields returns the fields of typ in declaration order.
// Embedded value structs without a tag are flattened one level.
// Unexported fields and fields tagged "-" are skipped. At most one
// field may carry the "value" flag; it holds the node's own value
// rather than a child.
func structFields(typ reflect.Type) ([]fieldInfo, error) {
	var fields []fieldInfo
	seen := map[string]bool{}
	haveValue := false

	add := func(fi fieldInfo) error {
		if fi.value {
			if haveValue {
				return fmt.Errorf("multiple fields tagged as value")
			}
			haveValue = true
			fields = append(fields, fi)
			return nil
		}
		if seen[fi.name] {
			return fmt.Errorf("field name conflict: embedded struct field %q conflicts with existing field", fi.name)
		}
		seen[fi.name] = true
		fields = append(fields, fi)
		return nil
	}

	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		name, flags := ParseStructTag(sf.Tag.Get(TagName))
		if name == "-" {
			continue
		}
		if sf.Anonymous && name == "" && !flags["value"] && sf.Type.Kind() == reflect.Struct {
			et := sf.Type
			for j := 0; j < et.NumField(); j++ {
				ef := et.Field(j)
				if ef.PkgPath != "" || ef.Anonymous {
					continue
				}
				ename, eflags := ParseStructTag(ef.Tag.Get(TagName))
				if ename == "-" {
					continue
				}
				if ename == "" {
					ename = ef.Name
				}
				err := add(fieldInfo{
					name:      ename,
					index:     []int{i, j},
					field:     ef,
					omitEmpty: eflags["omitempty"],
					value:     eflags["value"],
				})
				if err != nil {
					return nil, err
				}
			}
			continue
		}
		if name == "" {
			name = sf.Name
		}
		err := add(fieldInfo{
			name:      name,
			index:     []int{i},
			field:     sf,
			omitEmpty: flags["omitempty"],
			value:     flags["value"],
		})
		if err != nil {
			return nil, err
		}
	}
	return fields, nil
}
