package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

var (
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// setScalar assigns the string form s to val. Types implementing
// encoding.TextUnmarshaler take s verbatim; numeric and bool kinds go
// through strconv. A node without a value reads as the empty string,
// so string targets accept it while numeric ones report an error.
func setScalar(val reflect.Value, s, fieldPath string) error {
	if val.CanAddr() && val.Addr().Type().Implements(textUnmarshalerType) {
		tu := val.Addr().Interface().(encoding.TextUnmarshaler)
		if err := tu.UnmarshalText([]byte(s)); err != nil {
			return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return nil
	}
	switch val.Kind() {
	case reflect.String:
		val.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, val.Type().Bits())
		if err != nil {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot parse %q as %s", s, val.Type()),
				Err:       err,
			}
		}
		val.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, val.Type().Bits())
		if err != nil {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot parse %q as %s", s, val.Type()),
				Err:       err,
			}
		}
		val.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, val.Type().Bits())
		if err != nil {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot parse %q as %s", s, val.Type()),
				Err:       err,
			}
		}
		val.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot parse %q as bool", s),
				Err:       err,
			}
		}
		val.SetBool(b)
	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type %s", val.Type()),
		}
	}
	return nil
}

// formatScalar renders val as a node value string, the inverse of
// setScalar.
func formatScalar(val reflect.Value, fieldPath string) (string, error) {
	if s, ok, err := marshalText(val); err != nil {
		return "", &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	} else if ok {
		return s, nil
	}
	switch val.Kind() {
	case reflect.String:
		return val.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(val.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(val.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(val.Float(), 'g', -1, val.Type().Bits()), nil
	case reflect.Bool:
		return strconv.FormatBool(val.Bool()), nil
	}
	return "", &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported type %s", val.Type()),
	}
}

// marshalText reports whether val implements encoding.TextMarshaler,
// directly or through its address, and returns the marshaled text if
// so. A nil pointer is skipped so the caller can omit it.
func marshalText(val reflect.Value) (string, bool, error) {
	if val.Type().Implements(textMarshalerType) {
		if val.Kind() == reflect.Ptr && val.IsNil() {
			return "", false, nil
		}
		b, err := val.Interface().(encoding.TextMarshaler).MarshalText()
		return string(b), true, err
	}
	if val.CanAddr() && reflect.PointerTo(val.Type()).Implements(textMarshalerType) {
		b, err := val.Addr().Interface().(encoding.TextMarshaler).MarshalText()
		return string(b), true, err
	}
	return "", false, nil
}
