package binder

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

func bindError(sentinel, cause error) error {
	return errors.Join(sentinel, cause)
}

// bindToStruct copies values into the fields of the struct pointed to by v
// that carry tagName. Untagged fields and fields tagged "-" are left alone,
// so several binders can fill one struct.
//
// Empty values count as absent: pointer fields stay nil and slices drop
// empty elements.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error, normalize ...func(string) string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return bindError(bindErr, ErrInvalidTarget)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, ok := fieldName(sf, tagName)
		if !ok {
			continue
		}
		for _, fn := range normalize {
			name = fn(name)
		}

		raw := nonEmpty(values[name])
		if len(raw) == 0 {
			continue
		}

		if err := setField(field, sf.Type, raw); err != nil {
			return bindError(bindErr, fmt.Errorf("field %s: %w", sf.Name, err))
		}
	}
	return nil
}

func fieldName(sf reflect.StructField, tagName string) (string, bool) {
	tag, ok := sf.Tag.Lookup(tagName)
	if !ok || tag == "" || tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, name != ""
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func setField(field reflect.Value, typ reflect.Type, values []string) error {
	switch typ.Kind() {
	case reflect.Pointer:
		ptr := reflect.New(typ.Elem())
		if err := setField(ptr.Elem(), typ.Elem(), values); err != nil {
			return err
		}
		field.Set(ptr)
		return nil

	case reflect.Slice:
		var parts []string
		for _, v := range values {
			for p := range strings.SplitSeq(v, ",") {
				if p = strings.TrimSpace(p); p != "" {
					parts = append(parts, p)
				}
			}
		}
		slice := reflect.MakeSlice(typ, len(parts), len(parts))
		for i, p := range parts {
			if err := setScalar(slice.Index(i), typ.Elem(), p); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil

	default:
		return setScalar(field, typ, values[0])
	}
}

func setScalar(field reflect.Value, typ reflect.Type, value string) error {
	switch typ.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool value %q", value)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, typ.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)
	default:
		return fmt.Errorf("unsupported type %s", typ.Kind())
	}
	return nil
}
