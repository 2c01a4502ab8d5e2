package itinerary

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// textExtractor pulls plain text out of a provider response. ok is false when the
// response does not have the shape the extractor looks for.
type textExtractor func(response any) (text string, ok bool)

// responseExtractors run in order; the first one that matches wins.
var responseExtractors = []textExtractor{
	accessorExtractor("content"),
	accessorExtractor("text"),
	accessorExtractor("message"),
	mappingExtractor("content", "text", "message", "output"),
	stringExtractor,
}

// ExtractText normalizes an opaque completion response into trimmed plain text.
func ExtractText(response any) string {
	for _, extract := range responseExtractors {
		if text, ok := extract(response); ok {
			return strings.TrimSpace(text)
		}
	}
	return ""
}

// accessorExtractor matches a string field or a niladic string method called name
// (exported form, e.g. Content or Content()).
func accessorExtractor(name string) textExtractor {
	exported := exportedName(name)
	return func(response any) (string, bool) {
		v := reflect.ValueOf(response)
		if !v.IsValid() {
			return "", false
		}
		if text, ok := callStringMethod(v, exported); ok {
			return text, true
		}
		v = indirect(v)
		if !v.IsValid() || v.Kind() != reflect.Struct {
			return "", false
		}
		field, found := v.Type().FieldByName(exported)
		if !found || !field.IsExported() {
			return "", false
		}
		fv, err := v.FieldByIndexErr(field.Index)
		if err != nil {
			return "", false
		}
		return stringValue(fv)
	}
}

// mappingExtractor probes a string-keyed map for the first key holding a string.
func mappingExtractor(keys ...string) textExtractor {
	return func(response any) (string, bool) {
		v := indirect(reflect.ValueOf(response))
		if !v.IsValid() || v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
			return "", false
		}
		keyType := v.Type().Key()
		for _, key := range keys {
			val := v.MapIndex(reflect.ValueOf(key).Convert(keyType))
			if !val.IsValid() {
				continue
			}
			if text, ok := stringValue(val); ok {
				return text, true
			}
		}
		return "", false
	}
}

// stringExtractor is the fallback: the value's own string form. A nil response or a
// String method that panics yields "".
func stringExtractor(response any) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", true
		}
	}()

	switch r := response.(type) {
	case nil:
		return "", true
	case string:
		return r, true
	case fmt.Stringer:
		return r.String(), true
	case error:
		return r.Error(), true
	}
	return fmt.Sprint(response), true
}

func callStringMethod(v reflect.Value, name string) (text string, ok bool) {
	m := v.MethodByName(name)
	if !m.IsValid() {
		return "", false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.String {
		return "", false
	}
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()
	return m.Call(nil)[0].String(), true
}

func stringValue(v reflect.Value) (string, bool) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if !v.IsValid() || v.Kind() != reflect.String {
		return "", false
	}
	return v.String(), true
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func exportedName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
