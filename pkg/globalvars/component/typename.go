package component

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/randalmurphal/globalvars/pkg/globalvars/config"
)

// qualifier matches package qualifiers such as "big." or
// "github.com/x/y." inside the type arguments of a generic type name.
var qualifier = regexp.MustCompile(`\w[\w./-]*\.`)

// TypeName returns the unqualified type name of v: "float64", "*Point",
// "map[string]Int". A nil v yields "null".
func TypeName(v any) string {
	return typeName(v, config.DefaultNullTypeName)
}

func typeName(v any, null string) string {
	if v == nil {
		return null
	}
	return shortName(reflect.TypeOf(v))
}

// shortName prints t the way reflect does, minus package qualifiers.
// Struct tags are printed verbatim.
func shortName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		if i := strings.IndexByte(name, '['); i >= 0 {
			return name[:i] + qualifier.ReplaceAllString(name[i:], "")
		}
		return name
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + shortName(t.Elem())
	case reflect.Slice:
		return "[]" + shortName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + shortName(t.Elem())
	case reflect.Map:
		return "map[" + shortName(t.Key()) + "]" + shortName(t.Elem())
	case reflect.Chan:
		return chanName(t)
	case reflect.Func:
		return funcName(t)
	case reflect.Struct:
		return structName(t)
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return "interface {}"
		}
	}
	return t.String()
}

func chanName(t reflect.Type) string {
	elem := shortName(t.Elem())
	switch t.ChanDir() {
	case reflect.RecvDir:
		return "<-chan " + elem
	case reflect.SendDir:
		return "chan<- " + elem
	}
	if t.Elem().Kind() == reflect.Chan && t.Elem().Name() == "" && t.Elem().ChanDir() == reflect.RecvDir {
		return "chan (" + elem + ")"
	}
	return "chan " + elem
}

func funcName(t reflect.Type) string {
	var b strings.Builder
	b.WriteString("func(")
	for i := 0; i < t.NumIn(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			b.WriteString("..." + shortName(t.In(i).Elem()))
			continue
		}
		b.WriteString(shortName(t.In(i)))
	}
	b.WriteString(")")

	switch t.NumOut() {
	case 0:
	case 1:
		b.WriteString(" " + shortName(t.Out(0)))
	default:
		b.WriteString(" (")
		for i := 0; i < t.NumOut(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(shortName(t.Out(i)))
		}
		b.WriteString(")")
	}
	return b.String()
}

func structName(t reflect.Type) string {
	if t.NumField() == 0 {
		return "struct {}"
	}

	var b strings.Builder
	b.WriteString("struct {")
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(" ")
		if !f.Anonymous {
			b.WriteString(f.Name + " ")
		}
		b.WriteString(shortName(f.Type))
		if f.Tag != "" {
			b.WriteString(" " + strconv.Quote(string(f.Tag)))
		}
	}
	b.WriteString(" }")
	return b.String()
}

// FullTypeName returns the type name of v qualified with its full import
// path, e.g. "math/big.Int" or "*github.com/acme/geo.Point". Unnamed and
// predeclared types are returned as reflect prints them. A nil v yields
// "null".
func FullTypeName(v any) string {
	return fullTypeName(v, config.DefaultNullTypeName)
}

func fullTypeName(v any, null string) string {
	if v == nil {
		return null
	}

	t := reflect.TypeOf(v)
	stars := 0
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
		stars++
	}

	name := t.String()
	if t.Name() != "" && t.PkgPath() != "" {
		// t.Name() carries any type arguments already.
		name = t.PkgPath() + "." + t.Name()
	}
	return strings.Repeat("*", stars) + name
}

// TypeSchema returns a JSON schema describing the type of v as a generic
// map. A nil v yields {"type": "null"}. Types the reflector cannot
// describe yield an empty object schema.
func TypeSchema(v any) map[string]any {
	if v == nil {
		return map[string]any{"type": "null"}
	}
	schema, err := reflectSchema(reflect.TypeOf(v))
	if err != nil {
		return map[string]any{"type": "object", "properties": map[string]any{}}
	}
	return schema
}

func reflectSchema(t reflect.Type) (schema map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reflect schema for %s: %v", t, r)
		}
	}()

	elem := t
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	reflector := jsonschema.Reflector{
		ExpandedStruct: elem.Kind() == reflect.Struct,
		DoNotReference: true,
	}

	data, err := json.Marshal(reflector.ReflectFromType(elem))
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	delete(schema, "$schema")
	return schema, nil
}
