package schema

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	defaultKey    = "$default"
	annotationKey = "$schema"

	// ExtensionTSType stores an explicit TypeScript type on a schema.
	ExtensionTSType = "x-ts-type"
)

// Resolve infers an object schema from value. A nil map resolves to an empty
// object schema.
func Resolve(value map[string]any) *openapi3.Schema {
	return resolveObject(value)
}

func resolveObject(value map[string]any) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	if out.Properties == nil {
		out.Properties = make(openapi3.Schemas, len(value))
	}
	for key, raw := range value {
		if strings.HasPrefix(key, "$") {
			continue
		}
		out.Properties[key] = openapi3.NewSchemaRef("", resolveValue(raw))
	}
	return out
}

func resolveValue(raw any) *openapi3.Schema {
	switch v := raw.(type) {
	case nil:
		return &openapi3.Schema{}
	case string:
		return withDefault(openapi3.NewStringSchema(), v)
	case bool:
		return withDefault(openapi3.NewBoolSchema(), v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return withDefault(openapi3.NewIntegerSchema(), v)
	case float32, float64:
		return withDefault(openapi3.NewFloat64Schema(), v)
	case []string:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = item
		}
		return resolveArray(items)
	case []any:
		return resolveArray(v)
	case map[string]any:
		if isAnnotated(v) {
			return resolveAnnotated(v)
		}
		return resolveObject(v)
	case map[string]string:
		converted := make(map[string]any, len(v))
		for key, item := range v {
			converted[key] = item
		}
		return resolveObject(converted)
	default:
		return resolveReflect(raw)
	}
}

func resolveReflect(raw any) *openapi3.Schema {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return resolveArray(items)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return openapi3.NewObjectSchema()
		}
		converted := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			converted[iter.Key().String()] = iter.Value().Interface()
		}
		return resolveObject(converted)
	default:
		return &openapi3.Schema{}
	}
}

func resolveArray(items []any) *openapi3.Schema {
	out := openapi3.NewArraySchema()
	if len(items) == 0 {
		out.Items = openapi3.NewSchemaRef("", &openapi3.Schema{})
		return out
	}

	variants := make(map[string]*openapi3.Schema)
	for _, item := range items {
		resolved := resolveValue(item)
		variants[TSType(resolved)] = resolved
	}
	if len(variants) == 1 {
		for _, only := range variants {
			out.Items = openapi3.NewSchemaRef("", withoutDefault(only))
		}
		return out
	}

	keys := make([]string, 0, len(variants))
	for key := range variants {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	union := &openapi3.Schema{}
	for _, key := range keys {
		union.AnyOf = append(union.AnyOf, openapi3.NewSchemaRef("", withoutDefault(variants[key])))
	}
	out.Items = openapi3.NewSchemaRef("", union)
	return out
}

func isAnnotated(value map[string]any) bool {
	_, hasDefault := value[defaultKey]
	_, hasSchema := value[annotationKey]
	return hasDefault || hasSchema
}

func resolveAnnotated(value map[string]any) *openapi3.Schema {
	var out *openapi3.Schema
	if def, ok := value[defaultKey]; ok {
		out = resolveValue(def)
	} else {
		rest := make(map[string]any, len(value))
		for key, item := range value {
			rest[key] = item
		}
		out = resolveObject(rest)
	}

	annotations, _ := value[annotationKey].(map[string]any)
	if title, ok := annotations["title"].(string); ok {
		out.Title = title
	}
	if description, ok := annotations["description"].(string); ok {
		out.Description = description
	}
	if tsType, ok := annotations["tsType"].(string); ok && tsType != "" {
		if out.Extensions == nil {
			out.Extensions = make(map[string]any)
		}
		out.Extensions[ExtensionTSType] = tsType
	}
	return out
}

func withDefault(s *openapi3.Schema, value any) *openapi3.Schema {
	s.Default = value
	return s
}

func withoutDefault(s *openapi3.Schema) *openapi3.Schema {
	clone := *s
	clone.Default = nil
	return &clone
}

// TSType projects a schema onto a single-line TypeScript type expression.
// Object schemas with properties render inline.
func TSType(s *openapi3.Schema) string {
	if s == nil {
		return "any"
	}
	if ts, ok := s.Extensions[ExtensionTSType].(string); ok && ts != "" {
		return ts
	}
	if len(s.AnyOf) > 0 {
		parts := make([]string, 0, len(s.AnyOf))
		for _, ref := range s.AnyOf {
			parts = append(parts, TSType(ref.Value))
		}
		return strings.Join(parts, " | ")
	}
	switch {
	case s.Type.Is(openapi3.TypeString):
		return "string"
	case s.Type.Is(openapi3.TypeInteger), s.Type.Is(openapi3.TypeNumber):
		return "number"
	case s.Type.Is(openapi3.TypeBoolean):
		return "boolean"
	case s.Type.Is(openapi3.TypeArray):
		var item *openapi3.Schema
		if s.Items != nil {
			item = s.Items.Value
		}
		return fmt.Sprintf("Array<%s>", TSType(item))
	case s.Type.Is(openapi3.TypeObject):
		if len(s.Properties) == 0 {
			return "Record<string, any>"
		}
		return inlineObject(s)
	default:
		return "any"
	}
}

func inlineObject(s *openapi3.Schema) string {
	keys := sortedKeys(s.Properties)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", propertyName(key), TSType(s.Properties[key].Value)))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func sortedKeys(props openapi3.Schemas) []string {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
