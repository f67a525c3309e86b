package codegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Str renders a double-quoted string literal.
func Str(value string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(value)
	return strings.TrimSuffix(buf.String(), "\n")
}

// JSON renders value as a JSON literal indented by two spaces. Map keys are
// sorted, so equal values always render identically.
func JSON(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("codegen: encode json: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// CompactJSON renders value as single-line JSON.
func CompactJSON(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("codegen: encode json: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Import renders `import name from "specifier"`.
func Import(specifier, name string) string {
	return fmt.Sprintf("import %s from %s", name, Str(specifier))
}

// ImportNamed renders `import { a, b } from "specifier"`.
func ImportNamed(specifier string, names ...string) string {
	return fmt.Sprintf("import { %s } from %s", strings.Join(names, ", "), Str(specifier))
}

// ImportType renders `import type { a } from "specifier"`.
func ImportType(specifier string, names ...string) string {
	return fmt.Sprintf("import type { %s } from %s", strings.Join(names, ", "), Str(specifier))
}

// ImportSideEffect renders `import "specifier"`.
func ImportSideEffect(specifier string) string {
	return "import " + Str(specifier)
}

// ExportFrom renders `export { a, b } from "specifier"`.
func ExportFrom(specifier string, names ...string) string {
	return fmt.Sprintf("export { %s } from %s", strings.Join(names, ", "), Str(specifier))
}

// DynamicImport renders `import("specifier")`, wrapped in an arrow function
// when wrapper is set.
func DynamicImport(specifier string, wrapper bool) string {
	call := fmt.Sprintf("import(%s)", Str(specifier))
	if wrapper {
		return "() => " + call
	}
	return call
}

// ArrayFromRaw renders raw expressions as a multi-line array literal.
func ArrayFromRaw(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for i, item := range items {
		b.WriteString("  ")
		b.WriteString(item)
		if i < len(items)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]")
	return b.String()
}

// Entry is one key/raw-expression pair of an object literal.
type Entry struct {
	Key   string
	Value string
}

// ObjectFromRawEntries renders entries, in order, as a multi-line object
// literal.
func ObjectFromRawEntries(entries []Entry) string {
	if len(entries) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, entry := range entries {
		b.WriteString("  ")
		b.WriteString(ObjectKey(entry.Key))
		b.WriteString(": ")
		b.WriteString(entry.Value)
		if i < len(entries)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// ObjectKey renders key bare when it is a valid identifier and quoted
// otherwise.
func ObjectKey(key string) string {
	if IsIdentifier(key) {
		return key
	}
	return Str(key)
}

// CamelCase joins dash, underscore, dot and space separated words, upper-casing
// the first letter of every word after the first.
func CamelCase(value string) string {
	words := strings.FieldsFunc(value, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})
	var b strings.Builder
	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			continue
		}
		first, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(word[size:])
	}
	return b.String()
}
