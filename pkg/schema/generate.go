package schema

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/microcosm-cc/bluemonday"
)

// Options controls GenerateTypes output.
type Options struct {
	// InterfaceName names the emitted interface.
	InterfaceName string
	// Indentation is the number of spaces prefixed to every line.
	Indentation int
	// AddExport prefixes the declaration with `export`.
	AddExport bool
	// AllowExtraKeys adds an index signature to every object.
	AllowExtraKeys bool
	// AddDefaults documents resolved default values with @default tags.
	AddDefaults bool
}

var (
	commentPolicyOnce sync.Once
	commentPolicy     *bluemonday.Policy
)

// GenerateTypes renders s as a TypeScript interface declaration. Properties
// are emitted in sorted order and nested objects expand into nested type
// literals.
func GenerateTypes(s *openapi3.Schema, opts Options) (string, error) {
	name := strings.TrimSpace(opts.InterfaceName)
	if name == "" {
		return "", fmt.Errorf("schema: interface name is required")
	}
	if s == nil {
		s = openapi3.NewObjectSchema()
	}

	var b strings.Builder
	indent := strings.Repeat(" ", opts.Indentation)
	writeDoc(&b, indent, s, false)
	b.WriteString(indent)
	if opts.AddExport {
		b.WriteString("export ")
	}
	fmt.Fprintf(&b, "interface %s {\n", name)
	writeProperties(&b, indent+"  ", s, opts)
	b.WriteString(indent)
	b.WriteString("}")
	return b.String(), nil
}

func writeProperties(b *strings.Builder, indent string, s *openapi3.Schema, opts Options) {
	for _, key := range sortedKeys(s.Properties) {
		prop := s.Properties[key].Value
		writeDoc(b, indent, prop, opts.AddDefaults)
		b.WriteString(indent)
		b.WriteString(propertyName(key))
		b.WriteString(": ")
		if isNestedObject(prop) {
			b.WriteString("{\n")
			writeProperties(b, indent+"  ", prop, opts)
			b.WriteString(indent)
			b.WriteString("},\n")
			continue
		}
		b.WriteString(TSType(prop))
		b.WriteString(",\n")
	}
	if opts.AllowExtraKeys {
		b.WriteString(indent)
		b.WriteString("[key: string]: any,\n")
	}
}

func isNestedObject(s *openapi3.Schema) bool {
	if s == nil || !s.Type.Is(openapi3.TypeObject) || len(s.Properties) == 0 {
		return false
	}
	_, explicit := s.Extensions[ExtensionTSType]
	return !explicit
}

func writeDoc(b *strings.Builder, indent string, s *openapi3.Schema, defaults bool) {
	if s == nil {
		return
	}
	var lines []string
	if title := cleanComment(s.Title); title != "" {
		lines = append(lines, title)
	}
	if description := cleanComment(s.Description); description != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(description, "\n")...)
	}
	if defaults && s.Default != nil {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("@default %v", formatDefault(s.Default)))
	}
	if len(lines) == 0 {
		return
	}
	if len(lines) == 1 {
		fmt.Fprintf(b, "%s/** %s */\n", indent, lines[0])
		return
	}
	fmt.Fprintf(b, "%s/**\n", indent)
	for _, line := range lines {
		if line == "" {
			fmt.Fprintf(b, "%s *\n", indent)
			continue
		}
		fmt.Fprintf(b, "%s * %s\n", indent, line)
	}
	fmt.Fprintf(b, "%s */\n", indent)
}

func formatDefault(value any) string {
	if s, ok := value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(value)
}

// cleanComment strips markup from schema prose and keeps it from closing the
// surrounding comment.
func cleanComment(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	commentPolicyOnce.Do(func() {
		commentPolicy = bluemonday.StrictPolicy()
	})
	cleaned := html.UnescapeString(commentPolicy.Sanitize(trimmed))
	cleaned = strings.ReplaceAll(cleaned, "*/", "*\\/")
	return strings.TrimSpace(cleaned)
}

func propertyName(key string) string {
	if isTSIdentifier(key) {
		return key
	}
	return fmt.Sprintf("%q", key)
}

func isTSIdentifier(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
