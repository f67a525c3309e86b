package project

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ApplyOverride sets a dotted key path in raw, creating intermediate maps. The
// value is parsed as a YAML scalar or flow collection so `dev=true` yields a
// boolean; unparsable values are kept as plain strings.
func ApplyOverride(raw map[string]any, expr string) error {
	key, value, ok := strings.Cut(expr, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("project: invalid override %q, expected key.path=value", expr)
	}

	segments := strings.Split(key, ".")
	current := raw
	for _, segment := range segments[:len(segments)-1] {
		if segment == "" {
			return fmt.Errorf("project: invalid override key %q", key)
		}
		next, exists := current[segment]
		if !exists || next == nil {
			child := map[string]any{}
			current[segment] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("project: override %q: %q is not an object", key, segment)
		}
		current = child
	}

	last := segments[len(segments)-1]
	if last == "" {
		return fmt.Errorf("project: invalid override key %q", key)
	}
	current[last] = parseValue(value)
	return nil
}

func parseValue(value string) any {
	if strings.TrimSpace(value) == "" {
		return value
	}
	var parsed any
	if err := yaml.Unmarshal([]byte(value), &parsed); err != nil {
		return value
	}
	return parsed
}
