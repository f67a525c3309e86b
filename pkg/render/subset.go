package render

import "strings"

// Subset narrows a template list. Names match template names, Filenames match
// output filenames; an empty Subset selects everything. WriteOnly keeps only
// templates flagged for disk persistence.
type Subset struct {
	Names     []string
	Filenames []string
	WriteOnly bool
}

// Empty reports whether the subset applies no filtering.
func (s Subset) Empty() bool {
	return len(normalise(s.Names)) == 0 && len(normalise(s.Filenames)) == 0 && !s.WriteOnly
}

// ApplySubset returns the templates matched by subset, preserving order.
func ApplySubset(templates []Template, subset Subset) []Template {
	if subset.Empty() {
		return templates
	}

	names := toSet(subset.Names)
	filenames := toSet(subset.Filenames)
	filtered := make([]Template, 0, len(templates))
	for _, tpl := range templates {
		if subset.WriteOnly && !tpl.Write {
			continue
		}
		if len(names) > 0 || len(filenames) > 0 {
			_, byName := names[tpl.Name]
			_, byFile := filenames[tpl.Filename]
			if !byName && !byFile {
				continue
			}
		}
		filtered = append(filtered, tpl)
	}
	return filtered
}

func toSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, value := range normalise(values) {
		out[value] = struct{}{}
	}
	return out
}

func normalise(values []string) []string {
	out := values[:0:0]
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
