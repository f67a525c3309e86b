package codegen

import "strings"

// File accumulates the import section and body of one generated module.
type File struct {
	header  []string
	imports []string
	body    []string
}

// NewFile returns an empty file builder.
func NewFile() *File {
	return &File{}
}

// Comment adds a line comment above the import section.
func (f *File) Comment(text string) *File {
	f.header = append(f.header, "// "+text)
	return f
}

// Import appends a raw import statement (see Import and friends).
func (f *File) Import(stmt string) *File {
	if stmt != "" {
		f.imports = append(f.imports, stmt)
	}
	return f
}

// Line appends one line to the body. Multi-line fragments are accepted.
func (f *File) Line(line string) *File {
	f.body = append(f.body, line)
	return f
}

// Lines appends several body lines.
func (f *File) Lines(lines ...string) *File {
	f.body = append(f.body, lines...)
	return f
}

// Blank appends an empty body line.
func (f *File) Blank() *File {
	return f.Line("")
}

// Imports returns the import statements in order.
func (f *File) Imports() []string {
	out := make([]string, len(f.imports))
	copy(out, f.imports)
	return out
}

// String renders header, imports and body joined by newlines.
func (f *File) String() string {
	parts := make([]string, 0, len(f.header)+len(f.imports)+len(f.body))
	parts = append(parts, f.header...)
	parts = append(parts, f.imports...)
	parts = append(parts, f.body...)
	return strings.Join(parts, "\n")
}
