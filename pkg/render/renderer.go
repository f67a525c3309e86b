package render

import (
	"fmt"

	"github.com/goliatone/go-nuxtgen/pkg/model"
)

// RenderFunc produces the generated source text for one file.
type RenderFunc func(ctx model.TemplateContext) (string, error)

// Template binds a symbolic name and a relative output filename to a render
// function. Write marks files that must be persisted to disk instead of
// living only in the virtual file system.
type Template struct {
	Name     string
	Filename string
	Write    bool
	Render   RenderFunc
}

// Execute renders the template into a File.
func (t Template) Execute(ctx model.TemplateContext) (File, error) {
	if t.Render == nil {
		return File{}, fmt.Errorf("render: template %q has no render function", t.Name)
	}
	contents, err := t.Render(ctx)
	if err != nil {
		return File{}, err
	}
	return File{
		Name:     t.Name,
		Filename: t.Filename,
		Contents: contents,
		Write:    t.Write,
	}, nil
}

// File is the output of one template.
type File struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Contents string `json:"contents"`
	Write    bool   `json:"write,omitempty"`
}
