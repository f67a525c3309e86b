package nuxtgen

import (
	"github.com/goliatone/go-nuxtgen/pkg/project"
)

// NewLoader constructs a project loader.
func NewLoader(options ...project.Option) *project.Loader {
	return project.New(options...)
}

// LoadProject reads a project file from disk and applies key.path=value
// overrides.
func LoadProject(path string, overrides ...string) (TemplateContext, error) {
	return project.Load(path, overrides...)
}
