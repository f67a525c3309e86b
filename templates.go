package nuxtgen

import (
	"io/fs"

	"github.com/goliatone/go-nuxtgen/pkg/render"
	"github.com/goliatone/go-nuxtgen/pkg/templates"
)

// EmbeddedTemplates exposes the built-in template assets so callers can reuse
// or extend them without importing the templates package directly.
func EmbeddedTemplates() fs.FS {
	return templates.AssetsFS()
}

// DefaultTemplates returns the built-in templates in registration order.
func DefaultTemplates() []render.Template {
	return templates.Defaults()
}
