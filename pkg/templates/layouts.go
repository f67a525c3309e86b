package templates

import (
	"github.com/goliatone/go-nuxtgen/pkg/codegen"
	"github.com/goliatone/go-nuxtgen/pkg/model"
	"github.com/goliatone/go-nuxtgen/pkg/render"
)

// Layouts maps every layout name to a lazily loaded component.
var Layouts = render.Template{
	Name:     NameLayouts,
	Filename: "layouts.mjs",
	Render: func(ctx model.TemplateContext) (string, error) {
		layouts := ctx.App.SortedLayouts()
		entries := make([]codegen.Entry, 0, len(layouts))
		for _, layout := range layouts {
			entries = append(entries, codegen.Entry{
				Key:   layout.Name,
				Value: "defineAsyncComponent(" + codegen.DynamicImport(layout.File, true) + ")",
			})
		}
		return codegen.NewFile().
			Import(codegen.ImportNamed("vue", "defineAsyncComponent")).
			Line("export default " + codegen.ObjectFromRawEntries(entries)).
			String(), nil
	},
}

// Middleware splits route middleware into the ordered global list and the
// lazily loaded named table.
var Middleware = render.Template{
	Name:     NameMiddleware,
	Filename: "middleware.mjs",
	Render: func(ctx model.TemplateContext) (string, error) {
		file := codegen.NewFile()
		var globals []string
		var named []codegen.Entry
		for _, mw := range ctx.App.Middleware {
			if mw.Global {
				identifier := sourceIdentifier(ctx, mw.Path)
				file.Import(codegen.Import(mw.Path, identifier))
				globals = append(globals, identifier)
				continue
			}
			named = append(named, codegen.Entry{Key: mw.Name, Value: codegen.DynamicImport(mw.Path, true)})
		}
		file.Line("export const globalMiddleware = " + codegen.ArrayFromRaw(globals))
		file.Line("export const namedMiddleware = " + codegen.ObjectFromRawEntries(named))
		return file.String(), nil
	},
}
