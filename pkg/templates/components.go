package templates

import (
	"github.com/goliatone/go-nuxtgen/pkg/codegen"
	"github.com/goliatone/go-nuxtgen/pkg/model"
	"github.com/goliatone/go-nuxtgen/pkg/render"
)

// VueShim declares `*.vue` modules for the type checker.
var VueShim = render.Template{
	Name:     NameVueShim,
	Filename: "types/vue-shim.d.ts",
	Render: func(model.TemplateContext) (string, error) {
		return renderAsset("vue-shim.d.ts", nil)
	},
}

// AppComponent re-exports the main application component.
var AppComponent = render.Template{
	Name:     NameAppComponent,
	Filename: "app-component.mjs",
	Render: func(ctx model.TemplateContext) (string, error) {
		return reexportDefault("app.mainComponent", ctx.App.MainComponent)
	},
}

// RootComponent re-exports the root component that wraps the app.
var RootComponent = render.Template{
	Name:     NameRootComponent,
	Filename: "root-component.mjs",
	Render: func(ctx model.TemplateContext) (string, error) {
		return reexportDefault("app.rootComponent", ctx.App.RootComponent)
	},
}

// ErrorComponent re-exports the error page component.
var ErrorComponent = render.Template{
	Name:     NameErrorComponent,
	Filename: "error-component.mjs",
	Render: func(ctx model.TemplateContext) (string, error) {
		return reexportDefault("app.errorComponent", ctx.App.ErrorComponent)
	},
}

// CSS imports every global stylesheet for its side effects, in order.
var CSS = render.Template{
	Name:     NameCSS,
	Filename: "css.mjs",
	Render: func(ctx model.TemplateContext) (string, error) {
		file := codegen.NewFile()
		for _, entry := range ctx.Options.CSS {
			file.Import(codegen.ImportSideEffect(entry))
		}
		return file.String(), nil
	},
}

func reexportDefault(field, specifier string) (string, error) {
	specifier, err := model.Require(field, specifier)
	if err != nil {
		return "", err
	}
	return codegen.NewFile().Line(codegen.ExportFrom(specifier, "default")).String(), nil
}
