package templates

import (
	"path/filepath"

	"github.com/goliatone/go-nuxtgen/pkg/codegen"
	"github.com/goliatone/go-nuxtgen/pkg/model"
	"github.com/goliatone/go-nuxtgen/pkg/render"
)

// PreloadPlugin is always the first plugin of the server bundle.
const PreloadPlugin = "#app/plugins/preload.server"

const preloadIdentifier = "preload"

// PluginsClient aggregates every plugin that runs in the browser.
var PluginsClient = render.Template{
	Name:     NamePluginsClient,
	Filename: "plugins/client.mjs",
	Render: func(ctx model.TemplateContext) (string, error) {
		return renderPlugins(ctx, model.Plugin.OnClient, nil), nil
	},
}

// PluginsServer aggregates the preload entry and every plugin that runs on
// the server.
var PluginsServer = render.Template{
	Name:     NamePluginsServer,
	Filename: "plugins/server.mjs",
	Render: func(ctx model.TemplateContext) (string, error) {
		preload := &pluginImport{specifier: PreloadPlugin, identifier: preloadIdentifier}
		return renderPlugins(ctx, model.Plugin.OnServer, preload), nil
	},
}

type pluginImport struct {
	specifier  string
	identifier string
}

func renderPlugins(ctx model.TemplateContext, include func(model.Plugin) bool, first *pluginImport) string {
	file := codegen.NewFile()
	var exports []string
	if first != nil {
		file.Import(codegen.Import(first.specifier, first.identifier))
		exports = append(exports, first.identifier)
	}
	for _, plugin := range ctx.App.Plugins {
		if !include(plugin) {
			continue
		}
		identifier := sourceIdentifier(ctx, plugin.Src)
		file.Import(codegen.Import(plugin.Src, identifier))
		exports = append(exports, identifier)
	}
	file.Line("export default " + codegen.ArrayFromRaw(exports))
	return file.String()
}

// PluginsDeclaration merges the injections of every plugin into the app and
// component instance types.
var PluginsDeclaration = render.Template{
	Name:     NamePluginsDeclaration,
	Filename: "types/plugins.d.ts",
	Render: func(ctx model.TemplateContext) (string, error) {
		typesDir := ""
		if ctx.Options.BuildDir != "" {
			typesDir = filepath.Join(ctx.Options.BuildDir, "types")
		}
		injections := make([]any, 0, len(ctx.App.Plugins))
		for _, plugin := range ctx.App.Plugins {
			src := relativePath(typesDir, plugin.Src)
			injections = append(injections, stripExtension(src, ctx.Options.Extensions))
		}
		return renderAsset("plugins.d.ts", map[string]any{"injections": injections})
	},
}
