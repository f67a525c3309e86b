package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-nuxtgen/pkg/codegen"
	"github.com/goliatone/go-nuxtgen/pkg/model"
	"github.com/goliatone/go-nuxtgen/pkg/render"
)

// NitroClient exposes the serialized runtime config to client code.
var NitroClient = render.Template{
	Name:     NameNitroClient,
	Filename: "nitro.client.mjs",
	Render: func(model.TemplateContext) (string, error) {
		return renderAsset("nitro.client.mjs", nil)
	},
}

// AppConfigDeclaration types the merged app config as a Defu merge of the
// inline object with every fragment, in fragment order. Its precedence is the
// reverse of the runtime merge; see AppConfig.
var AppConfigDeclaration = render.Template{
	Name:     NameAppConfigDeclaration,
	Filename: "types/app.config.d.ts",
	Render: func(ctx model.TemplateContext) (string, error) {
		inline, err := inlineAppConfig(ctx)
		if err != nil {
			return "", err
		}
		file := codegen.NewFile().Import(codegen.ImportType("defu", "Defu"))
		types := make([]string, 0, len(ctx.App.Configs))
		for _, id := range ctx.App.Configs {
			identifier := sourceIdentifier(ctx, id)
			file.Import(codegen.Import(stripAnyExtension(id), identifier))
			types = append(types, "typeof "+identifier)
		}
		file.Blank().
			Line("declare const inlineConfig: " + inline).
			Line(fmt.Sprintf("type ResolvedAppConfig = Defu<typeof inlineConfig, [%s]>", strings.Join(types, ", "))).
			Blank().
			Line("declare module " + codegen.Str("@nuxt/schema") + " {").
			Line("  interface AppConfig extends ResolvedAppConfig { }").
			Line("}")
		return file.String(), nil
	},
}

// AppConfig merges the app config fragments with the inline config at
// runtime. defuFn gives priority to its first argument, so fragments are
// passed last to first followed by the inline object: a later fragment
// overrides an earlier one and the inline object only fills missing keys.
// AppConfigDeclaration keeps fragment order instead, so where two sources set
// the same key to different types the declared type follows the earlier
// source while the runtime value follows the later one.
var AppConfig = render.Template{
	Name:     NameAppConfig,
	Filename: "app.config.mjs",
	Write:    true,
	Render: func(ctx model.TemplateContext) (string, error) {
		inline, err := inlineAppConfig(ctx)
		if err != nil {
			return "", err
		}
		file := codegen.NewFile().Import(codegen.ImportNamed("defu", "defuFn"))
		identifiers := make([]string, len(ctx.App.Configs))
		for i, id := range ctx.App.Configs {
			identifiers[i] = sourceIdentifier(ctx, id)
			file.Import(codegen.Import(id, identifiers[i]))
		}
		args := make([]string, 0, len(identifiers)+1)
		for i := len(identifiers) - 1; i >= 0; i-- {
			args = append(args, identifiers[i])
		}
		args = append(args, "inlineConfig")
		file.Blank().
			Line("const inlineConfig = " + inline).
			Blank().
			Line(fmt.Sprintf("export default /* #__PURE__ */ defuFn(%s)", strings.Join(args, ", ")))
		return file.String(), nil
	},
}

func inlineAppConfig(ctx model.TemplateContext) (string, error) {
	value := ctx.Options.AppConfig
	if value == nil {
		value = map[string]any{}
	}
	return codegen.JSON(value)
}

// Paths exposes the public path helpers as an accessor object. Consumers
// import `paths` (or the default export) instead of reading globals; the
// globalThis assignments are emitted only when Options.LegacyGlobals is set.
var Paths = render.Template{
	Name:     NamePaths,
	Filename: "paths.mjs",
	Render: func(ctx model.TemplateContext) (string, error) {
		file := codegen.NewFile().Import(codegen.ImportNamed("ufo", "joinURL"))
		if ctx.Options.Dev {
			appConfig, err := codegen.CompactJSON(ctx.Options.App)
			if err != nil {
				return "", err
			}
			file.Line("const appConfig = " + appConfig)
		} else {
			file.Import(codegen.ImportNamed("#internal/nitro", "useRuntimeConfig"))
			file.Line("const appConfig = useRuntimeConfig().app")
		}
		file.Lines(
			"export const baseURL = () => appConfig.baseURL",
			"export const buildAssetsDir = () => appConfig.buildAssetsDir",
			"export const buildAssetsURL = (...path) => joinURL(publicAssetsURL(), appConfig.buildAssetsDir, ...path)",
			"export const publicAssetsURL = (...path) => {",
			"  const publicBase = appConfig.cdnURL || appConfig.baseURL",
			"  return path.length ? joinURL(publicBase, ...path) : publicBase",
			"}",
			"export const paths = Object.freeze({ baseURL, buildAssetsDir, buildAssetsURL, publicAssetsURL })",
			"export default paths",
		)
		if ctx.Options.LegacyGlobals {
			file.Lines(
				"globalThis.__buildAssetsURL = buildAssetsURL",
				"globalThis.__publicAssetsURL = publicAssetsURL",
			)
		}
		return file.String(), nil
	},
}

// NuxtConfig exports every app option as an `app<Key>` constant.
var NuxtConfig = render.Template{
	Name:     NameNuxtConfig,
	Filename: "nuxt.config.mjs",
	Render: func(ctx model.TemplateContext) (string, error) {
		options := ctx.Options.App.Map()
		keys := make([]string, 0, len(options))
		for key := range options {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		exports := make([]string, 0, len(keys))
		for _, key := range keys {
			value, err := codegen.CompactJSON(options[key])
			if err != nil {
				return "", fmt.Errorf("templates: app option %q: %w", key, err)
			}
			name := codegen.SafeVariableName(codegen.CamelCase("app-" + key))
			exports = append(exports, fmt.Sprintf("export const %s = %s", name, value))
		}
		return strings.Join(exports, "\n\n"), nil
	},
}
