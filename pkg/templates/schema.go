package templates

import (
	"fmt"

	"github.com/goliatone/go-nuxtgen/pkg/codegen"
	"github.com/goliatone/go-nuxtgen/pkg/model"
	"github.com/goliatone/go-nuxtgen/pkg/render"
	"github.com/goliatone/go-nuxtgen/pkg/schema"
)

// adHocModules are framework internals that never expose a config key type.
var adHocModules = map[string]struct{}{
	"router":       {},
	"pages":        {},
	"auto-imports": {},
	"meta":         {},
	"components":   {},
}

// Schema augments the framework config with per-module option types and
// declares the private and public runtime config interfaces.
var Schema = render.Template{
	Name:     NameSchema,
	Filename: "types/schema.d.ts",
	Render:   renderSchema,
}

func renderSchema(ctx model.TemplateContext) (string, error) {
	file := codegen.NewFile().Import(codegen.ImportNamed("@nuxt/schema", "NuxtModule"))
	file.Line("declare module " + codegen.Str("@nuxt/schema") + " {")
	file.Line("  interface NuxtConfig {")
	for _, module := range ctx.Options.Modules {
		if module.Meta.ConfigKey == "" || module.Meta.Name == "" {
			continue
		}
		if _, skip := adHocModules[module.Meta.Name]; skip {
			continue
		}
		optionType, err := moduleOptionsType(module)
		if err != nil {
			return "", err
		}
		file.Line(fmt.Sprintf("    [%s]?: %s", codegen.Str(module.Meta.ConfigKey), optionType))
	}
	file.Line("  }")

	private, err := schema.GenerateTypes(schema.Resolve(ctx.Options.PrivateRuntimeConfig()), schema.Options{
		InterfaceName: "RuntimeConfig",
		Indentation:   2,
	})
	if err != nil {
		return "", fmt.Errorf("templates: runtime config types: %w", err)
	}
	public, err := schema.GenerateTypes(schema.Resolve(ctx.Options.PublicRuntimeConfig()), schema.Options{
		InterfaceName: "PublicRuntimeConfig",
		Indentation:   2,
	})
	if err != nil {
		return "", fmt.Errorf("templates: public runtime config types: %w", err)
	}
	file.Lines(private, public, "}")
	return file.String(), nil
}

// moduleOptionsType infers option types from the module definition. Inline
// modules without an entry path but with a declared schema get a type
// projected from that schema instead.
func moduleOptionsType(module model.Module) (string, error) {
	if module.EntryPath == "" && len(module.Meta.Schema) > 0 {
		return "Partial<" + schema.TSType(schema.Resolve(module.Meta.Schema)) + ">", nil
	}
	importName := module.ImportName()
	if importName == "" {
		return "", &model.MissingFieldError{Field: "options.modules.entryPath"}
	}
	return fmt.Sprintf(
		"typeof %s.default extends NuxtModule<infer O> ? Partial<O> : Record<string, any>",
		codegen.DynamicImport(importName, false),
	), nil
}
