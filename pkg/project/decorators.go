package project

import (
	"path/filepath"
	"strings"

	"github.com/goliatone/go-nuxtgen/pkg/model"
)

// DefaultExtensions lists the extensions stripped from generated import
// specifiers when none are configured.
var DefaultExtensions = []string{".js", ".mjs", ".cjs", ".ts", ".mts", ".cts", ".vue"}

const (
	defaultBuildDir       = ".nuxt"
	defaultBaseURL        = "/"
	defaultBuildAssetsDir = "/_nuxt/"
)

// Defaults fills the root and build directories, extensions and app options.
// A missing or relative rootDir is resolved against baseDir.
func Defaults(baseDir string) model.Decorator {
	return model.DecoratorFunc(func(ctx *model.TemplateContext) error {
		opts := &ctx.Options
		switch {
		case opts.RootDir == "":
			opts.RootDir = baseDir
		case !filepath.IsAbs(opts.RootDir) && baseDir != "":
			opts.RootDir = filepath.Join(baseDir, opts.RootDir)
		}
		switch {
		case opts.BuildDir == "":
			opts.BuildDir = filepath.Join(opts.RootDir, defaultBuildDir)
		case !filepath.IsAbs(opts.BuildDir):
			opts.BuildDir = filepath.Join(opts.RootDir, opts.BuildDir)
		}
		if len(opts.Extensions) == 0 {
			opts.Extensions = append([]string(nil), DefaultExtensions...)
		}
		if opts.App.BaseURL == "" {
			opts.App.BaseURL = defaultBaseURL
		}
		if opts.App.BuildAssetsDir == "" {
			opts.App.BuildAssetsDir = defaultBuildAssetsDir
		}
		return nil
	})
}

// ResolvePaths rewrites project-relative specifiers (`./`, `../`, `~/`, `@/`)
// into paths rooted at options.rootDir. Package specifiers are left as is.
func ResolvePaths() model.Decorator {
	return model.DecoratorFunc(func(ctx *model.TemplateContext) error {
		root := ctx.Options.RootDir
		app := &ctx.App

		app.MainComponent = resolve(root, app.MainComponent)
		app.RootComponent = resolve(root, app.RootComponent)
		app.ErrorComponent = resolve(root, app.ErrorComponent)
		for i := range app.Plugins {
			app.Plugins[i].Src = resolve(root, app.Plugins[i].Src)
		}
		for name, layout := range app.Layouts {
			layout.File = resolve(root, layout.File)
			app.Layouts[name] = layout
		}
		for i := range app.Middleware {
			app.Middleware[i].Path = resolve(root, app.Middleware[i].Path)
		}
		for i := range app.Configs {
			app.Configs[i] = resolve(root, app.Configs[i])
		}
		for i := range ctx.Options.CSS {
			ctx.Options.CSS[i] = resolve(root, ctx.Options.CSS[i])
		}
		for i := range ctx.Options.Modules {
			ctx.Options.Modules[i].EntryPath = resolve(root, ctx.Options.Modules[i].EntryPath)
		}
		return nil
	})
}

func resolve(root, specifier string) string {
	switch {
	case strings.HasPrefix(specifier, "~/"), strings.HasPrefix(specifier, "@/"):
		return filepath.ToSlash(filepath.Join(root, specifier[2:]))
	case strings.HasPrefix(specifier, "./"), strings.HasPrefix(specifier, "../"):
		return filepath.ToSlash(filepath.Join(root, specifier))
	default:
		return specifier
	}
}
