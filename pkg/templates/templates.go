package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goliatone/go-nuxtgen/pkg/codegen"
	"github.com/goliatone/go-nuxtgen/pkg/model"
	"github.com/goliatone/go-nuxtgen/pkg/render"
	"github.com/goliatone/go-nuxtgen/pkg/render/template/pongo"
)

// Template names.
const (
	NameVueShim              = "vue-shim"
	NameAppComponent         = "app-component"
	NameRootComponent        = "root-component"
	NameErrorComponent       = "error-component"
	NameCSS                  = "css"
	NamePluginsClient        = "plugins-client"
	NamePluginsServer        = "plugins-server"
	NamePluginsDeclaration   = "plugins-declaration"
	NameSchema               = "schema"
	NameLayouts              = "layouts"
	NameMiddleware           = "middleware"
	NameNitroClient          = "nitro-client"
	NameAppConfigDeclaration = "app-config-declaration"
	NameAppConfig            = "app-config"
	NamePaths                = "paths"
	NameNuxtConfig           = "nuxt-config"
)

// Generator names the tool in generated file headers.
const Generator = "nuxtgen"

//go:embed assets/*.tpl
var embeddedAssets embed.FS

var (
	engineOnce sync.Once
	engine     *pongo.Engine
	engineErr  error
)

// Defaults returns every built-in template in a stable order.
func Defaults() []render.Template {
	return []render.Template{
		VueShim,
		AppComponent,
		RootComponent,
		ErrorComponent,
		CSS,
		PluginsClient,
		PluginsServer,
		PluginsDeclaration,
		Schema,
		Layouts,
		Middleware,
		NitroClient,
		AppConfigDeclaration,
		AppConfig,
		Paths,
		NuxtConfig,
	}
}

// NewRegistry returns a registry pre-populated with Defaults.
func NewRegistry() *render.Registry {
	registry, err := render.NewRegistry(Defaults()...)
	if err != nil {
		// Defaults are fixed and distinct; a failure here is a programming error.
		panic(err)
	}
	return registry
}

// AssetsFS exposes the embedded text templates.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func renderAsset(name string, data map[string]any) (string, error) {
	engineOnce.Do(func() {
		engine, engineErr = pongo.New(
			pongo.WithFS(AssetsFS()),
			pongo.WithGlobalData(map[string]any{"generator": Generator}),
		)
	})
	if engineErr != nil {
		return "", fmt.Errorf("templates: init engine: %w", engineErr)
	}
	out, err := engine.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("templates: render %s: %w", name, err)
	}
	return out, nil
}

// sourceIdentifier names the import binding for src: readable from the
// root-relative path, hashed over src itself.
func sourceIdentifier(ctx model.TemplateContext, src string) string {
	return codegen.FileIdentifier(relativePath(ctx.Options.RootDir, src), src)
}

// relativePath returns target relative to base in slash form, or target
// unchanged when no relative path exists.
func relativePath(base, target string) string {
	if base == "" || !filepath.IsAbs(target) {
		return filepath.ToSlash(target)
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

// stripExtension removes the first matching extension, provided a word
// character precedes it.
func stripExtension(path string, extensions []string) string {
	for _, ext := range extensions {
		if ext == "" || !strings.HasSuffix(path, ext) || len(path) == len(ext) {
			continue
		}
		if isWordByte(path[len(path)-len(ext)-1]) {
			return strings.TrimSuffix(path, ext)
		}
	}
	return path
}

// stripAnyExtension removes a trailing `.ext` made of word characters.
func stripAnyExtension(path string) string {
	dot := strings.LastIndexByte(path, '.')
	if dot <= 0 || dot == len(path)-1 || !isWordByte(path[dot-1]) {
		return path
	}
	for i := dot + 1; i < len(path); i++ {
		if !isWordByte(path[i]) {
			return path
		}
	}
	return path[:dot]
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
