package project_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nuxtgen/pkg/model"
	"github.com/goliatone/go-nuxtgen/pkg/project"
)

const siteYAML = `
app:
  mainComponent: ./app.vue
  rootComponent: "#app/components/nuxt-root.vue"
  errorComponent: "#app/components/nuxt-error-page.vue"
  plugins:
    - ./plugins/router.ts
    - ./plugins/analytics.client.ts
    - src: ~/plugins/session.ts
      mode: server
  layouts:
    default: ./layouts/default.vue
  middleware:
    - ./middleware/log.global.ts
    - name: auth
      path: ./middleware/auth.ts
  configs: [./app.config.ts]
options:
  rootDir: /srv/site
  css: [./assets/main.css, "@fontsource/inter"]
  app:
    cdnURL: https://cdn.example.com
    head:
      title: Site
  runtimeConfig:
    apiSecret: secret
    public:
      apiBase: /api
  appConfig:
    theme: dark
  modules:
    - entryPath: "@nuxtjs/color-mode"
      meta:
        name: "@nuxtjs/color-mode"
        configKey: colorMode
`

func TestLoadFS_DecodesAndResolves(t *testing.T) {
	fsys := fstest.MapFS{"site/nuxtgen.yaml": {Data: []byte(siteYAML)}}

	got, err := project.LoadFS(fsys, "site/nuxtgen.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := model.TemplateContext{
		App: model.App{
			MainComponent:  "/srv/site/app.vue",
			RootComponent:  "#app/components/nuxt-root.vue",
			ErrorComponent: "#app/components/nuxt-error-page.vue",
			Plugins: []model.Plugin{
				{Src: "/srv/site/plugins/router.ts"},
				{Src: "/srv/site/plugins/analytics.client.ts", Mode: model.ModeClient},
				{Src: "/srv/site/plugins/session.ts", Mode: model.ModeServer},
			},
			Layouts: map[string]model.Layout{
				"default": {Name: "default", File: "/srv/site/layouts/default.vue"},
			},
			Middleware: []model.Middleware{
				{Name: "log", Path: "/srv/site/middleware/log.global.ts", Global: true},
				{Name: "auth", Path: "/srv/site/middleware/auth.ts"},
			},
			Configs: []string{"/srv/site/app.config.ts"},
		},
		Options: model.Options{
			RootDir:    "/srv/site",
			BuildDir:   "/srv/site/.nuxt",
			CSS:        []string{"/srv/site/assets/main.css", "@fontsource/inter"},
			Extensions: project.DefaultExtensions,
			App: model.AppOptions{
				BaseURL:        "/",
				BuildAssetsDir: "/_nuxt/",
				CDNURL:         "https://cdn.example.com",
				Extra:          map[string]any{"head": map[string]any{"title": "Site"}},
			},
			RuntimeConfig: map[string]any{
				"apiSecret": "secret",
				"public":    map[string]any{"apiBase": "/api"},
			},
			AppConfig: map[string]any{"theme": "dark"},
			Modules: []model.Module{
				{Meta: model.ModuleMeta{Name: "@nuxtjs/color-mode", ConfigKey: "colorMode"}, EntryPath: "@nuxtjs/color-mode"},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("context mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DefaultsRootToConfigDirectory(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nuxtgen.yaml")
	data := []byte("app:\n  mainComponent: ./app.vue\n")
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := project.Load(configPath, "options.dev=true", "options.app.baseURL=/base/")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Options.RootDir != dir {
		t.Fatalf("rootDir = %q, want %q", got.Options.RootDir, dir)
	}
	if got.Options.BuildDir != filepath.Join(dir, ".nuxt") {
		t.Fatalf("buildDir = %q", got.Options.BuildDir)
	}
	if !got.Options.Dev {
		t.Fatalf("expected dev override to apply")
	}
	if got.Options.App.BaseURL != "/base/" {
		t.Fatalf("baseURL = %q", got.Options.App.BaseURL)
	}
	if got.App.MainComponent != filepath.ToSlash(filepath.Join(dir, "app.vue")) {
		t.Fatalf("mainComponent = %q", got.App.MainComponent)
	}
}

func TestLoad_JSONProject(t *testing.T) {
	fsys := fstest.MapFS{"nuxtgen.json": {Data: []byte(`{"options": {"rootDir": "/app", "buildDir": "out"}}`)}}
	got, err := project.LoadFS(fsys, "nuxtgen.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Options.BuildDir != "/app/out" {
		t.Fatalf("buildDir = %q", got.Options.BuildDir)
	}
}

func TestLoad_RejectsUnknownPluginMode(t *testing.T) {
	fsys := fstest.MapFS{"nuxtgen.yaml": {Data: []byte("app:\n  plugins:\n    - src: a.ts\n      mode: edge\n")}}
	if _, err := project.LoadFS(fsys, "nuxtgen.yaml"); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := project.LoadFS(fstest.MapFS{}, "missing.yaml"); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestApplyOverride(t *testing.T) {
	raw := map[string]any{"options": map[string]any{"dev": false}}

	steps := []string{
		"options.dev=true",
		"options.app.buildAssetsDir=/assets/",
		"options.css=[a.css, b.css]",
		"options.appConfig.count=3",
		"options.rootDir=",
	}
	for _, step := range steps {
		if err := project.ApplyOverride(raw, step); err != nil {
			t.Fatalf("apply %q: %v", step, err)
		}
	}

	want := map[string]any{
		"options": map[string]any{
			"dev":       true,
			"app":       map[string]any{"buildAssetsDir": "/assets/"},
			"css":       []any{"a.css", "b.css"},
			"appConfig": map[string]any{"count": 3},
			"rootDir":   "",
		},
	}
	if diff := cmp.Diff(want, raw); diff != "" {
		t.Fatalf("overrides mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyOverride_Errors(t *testing.T) {
	cases := []string{
		"no-equals",
		"=value",
		"options..dev=true",
		"options.dev.flag=true",
	}
	for _, expr := range cases {
		t.Run(expr, func(t *testing.T) {
			raw := map[string]any{"options": map[string]any{"dev": false}}
			if err := project.ApplyOverride(raw, expr); err == nil {
				t.Fatalf("expected error for %q", expr)
			}
		})
	}
}
