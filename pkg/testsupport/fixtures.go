package testsupport

import (
	"context"

	"github.com/goliatone/go-nuxtgen/pkg/model"
)

// Project returns a populated template context rooted at /project. Each call
// returns a fresh value so tests may mutate it.
func Project() model.TemplateContext {
	return model.TemplateContext{
		App: model.App{
			MainComponent:  "/project/app.vue",
			RootComponent:  "/project/node_modules/nuxt/dist/app/components/nuxt-root.vue",
			ErrorComponent: "/project/node_modules/nuxt/dist/app/components/nuxt-error-page.vue",
			Plugins: []model.Plugin{
				{Src: "/project/plugins/router.ts"},
				{Src: "/project/plugins/analytics.client.ts", Mode: model.ModeClient},
				{Src: "/project/plugins/session.server.ts", Mode: model.ModeServer},
			},
			Layouts: map[string]model.Layout{
				"default": {Name: "default", File: "/project/layouts/default.vue"},
				"auth":    {Name: "auth", File: "/project/layouts/auth.vue"},
			},
			Middleware: []model.Middleware{
				{Name: "log", Path: "/project/middleware/log.global.ts", Global: true},
				{Name: "auth", Path: "/project/middleware/auth.ts"},
			},
			Configs: []string{"/project/app.config.ts"},
		},
		Options: model.Options{
			RootDir:    "/project",
			BuildDir:   "/project/.nuxt",
			CSS:        []string{"/project/assets/main.css"},
			Extensions: []string{".js", ".mjs", ".ts", ".vue"},
			App: model.AppOptions{
				BaseURL:        "/",
				BuildAssetsDir: "/_nuxt/",
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
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
