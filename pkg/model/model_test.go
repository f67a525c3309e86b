package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nuxtgen/pkg/model"
)

func TestPluginPartition(t *testing.T) {
	cases := []struct {
		mode           model.PluginMode
		client, server bool
	}{
		{model.ModeUniversal, true, true},
		{model.ModeAll, true, true},
		{model.ModeClient, true, false},
		{model.ModeServer, false, true},
	}
	for _, tc := range cases {
		p := model.Plugin{Src: "x.ts", Mode: tc.mode}
		if p.OnClient() != tc.client || p.OnServer() != tc.server {
			t.Errorf("mode %q: client=%v server=%v", tc.mode, p.OnClient(), p.OnServer())
		}
	}
}

func TestValidate(t *testing.T) {
	valid := model.TemplateContext{App: model.App{
		Plugins:    []model.Plugin{{Src: "a.ts", Mode: model.ModeClient}},
		Layouts:    map[string]model.Layout{"default": {File: "default.vue"}},
		Middleware: []model.Middleware{{Name: "auth", Path: "auth.ts"}},
	}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	badMode := valid
	badMode.App.Plugins = []model.Plugin{{Src: "a.ts", Mode: "edge"}}
	if err := badMode.Validate(); err == nil {
		t.Fatalf("expected unknown mode error")
	}

	missing := valid
	missing.App.Plugins = []model.Plugin{{Mode: model.ModeClient}}
	err := missing.Validate()
	var fieldErr *model.MissingFieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "app.plugins[0].src" {
		t.Fatalf("expected missing src error, got %v", err)
	}

	dup := valid
	dup.App.Middleware = []model.Middleware{{Name: "a", Path: "a.ts"}, {Name: "a", Path: "b.ts"}}
	if err := dup.Validate(); err == nil {
		t.Fatalf("expected duplicate middleware error")
	}
}

func TestValidate_RejectsDuplicateSources(t *testing.T) {
	cases := map[string]model.App{
		"plugin": {Plugins: []model.Plugin{{Src: "/p/a.ts"}, {Src: "/p/a.ts", Mode: model.ModeClient}}},
		"app config": {Configs: []string{"/p/app.config.ts", "/p/app.config.ts"}},
		"global middleware": {Middleware: []model.Middleware{
			{Name: "a", Path: "/p/log.global.ts", Global: true},
			{Name: "b", Path: "/p/log.global.ts", Global: true},
		}},
	}
	for name, app := range cases {
		t.Run(name, func(t *testing.T) {
			if err := (model.TemplateContext{App: app}).Validate(); err == nil {
				t.Fatalf("expected duplicate %s error", name)
			}
		})
	}

	distinct := model.TemplateContext{App: model.App{Plugins: []model.Plugin{
		{Src: "plugins/a.ts"},
		{Src: "/p/plugins/a.ts"},
	}}}
	if err := distinct.Validate(); err != nil {
		t.Fatalf("distinct sources should validate: %v", err)
	}
}

func TestRequire(t *testing.T) {
	if _, err := model.Require("app.mainComponent", ""); !errors.Is(err, model.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	got, err := model.Require("app.mainComponent", "app.vue")
	if err != nil || got != "app.vue" {
		t.Fatalf("require = %q, %v", got, err)
	}
}

func TestSortedLayoutsFillsNames(t *testing.T) {
	app := model.App{Layouts: map[string]model.Layout{
		"b": {File: "b.vue"},
		"a": {Name: "a", File: "a.vue"},
	}}
	want := []model.Layout{{Name: "a", File: "a.vue"}, {Name: "b", File: "b.vue"}}
	if diff := cmp.Diff(want, app.SortedLayouts()); diff != "" {
		t.Fatalf("layouts mismatch (-want +got):\n%s", diff)
	}
}

func TestRuntimeConfigSplit(t *testing.T) {
	opts := model.Options{RuntimeConfig: map[string]any{
		"secret": "s",
		"public": map[string]any{"base": "/"},
	}}
	if diff := cmp.Diff(map[string]any{"secret": "s"}, opts.PrivateRuntimeConfig()); diff != "" {
		t.Fatalf("private mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"base": "/"}, opts.PublicRuntimeConfig()); diff != "" {
		t.Fatalf("public mismatch:\n%s", diff)
	}
	if got := (model.Options{}).PublicRuntimeConfig(); len(got) != 0 {
		t.Fatalf("expected empty public config, got %v", got)
	}
}

func TestAppOptionsJSON(t *testing.T) {
	opts := model.AppOptions{BaseURL: "/", BuildAssetsDir: "/_nuxt/", Extra: map[string]any{"baseURL": "ignored", "rootId": "app"}}
	data, err := json.Marshal(opts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"baseURL":"/","buildAssetsDir":"/_nuxt/","cdnURL":"","rootId":"app"}`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}

func TestModuleImportName(t *testing.T) {
	if got := (model.Module{Meta: model.ModuleMeta{Name: "m"}}).ImportName(); got != "m" {
		t.Fatalf("fallback import name = %q", got)
	}
	if got := (model.Module{Meta: model.ModuleMeta{Name: "m"}, EntryPath: "/abs/m.mjs"}).ImportName(); got != "/abs/m.mjs" {
		t.Fatalf("entry import name = %q", got)
	}
}
