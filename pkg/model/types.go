package model

import (
	"encoding/json"
	"fmt"
	"sort"
)

// PluginMode declares where a plugin executes.
type PluginMode string

const (
	// ModeUniversal is the unset mode; the plugin runs on client and server.
	ModeUniversal PluginMode = ""
	ModeClient    PluginMode = "client"
	ModeServer    PluginMode = "server"
	// ModeAll is accepted as an explicit spelling of ModeUniversal.
	ModeAll PluginMode = "all"
)

// Valid reports whether the mode is one of the known values.
func (m PluginMode) Valid() bool {
	switch m {
	case ModeUniversal, ModeAll, ModeClient, ModeServer:
		return true
	default:
		return false
	}
}

// Plugin describes a runtime plugin registered with the application.
type Plugin struct {
	Src  string     `json:"src" mapstructure:"src"`
	Mode PluginMode `json:"mode,omitempty" mapstructure:"mode"`
}

// OnClient reports whether the plugin belongs to the client bundle.
func (p Plugin) OnClient() bool {
	return p.Mode != ModeServer
}

// OnServer reports whether the plugin belongs to the server bundle.
func (p Plugin) OnServer() bool {
	return p.Mode != ModeClient
}

// Layout is a named page layout backed by a component file.
type Layout struct {
	Name string `json:"name" mapstructure:"name"`
	File string `json:"file" mapstructure:"file"`
}

// Middleware is a route middleware. Global middleware run on every
// navigation in declaration order; the rest are looked up by name.
type Middleware struct {
	Name   string `json:"name" mapstructure:"name"`
	Path   string `json:"path" mapstructure:"path"`
	Global bool   `json:"global,omitempty" mapstructure:"global"`
}

// ModuleMeta is the metadata an installed module declares about itself.
type ModuleMeta struct {
	Name      string         `json:"name,omitempty" mapstructure:"name"`
	ConfigKey string         `json:"configKey,omitempty" mapstructure:"configKey"`
	Schema    map[string]any `json:"schema,omitempty" mapstructure:"schema"`
}

// Module is an installed framework module.
type Module struct {
	Meta      ModuleMeta `json:"meta" mapstructure:"meta"`
	EntryPath string     `json:"entryPath,omitempty" mapstructure:"entryPath"`
}

// ImportName returns the specifier used to import the module's definition.
func (m Module) ImportName() string {
	if m.EntryPath != "" {
		return m.EntryPath
	}
	return m.Meta.Name
}

// App is the application model assembled by the framework before templates
// run.
type App struct {
	MainComponent  string            `json:"mainComponent,omitempty" mapstructure:"mainComponent"`
	RootComponent  string            `json:"rootComponent,omitempty" mapstructure:"rootComponent"`
	ErrorComponent string            `json:"errorComponent,omitempty" mapstructure:"errorComponent"`
	Plugins        []Plugin          `json:"plugins,omitempty" mapstructure:"plugins"`
	Layouts        map[string]Layout `json:"layouts,omitempty" mapstructure:"layouts"`
	Middleware     []Middleware      `json:"middleware,omitempty" mapstructure:"middleware"`
	Configs        []string          `json:"configs,omitempty" mapstructure:"configs"`
}

// SortedLayouts returns the layouts ordered by name.
func (a App) SortedLayouts() []Layout {
	names := make([]string, 0, len(a.Layouts))
	for key := range a.Layouts {
		names = append(names, key)
	}
	sort.Strings(names)

	out := make([]Layout, 0, len(names))
	for _, key := range names {
		layout := a.Layouts[key]
		if layout.Name == "" {
			layout.Name = key
		}
		out = append(out, layout)
	}
	return out
}

// AppOptions holds the public path settings shared with the runtime. Extra
// carries any additional keys declared by the project so they round-trip into
// generated files.
type AppOptions struct {
	BaseURL        string         `json:"baseURL" mapstructure:"baseURL"`
	BuildAssetsDir string         `json:"buildAssetsDir" mapstructure:"buildAssetsDir"`
	CDNURL         string         `json:"cdnURL" mapstructure:"cdnURL"`
	Extra          map[string]any `json:"-" mapstructure:",remain"`
}

// Map flattens the options into a single map. Extra keys never override the
// three named settings.
func (o AppOptions) Map() map[string]any {
	out := make(map[string]any, len(o.Extra)+3)
	for key, value := range o.Extra {
		out[key] = value
	}
	out["baseURL"] = o.BaseURL
	out["buildAssetsDir"] = o.BuildAssetsDir
	out["cdnURL"] = o.CDNURL
	return out
}

// MarshalJSON emits the flattened map; encoding/json sorts the keys.
func (o AppOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Map())
}

// Options are the global build options.
type Options struct {
	RootDir       string         `json:"rootDir" mapstructure:"rootDir"`
	BuildDir      string         `json:"buildDir" mapstructure:"buildDir"`
	Dev           bool           `json:"dev" mapstructure:"dev"`
	CSS           []string       `json:"css,omitempty" mapstructure:"css"`
	Extensions    []string       `json:"extensions,omitempty" mapstructure:"extensions"`
	App           AppOptions     `json:"app" mapstructure:"app"`
	RuntimeConfig map[string]any `json:"runtimeConfig,omitempty" mapstructure:"runtimeConfig"`
	AppConfig     map[string]any `json:"appConfig,omitempty" mapstructure:"appConfig"`
	Modules       []Module       `json:"modules,omitempty" mapstructure:"modules"`
	// LegacyGlobals re-enables the globalThis path helpers in paths.mjs for
	// consumers that still read them from the global namespace.
	LegacyGlobals bool `json:"legacyGlobals,omitempty" mapstructure:"legacyGlobals"`
}

// PrivateRuntimeConfig returns the runtime config without its public half.
func (o Options) PrivateRuntimeConfig() map[string]any {
	out := make(map[string]any, len(o.RuntimeConfig))
	for key, value := range o.RuntimeConfig {
		if key == "public" {
			continue
		}
		out[key] = value
	}
	return out
}

// PublicRuntimeConfig returns the public runtime config, or an empty map.
func (o Options) PublicRuntimeConfig() map[string]any {
	if public, ok := o.RuntimeConfig["public"].(map[string]any); ok {
		return public
	}
	return map[string]any{}
}

// TemplateContext is the snapshot handed to every render call. Renderers must
// treat it as read-only.
type TemplateContext struct {
	App     App     `json:"app" mapstructure:"app"`
	Options Options `json:"options" mapstructure:"options"`
}

// Validate checks structural constraints that do not depend on which
// templates are rendered.
func (c TemplateContext) Validate() error {
	plugins := make(map[string]struct{}, len(c.App.Plugins))
	for i, plugin := range c.App.Plugins {
		if plugin.Src == "" {
			return &MissingFieldError{Field: fmt.Sprintf("app.plugins[%d].src", i)}
		}
		if !plugin.Mode.Valid() {
			return fmt.Errorf("model: plugin %q has unknown mode %q", plugin.Src, plugin.Mode)
		}
		if _, dup := plugins[plugin.Src]; dup {
			return fmt.Errorf("model: duplicate plugin %q", plugin.Src)
		}
		plugins[plugin.Src] = struct{}{}
	}
	configs := make(map[string]struct{}, len(c.App.Configs))
	for _, config := range c.App.Configs {
		if _, dup := configs[config]; dup {
			return fmt.Errorf("model: duplicate app config %q", config)
		}
		configs[config] = struct{}{}
	}
	for key, layout := range c.App.Layouts {
		if layout.File == "" {
			return &MissingFieldError{Field: fmt.Sprintf("app.layouts.%s.file", key)}
		}
		if layout.Name != "" && layout.Name != key {
			return fmt.Errorf("model: layout %q registered under key %q", layout.Name, key)
		}
	}
	seen := make(map[string]struct{}, len(c.App.Middleware))
	globals := make(map[string]struct{})
	for i, mw := range c.App.Middleware {
		if mw.Name == "" {
			return &MissingFieldError{Field: fmt.Sprintf("app.middleware[%d].name", i)}
		}
		if mw.Path == "" {
			return &MissingFieldError{Field: fmt.Sprintf("app.middleware[%d].path", i)}
		}
		if _, dup := seen[mw.Name]; dup {
			return fmt.Errorf("model: duplicate middleware %q", mw.Name)
		}
		seen[mw.Name] = struct{}{}
		if mw.Global {
			if _, dup := globals[mw.Path]; dup {
				return fmt.Errorf("model: duplicate global middleware %q", mw.Path)
			}
			globals[mw.Path] = struct{}{}
		}
	}
	return nil
}
