package project

import (
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/goliatone/go-nuxtgen/pkg/model"
)

var (
	pluginType     = reflect.TypeOf(model.Plugin{})
	layoutType     = reflect.TypeOf(model.Layout{})
	middlewareType = reflect.TypeOf(model.Middleware{})
)

// Decode converts a parsed project map into a TemplateContext. Unknown keys
// under options.app land in AppOptions.Extra.
func Decode(raw map[string]any) (model.TemplateContext, error) {
	var tctx model.TemplateContext
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &tctx,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToPlugin,
			stringToLayout,
			stringToMiddleware,
		),
	})
	if err != nil {
		return model.TemplateContext{}, fmt.Errorf("decode: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return model.TemplateContext{}, fmt.Errorf("decode: %w", err)
	}

	for name, layout := range tctx.App.Layouts {
		if layout.Name == "" {
			layout.Name = name
			tctx.App.Layouts[name] = layout
		}
	}
	return tctx, nil
}

func stringToPlugin(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != pluginType {
		return data, nil
	}
	src := data.(string)
	return model.Plugin{Src: src, Mode: modeFromFilename(src)}, nil
}

func stringToLayout(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != layoutType {
		return data, nil
	}
	return model.Layout{File: data.(string)}, nil
}

func stringToMiddleware(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != middlewareType {
		return data, nil
	}
	file := data.(string)
	name, global := middlewareName(file)
	return model.Middleware{Name: name, Path: file, Global: global}, nil
}

// modeFromFilename infers a plugin mode from `.client` or `.server` suffixes.
func modeFromFilename(file string) model.PluginMode {
	base := stripExtension(path.Base(filepathToSlash(file)))
	switch {
	case strings.HasSuffix(base, ".client"):
		return model.ModeClient
	case strings.HasSuffix(base, ".server"):
		return model.ModeServer
	default:
		return model.ModeUniversal
	}
}

// middlewareName derives the middleware name from its file, reporting whether
// the `.global` suffix marks it global.
func middlewareName(file string) (string, bool) {
	base := stripExtension(path.Base(filepathToSlash(file)))
	if name, ok := strings.CutSuffix(base, ".global"); ok {
		return name, true
	}
	return base, false
}

func stripExtension(name string) string {
	if ext := path.Ext(name); ext != "" {
		return strings.TrimSuffix(name, ext)
	}
	return name
}

func filepathToSlash(file string) string {
	return strings.ReplaceAll(file, "\\", "/")
}
