package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-nuxtgen/pkg/model"
)

// Option customises a Loader.
type Option func(*Loader)

// WithFileSystem injects the fs.FS used for SourceKindFS sources.
func WithFileSystem(files fs.FS) Option {
	return func(l *Loader) {
		l.fs = files
	}
}

// WithOverrides appends `key.path=value` overrides applied after parsing.
func WithOverrides(overrides ...string) Option {
	return func(l *Loader) {
		l.overrides = append(l.overrides, overrides...)
	}
}

// WithDecorators appends decorators run after the built-in defaults and path
// resolution.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(l *Loader) {
		l.decorators = append(l.decorators, decorators...)
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger log.Interface) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader reads project files into template contexts.
type Loader struct {
	fs         fs.FS
	overrides  []string
	decorators []model.Decorator
	logger     log.Interface
}

// New constructs a Loader.
func New(options ...Option) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.Log
	}
	return l
}

// Load reads src, applies overrides, decodes the result and fills defaults.
func (l *Loader) Load(ctx context.Context, src Source) (model.TemplateContext, error) {
	if src == nil {
		return model.TemplateContext{}, errors.New("project: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return model.TemplateContext{}, err
	}

	var (
		data    []byte
		baseDir string
		err     error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = os.ReadFile(src.Location())
		if err == nil {
			baseDir, err = filepath.Abs(filepath.Dir(src.Location()))
		}
	case SourceKindFS:
		if l.fs == nil {
			return model.TemplateContext{}, errors.New("project: filesystem is not configured")
		}
		data, err = fs.ReadFile(l.fs, src.Location())
		baseDir = path.Dir(src.Location())
	default:
		err = fmt.Errorf("unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return model.TemplateContext{}, fmt.Errorf("project: read %s: %w", src.Location(), err)
	}

	raw, err := Parse(data)
	if err != nil {
		return model.TemplateContext{}, fmt.Errorf("project: %s: %w", src.Location(), err)
	}
	for _, override := range l.overrides {
		if err := ApplyOverride(raw, override); err != nil {
			return model.TemplateContext{}, err
		}
	}

	tctx, err := Decode(raw)
	if err != nil {
		return model.TemplateContext{}, fmt.Errorf("project: %s: %w", src.Location(), err)
	}

	decorators := append([]model.Decorator{Defaults(baseDir), ResolvePaths()}, l.decorators...)
	for _, decorator := range decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&tctx); err != nil {
			return model.TemplateContext{}, fmt.Errorf("project: %w", err)
		}
	}
	if err := tctx.Validate(); err != nil {
		return model.TemplateContext{}, fmt.Errorf("project: %w", err)
	}

	l.logger.WithFields(log.Fields{
		"source":  src.Location(),
		"rootDir": tctx.Options.RootDir,
		"plugins": len(tctx.App.Plugins),
	}).Debug("loaded project")
	return tctx, nil
}

// Load reads a project file from disk.
func Load(path string, overrides ...string) (model.TemplateContext, error) {
	return New(WithOverrides(overrides...)).Load(context.Background(), SourceFromFile(path))
}

// LoadFS reads a project file from fsys.
func LoadFS(fsys fs.FS, name string, overrides ...string) (model.TemplateContext, error) {
	return New(WithFileSystem(fsys), WithOverrides(overrides...)).Load(context.Background(), SourceFromFS(name))
}

// Parse decodes YAML or JSON project data into a generic map. Empty input
// yields an empty map.
func Parse(data []byte) (map[string]any, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}
