package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-nuxtgen/pkg/model"
	"github.com/goliatone/go-nuxtgen/pkg/render"
	"github.com/goliatone/go-nuxtgen/pkg/templates"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a template registry. Defaults to templates.NewRegistry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger log.Interface) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConcurrency bounds how many templates render at once. Values below two
// render sequentially.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) {
		o.concurrency = n
	}
}

// WithSubset restricts rendering to the matching templates.
func WithSubset(subset render.Subset) Option {
	return func(o *Orchestrator) {
		o.subset = subset
	}
}

// WithDecorators registers decorators applied to the context before
// rendering. Decorators share the caller's maps and slices.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithTransformers registers transformers applied to every rendered file.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, transformers...)
	}
}

// Orchestrator renders registries of templates.
type Orchestrator struct {
	registry     *render.Registry
	logger       log.Interface
	concurrency  int
	subset       render.Subset
	decorators   []model.Decorator
	transformers []Transformer
}

// New constructs an Orchestrator. Missing dependencies fall back to the
// built-in registry and a discarding logger.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.registry == nil {
		o.registry = templates.NewRegistry()
	}
	if o.logger == nil {
		o.logger = &log.Logger{Handler: discard.New(), Level: log.FatalLevel}
	}
	return o
}

// Templates returns the templates a Generate call would render.
func (o *Orchestrator) Templates() []render.Template {
	return render.ApplySubset(o.registry.Templates(), o.subset)
}

// Generate renders every selected template against tctx. The first failing
// template aborts the run.
func (o *Orchestrator) Generate(ctx context.Context, tctx model.TemplateContext) ([]render.File, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&tctx); err != nil {
			return nil, fmt.Errorf("orchestrator: decorate context: %w", err)
		}
	}
	if err := tctx.Validate(); err != nil {
		return nil, fmt.Errorf("orchestrator: invalid context: %w", err)
	}

	selected := o.Templates()
	files := make([]render.File, len(selected))

	group, gctx := errgroup.WithContext(ctx)
	if o.concurrency > 1 {
		group.SetLimit(o.concurrency)
	} else {
		group.SetLimit(1)
	}
	for i, tpl := range selected {
		i, tpl := i, tpl
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file, err := o.renderOne(gctx, tpl, tctx)
			if err != nil {
				return err
			}
			files[i] = file
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	o.logger.WithField("files", len(files)).Debug("generation complete")
	return files, nil
}

func (o *Orchestrator) renderOne(ctx context.Context, tpl render.Template, tctx model.TemplateContext) (render.File, error) {
	file, err := tpl.Execute(tctx)
	if err != nil {
		return render.File{}, fmt.Errorf("orchestrator: render %s: %w", tpl.Name, err)
	}
	for _, transformer := range o.transformers {
		if transformer == nil {
			continue
		}
		if err := transformer.Transform(ctx, &file); err != nil {
			return render.File{}, fmt.Errorf("orchestrator: transform %s: %w", tpl.Name, err)
		}
	}
	o.logger.WithFields(log.Fields{
		"template": file.Name,
		"filename": file.Filename,
		"bytes":    len(file.Contents),
	}).Debug("rendered template")
	return file, nil
}
