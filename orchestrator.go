package nuxtgen

import (
	"context"

	"github.com/goliatone/go-nuxtgen/pkg/model"
	"github.com/goliatone/go-nuxtgen/pkg/orchestrator"
	"github.com/goliatone/go-nuxtgen/pkg/render"
)

// TemplateContext aliases model.TemplateContext for callers that only import
// the root package.
type TemplateContext = model.TemplateContext

// File aliases render.File, the output of a single template.
type File = render.File

// Subset aliases render.Subset for callers selecting a partial run.
type Subset = render.Subset

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate renders every built-in template against tctx. It is the simplest
// entry point for callers that already hold a populated context.
func Generate(ctx context.Context, tctx TemplateContext, options ...orchestrator.Option) ([]File, error) {
	return orchestrator.New(options...).Generate(ctx, tctx)
}
