// Package nuxtgen renders the virtual source files a Nuxt-style build
// pipeline consumes: component re-exports, plugin registries, type
// declarations, runtime config shims and layout/middleware tables.
//
// Quick start:
//
//	tctx, err := nuxtgen.LoadProject("nuxtgen.yaml")
//	if err != nil {
//		return err
//	}
//	files, err := nuxtgen.Generate(ctx, tctx)
//
// The pkg/ subpackages expose each layer (model, codegen, schema, render,
// templates, orchestrator, writer, project) for callers that need finer
// control.
package nuxtgen
