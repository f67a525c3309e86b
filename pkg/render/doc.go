// Package render defines the template contract and the registry the build
// orchestrator iterates. A Template pairs a fixed output filename with a pure
// render function over model.TemplateContext; templates never depend on each
// other's output, so a registry may be rendered in any order.
package render
