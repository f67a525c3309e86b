// Package orchestrator renders a template registry against one template
// context: decorators adjust the context, the selected templates render
// (optionally in parallel), and transformers post-process the resulting
// files. Output order always follows registry order.
package orchestrator
