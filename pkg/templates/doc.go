// Package templates holds the built-in templates, one render function per
// generated file. Every renderer is deterministic: the same context always
// produces byte-identical output, which upstream build caches rely on.
//
// Identifiers for imported files come from codegen.PathIdentifier over the
// path relative to the project root, so they stay stable across machines.
package templates
