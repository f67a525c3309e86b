// Package schema resolves plain configuration objects into OpenAPI schemas
// and projects those schemas into TypeScript interface declarations.
//
// Resolve follows the conventions of runtime config objects: every key is a
// property whose type is inferred from its value, nested maps become nested
// object schemas, and a nested map holding `$default` and/or `$schema` is a
// leaf annotated with a default value, a title, a description or an explicit
// `tsType`.
package schema
