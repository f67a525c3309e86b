// Package codegen builds ECMAScript and TypeScript source text from typed
// fragments. A File keeps its import section apart from its body so templates
// never splice raw strings, and the identifier helpers derive collision-free,
// deterministic variable names from file paths.
package codegen
