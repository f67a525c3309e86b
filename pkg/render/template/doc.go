// Package template defines the text template seam used by templates whose
// output is mostly static. The pongo subpackage backs it with pongo2.
package template
