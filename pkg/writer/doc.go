// Package writer persists rendered templates into a build directory. Files
// whose Write flag is unset stay virtual and are exposed through Memory.
package writer
