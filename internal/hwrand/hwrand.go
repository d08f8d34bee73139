// Package hwrand reads the CPU's random number instructions where the
// processor provides them. Support is detected at runtime: a binary
// built for a capable architecture may still land on a processor
// without the instructions.
package hwrand

// Available reports whether the running processor exposes a usable
// random number instruction.
func Available() bool { return supported() }

// Fill covers b with instruction output and reports whether every
// word arrived within the retry budget. On false the contents of b
// are unspecified and must not be used.
func Fill(b []byte) bool { return fill(b) }
