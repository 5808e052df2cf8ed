// Package engine is the host side of the force-term contract: a System
// of particles and force terms, and a Context that compiles those terms
// into platform kernels and evaluates energy and forces at the current
// positions.
//
// A Context compiles each force exactly once, at construction. Force
// terms that support live parameter edits expose their own update path
// against an existing context; the engine never recompiles.
package engine
