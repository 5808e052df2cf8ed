// Package restraint implements a continuity restraint: a bonded force
// term that penalizes deviation of consecutive inter-particle spacings
// along ordered chains from a per-bond equilibrium length, with a
// harmonic potential k*(r-L)^2.
//
// A Force is the editable source of truth. Compiling it into an
// engine.Context snapshots topology (validated against the system) and
// coefficients into a Kernel. Afterwards, Length and K edits propagate
// to a live context through UpdateParametersInContext without rebuilding
// anything; chains cannot change, and growing the bond table makes the
// update fail with ErrStructuralChange.
//
// Units: lengths in nm, energies in kJ/mol, force constants in
// kJ/mol/nm^2.
package restraint
