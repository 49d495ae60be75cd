// Package hygro computes the steady-state temperature and vapor-pressure
// profiles through a wall assembly, the dew point of the inside air, and
// where condensation may form.
//
// Boundaries are indexed from the inside face (0) to the outside face
// (len(layers)). Boundary i+1 is the outside face of layer i.
//
// All functions are pure; degenerate inputs (no layers, zero resistance)
// produce neutral results flagged by a Condition instead of an error.
// Only out-of-range psychrometric inputs fail, with a *DomainError.
package hygro
