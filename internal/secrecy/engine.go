package secrecy

import (
	"secrecy/internal/ast"
	"secrecy/internal/errors"
	"secrecy/internal/lattice"
)

// Run is the engine's top-level entry point (spec.md §6): it builds the
// lattice, runs the Extraction Pass, then the Checking Pass over every
// method of every class, and returns the accumulated diagnostics.
//
// Activation: a Model with no lattice declaration still gets the default
// {Low ⊑ High} lattice (spec.md §6 "Inputs", §3 "Lifecycle" — constructed
// once per compilation "from parsed lattice declarations (or defaulted)").
// The engine disables itself only when there is no *valid* lattice to
// check against: a malformed declared lattice is a configuration error
// that suppresses the pass (spec.md §7), which is how this implementation
// reads §6's "no lattice is present in the Model" activation clause —
// "present" as in "available to check against", not "syntactically
// declared". See DESIGN.md for the full resolution of this tension.
func Run(model *ast.Model) []errors.CompilerError {
	lat, ok := buildLattice(model)
	if !ok {
		return nil
	}

	sink := &diagSink{}
	decls := Extract(model, lat, sink)

	ctx := NewCheckingContext(lat, decls, sink)
	for _, unit := range model.Units {
		for _, mod := range unit.Modules {
			for _, cls := range mod.Classes {
				classInfo := decls.Classes[cls.Name.Value]
				if classInfo == nil {
					continue
				}
				for _, item := range cls.Items {
					method, isMethod := item.(*ast.MethodDecl)
					if !isMethod {
						continue
					}
					CheckMethod(ctx, classInfo, method)
				}
			}
		}
	}

	return ctx.Diagnostics()
}

// buildLattice constructs the lattice to check against, or reports that
// the pass is disabled. A declared lattice that fails to parse into a
// valid partial order is a configuration error (spec.md §7) and disables
// the pass rather than panicking or defaulting silently.
func buildLattice(model *ast.Model) (*lattice.Lattice, bool) {
	if model.Lattice == nil {
		return lattice.Default(), true
	}

	lat, err := lattice.FromDecl(model.Lattice)
	if err != nil {
		return nil, false
	}
	return lat, true
}
