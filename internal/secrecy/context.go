package secrecy

import (
	"secrecy/internal/errors"
	"secrecy/internal/lattice"
)

// diagSink is the shared, append-only diagnostic container every
// CheckingContext derived for a nested scope points at, so diagnostics
// raised deep inside a method body are visible to the top-level caller
// (spec.md §3 "Diagnostic", §7 "all errors are recoverable").
type diagSink struct {
	diagnostics []errors.CompilerError
}

func (s *diagSink) report(err errors.CompilerError) {
	s.diagnostics = append(s.diagnostics, err)
}

// CheckingContext bundles the lattice, the declared-label tables, the
// current scope chain, the PC stack, and the diagnostic sink. The
// Checking Pass and its Expression Evaluator are both stateless
// functions over this shared context rather than mutually-referencing
// visitor objects (spec.md §9).
type CheckingContext struct {
	Lattice *lattice.Lattice
	Decls   *Declarations
	Scope   *SymbolTable
	PC      *PCStack
	sink    *diagSink

	// CurrentClass is the class whose method body is being checked, used
	// to resolve bare identifiers that refer to implicit fields.
	CurrentClass *ClassInfo

	// ReturnLabel is the declared secrecy label of the method currently
	// being checked, used by the return-statement rule (spec.md §4.5).
	ReturnLabel lattice.Label
}

// NewCheckingContext creates a context with an empty top-level scope and
// an empty PC stack, sharing sink with the Extraction Pass that already
// ran over the same Model so both passes' diagnostics accumulate
// together.
func NewCheckingContext(lat *lattice.Lattice, decls *Declarations, sink *diagSink) *CheckingContext {
	return &CheckingContext{
		Lattice: lat,
		Decls:   decls,
		Scope:   NewSymbolTable(nil),
		PC:      NewPCStack(),
		sink:    sink,
	}
}

// report appends a diagnostic to the shared, append-only error sink.
func (c *CheckingContext) report(err errors.CompilerError) {
	c.sink.report(err)
}

// Diagnostics returns every diagnostic reported through this context or
// any context derived from it.
func (c *CheckingContext) Diagnostics() []errors.CompilerError {
	return c.sink.diagnostics
}

// pc returns the current PC level: the join of every frame on the stack,
// ⊥ when empty (spec.md §4.1 eval_stack).
func (c *CheckingContext) pc() lattice.Label {
	return c.PC.Current(c.Lattice)
}

// withMethodScope returns a child context for analysing one method body:
// a fresh child scope (so locals don't leak back into the top-level
// scope) and a fresh, empty PC stack (spec.md §3 "Lifecycle" — the PC
// stack is created empty per method analysis). The diagnostic sink is
// shared with the parent.
func (c *CheckingContext) withMethodScope(class *ClassInfo, returnLabel lattice.Label) *CheckingContext {
	return &CheckingContext{
		Lattice:      c.Lattice,
		Decls:        c.Decls,
		Scope:        NewSymbolTable(c.Scope),
		PC:           NewPCStack(),
		sink:         c.sink,
		CurrentClass: class,
		ReturnLabel:  returnLabel,
	}
}
