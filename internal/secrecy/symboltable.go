// Package secrecy implements the flow-sensitive, lattice-parameterised
// secrecy (confidentiality) checker: extraction of declared labels,
// propagation of a program-counter stack across control flow and
// asynchronous synchronisation, and checking of assignment, call, and
// override rules against a user-declarable security lattice.
package secrecy

import "secrecy/internal/lattice"

// SymbolTable is the decl ↦ label mapping of spec.md §3: a finite map
// from fields, parameters, and local variables to their declared secrecy
// label. Lookup follows a parent chain of scopes. Class field labels are
// not stored here but in ClassInfo.Fields; evaluator.go's lookupIdent
// lets a local or parameter found here shadow them. Absence from every scope in the chain is interpreted by callers as ⊥
// (spec.md §8 invariant 4).
type SymbolTable struct {
	labels map[string]lattice.Label
	types  map[string]string
	parent *SymbolTable
}

// NewSymbolTable creates a scope chained to parent. parent is nil for the
// outermost scope.
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		labels: make(map[string]lattice.Label),
		types:  make(map[string]string),
		parent: parent,
	}
}

// Define records name ↦ label in the current scope, shadowing any
// mapping for name in an enclosing scope.
func (st *SymbolTable) Define(name string, label lattice.Label) {
	st.labels[name] = label
}

// DefineType records the declared static type string of name, used to
// resolve a call receiver's class or interface for method lookup. The
// secrecy checker does not itself type-check; this is the minimal type
// bookkeeping it needs to find a call's declared parameter and return
// labels (spec.md §4.4).
func (st *SymbolTable) DefineType(name, typ string) {
	st.types[name] = typ
}

// LookupType returns the declared static type string of name, if any.
func (st *SymbolTable) LookupType(name string) (string, bool) {
	if typ, ok := st.types[name]; ok {
		return typ, true
	}
	if st.parent != nil {
		return st.parent.LookupType(name)
	}
	return "", false
}

// Lookup returns the declared label for name and whether it was found in
// this scope or an ancestor.
func (st *SymbolTable) Lookup(name string) (lattice.Label, bool) {
	if label, ok := st.labels[name]; ok {
		return label, true
	}
	if st.parent != nil {
		return st.parent.Lookup(name)
	}
	return "", false
}

// LookupOr returns the declared label for name, or dflt if absent from
// every scope in the chain.
func (st *SymbolTable) LookupOr(name string, dflt lattice.Label) lattice.Label {
	if label, ok := st.Lookup(name); ok {
		return label
	}
	return dflt
}
