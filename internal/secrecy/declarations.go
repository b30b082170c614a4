package secrecy

import "secrecy/internal/lattice"

// ParamInfo is one method parameter's declared shape: its name, its
// type's string form (for signature matching, spec.md §4.6), and its
// declared secrecy label (spec.md §4.2 step 3).
type ParamInfo struct {
	Name  string
	Type  string
	Label lattice.Label
}

// MethodInfo is the declared shape of one method or interface signature,
// populated by the Extraction Pass (spec.md §4.2).
type MethodInfo struct {
	Name        string
	ReturnType  string
	ReturnLabel lattice.Label
	Params      []ParamInfo
}

// ClassInfo is a class's extracted field and method labels.
type ClassInfo struct {
	Name       string
	Fields     map[string]lattice.Label
	FieldTypes map[string]string
	Methods    map[string]MethodInfo
}

// InterfaceInfo is an interface's extracted method signatures.
type InterfaceInfo struct {
	Name    string
	Methods map[string]MethodInfo
}

// Declarations is the Symbol Table's companion for method and field
// shapes: everything the Checking Pass needs to resolve a call or a
// field use without re-walking declarations (spec.md §3 "Symbol Table").
type Declarations struct {
	Classes    map[string]*ClassInfo
	Interfaces map[string]*InterfaceInfo
}

func newDeclarations() *Declarations {
	return &Declarations{
		Classes:    make(map[string]*ClassInfo),
		Interfaces: make(map[string]*InterfaceInfo),
	}
}
