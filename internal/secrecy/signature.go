package secrecy

import "secrecy/internal/ast"

// typeString renders a type use to the string form signature matching
// compares on, e.g. "Int" or "Fut<Int>" (spec.md §4.6).
func typeString(t *ast.Type) string {
	if t == nil {
		return ""
	}
	if len(t.Generics) == 0 {
		return t.Name.Value
	}

	s := t.Name.Value + "<"
	for i, g := range t.Generics {
		if i > 0 {
			s += ", "
		}
		s += typeString(g)
	}
	return s + ">"
}

// signaturesMatch implements spec.md §4.6: two signatures match iff names
// are equal, return-type string-forms are equal, parameter lists have
// equal cardinality, and the multiset of (name, type-string) pairs is
// equal, order-independent. Built as two multisets keyed on (name, type)
// per the §9 design note, rather than the source's quadratic pair-up.
func signaturesMatch(a, b MethodInfo) bool {
	if a.Name != b.Name || a.ReturnType != b.ReturnType || len(a.Params) != len(b.Params) {
		return false
	}

	type key struct{ name, typ string }
	counts := make(map[key]int, len(a.Params))
	for _, p := range a.Params {
		counts[key{p.Name, p.Type}]++
	}
	for _, p := range b.Params {
		counts[key{p.Name, p.Type}]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
