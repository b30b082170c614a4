package parser

import "secrecy/internal/ast"

// ParseSource scans and parses a single source file into an ast.Model
// containing exactly one compilation unit, and assigns node metadata
// (source ranges, parent links) across the whole tree.
func ParseSource(path string, source string) (*ast.Model, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	unit, lattice := parser.ParseCompilationUnit()

	model := &ast.Model{
		Pos:     unit.Pos,
		EndPos:  unit.EndPos,
		Units:   []*ast.CompilationUnit{unit},
		Lattice: lattice,
	}

	mv := ast.NewMetadataVisitor(source)
	mv.AssignMetadata(unit, 0)
	if lattice != nil {
		mv.AssignMetadata(lattice, 0)
	}

	return model, parser.errors, scanner.errors
}
