package parser

import "secrecy/internal/ast"

// ParseResult is the full parsing result including metadata, used by the
// CLI to resolve --at position queries and render --debug output without
// re-parsing.
type ParseResult struct {
	Model           *ast.Model
	ParseErrors     []ParseError
	ScanErrors      []ScanError
	MetadataVisitor *ast.MetadataVisitor
}

// ParseSourceWithMetadata parses source code and returns the enhanced
// result carrying the metadata visitor alongside the parsed Model.
func ParseSourceWithMetadata(path string, source string) *ParseResult {
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

	return &ParseResult{
		Model:           model,
		ParseErrors:     parser.errors,
		ScanErrors:      scanner.errors,
		MetadataVisitor: mv,
	}
}

// FindNodeByPosition finds the metadata of the node at a source position,
// used to resolve the CLI's --at=LINE:COL queries.
func (pr *ParseResult) FindNodeByPosition(pos ast.Position) *ast.Metadata {
	if pr.MetadataVisitor == nil {
		return nil
	}
	return pr.MetadataVisitor.FindNodeByPosition(pos)
}

// GetDebugInfo returns a human-readable dump of every tracked node, used
// by the CLI's --debug output.
func (pr *ParseResult) GetDebugInfo() string {
	if pr.MetadataVisitor == nil {
		return "No metadata available"
	}
	return pr.MetadataVisitor.PrintDebugInfo()
}
