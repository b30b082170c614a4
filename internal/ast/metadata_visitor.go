package ast

import "strings"

// MetadataVisitor walks a parsed Model and assigns metadata (NodeID, source
// range, source text, parent link) to every node, so later passes can attach
// AnalysisInfo and the CLI's --at flag can map positions back to nodes.
type MetadataVisitor struct {
	tracker    *NodeTracker
	sourceText string
}

// NewMetadataVisitor creates a new metadata visitor over the given source.
func NewMetadataVisitor(sourceText string) *MetadataVisitor {
	return &MetadataVisitor{
		tracker:    NewNodeTracker(),
		sourceText: sourceText,
	}
}

// AssignMetadata assigns metadata to a node and all its children.
func (mv *MetadataVisitor) AssignMetadata(node Node, parentID NodeID) {
	if node == nil {
		return
	}

	nodeID := mv.tracker.GenerateID()

	start := node.NodePos()
	end := node.NodeEndPos()
	sourceText := mv.extractSourceText(start, end)

	metadata := &Metadata{
		NodeID:     nodeID,
		Source:     CreateSourceRange(start, end),
		SourceText: sourceText,
		ParentID:   parentID,
	}

	node.SetMetadata(metadata)
	mv.tracker.SetMetadata(nodeID, metadata)

	mv.visitChildren(node, nodeID)
}

// extractSourceText extracts the source text between two positions.
func (mv *MetadataVisitor) extractSourceText(start, end Position) string {
	if start.Offset < 0 || end.Offset < 0 || start.Offset > len(mv.sourceText) || end.Offset > len(mv.sourceText) {
		return ""
	}
	if start.Offset >= end.Offset {
		return ""
	}
	return mv.sourceText[start.Offset:end.Offset]
}

// visitChildren recurses into the children of node, assigning metadata to each.
func (mv *MetadataVisitor) visitChildren(node Node, parentID NodeID) {
	switch n := node.(type) {
	case *Model:
		for _, unit := range n.Units {
			mv.AssignMetadata(unit, parentID)
		}
		if n.Lattice != nil {
			mv.AssignMetadata(n.Lattice, parentID)
		}

	case *CompilationUnit:
		for _, mod := range n.Modules {
			mv.AssignMetadata(mod, parentID)
		}

	case *Module:
		mv.AssignMetadata(&n.Name, parentID)
		for _, iface := range n.Interfaces {
			mv.AssignMetadata(iface, parentID)
		}
		for _, cls := range n.Classes {
			mv.AssignMetadata(cls, parentID)
		}

	case *LatticeDecl:
		for _, l := range n.Labels {
			mv.AssignMetadata(&l, parentID)
		}
		for _, e := range n.Edges {
			mv.AssignMetadata(e, parentID)
		}

	case *LatticeEdge:
		mv.AssignMetadata(&n.Lower, parentID)
		mv.AssignMetadata(&n.Upper, parentID)

	case *Annotation:
		mv.AssignMetadata(&n.Value, parentID)

	case *InterfaceDecl:
		mv.AssignMetadata(&n.Name, parentID)
		for _, m := range n.Methods {
			mv.AssignMetadata(m, parentID)
		}

	case *MethodSig:
		if n.Annotation != nil {
			mv.AssignMetadata(n.Annotation, parentID)
		}
		if n.Return != nil {
			mv.AssignMetadata(n.Return, parentID)
		}
		mv.AssignMetadata(&n.Name, parentID)
		for _, p := range n.Params {
			mv.AssignMetadata(p, parentID)
		}

	case *ClassDecl:
		mv.AssignMetadata(&n.Name, parentID)
		for _, impl := range n.Implements {
			mv.AssignMetadata(&impl, parentID)
		}
		for _, item := range n.Items {
			mv.AssignMetadata(item, parentID)
		}

	case *FieldDecl:
		if n.Annotation != nil {
			mv.AssignMetadata(n.Annotation, parentID)
		}
		if n.Type != nil {
			mv.AssignMetadata(n.Type, parentID)
		}
		mv.AssignMetadata(&n.Name, parentID)

	case *MethodDecl:
		if n.Annotation != nil {
			mv.AssignMetadata(n.Annotation, parentID)
		}
		if n.Return != nil {
			mv.AssignMetadata(n.Return, parentID)
		}
		mv.AssignMetadata(&n.Name, parentID)
		for _, p := range n.Params {
			mv.AssignMetadata(p, parentID)
		}
		if n.Body != nil {
			mv.AssignMetadata(n.Body, parentID)
		}

	case *Param:
		if n.Annotation != nil {
			mv.AssignMetadata(n.Annotation, parentID)
		}
		if n.Type != nil {
			mv.AssignMetadata(n.Type, parentID)
		}
		mv.AssignMetadata(&n.Name, parentID)

	case *Type:
		mv.AssignMetadata(&n.Name, parentID)
		for _, g := range n.Generics {
			mv.AssignMetadata(g, parentID)
		}

	case *Block:
		for _, s := range n.Stmts {
			mv.AssignMetadata(s, parentID)
		}

	case *ExprStmt:
		if n.Expr != nil {
			mv.AssignMetadata(n.Expr, parentID)
		}

	case *ReturnStmt:
		if n.Value != nil {
			mv.AssignMetadata(n.Value, parentID)
		}

	case *VarDeclStmt:
		if n.Annotation != nil {
			mv.AssignMetadata(n.Annotation, parentID)
		}
		if n.Type != nil {
			mv.AssignMetadata(n.Type, parentID)
		}
		mv.AssignMetadata(&n.Name, parentID)
		if n.Value != nil {
			mv.AssignMetadata(n.Value, parentID)
		}

	case *AssignStmt:
		if n.Target != nil {
			mv.AssignMetadata(n.Target, parentID)
		}
		if n.Value != nil {
			mv.AssignMetadata(n.Value, parentID)
		}

	case *IfStmt:
		if n.Cond != nil {
			mv.AssignMetadata(n.Cond, parentID)
		}
		if n.Then != nil {
			mv.AssignMetadata(n.Then, parentID)
		}
		if n.Else != nil {
			mv.AssignMetadata(n.Else, parentID)
		}

	case *WhileStmt:
		if n.Cond != nil {
			mv.AssignMetadata(n.Cond, parentID)
		}
		if n.Body != nil {
			mv.AssignMetadata(n.Body, parentID)
		}

	case *AwaitStmt:
		mv.AssignMetadata(&n.Future, parentID)

	case *BinaryExpr:
		if n.Left != nil {
			mv.AssignMetadata(n.Left, parentID)
		}
		if n.Right != nil {
			mv.AssignMetadata(n.Right, parentID)
		}

	case *UnaryExpr:
		if n.Value != nil {
			mv.AssignMetadata(n.Value, parentID)
		}

	case *CallExpr:
		if n.Receiver != nil {
			mv.AssignMetadata(n.Receiver, parentID)
		}
		mv.AssignMetadata(&n.Method, parentID)
		for _, arg := range n.Args {
			mv.AssignMetadata(arg, parentID)
		}

	case *GetExpr:
		mv.AssignMetadata(&n.Future, parentID)

	case *FieldAccessExpr:
		if n.Target != nil {
			mv.AssignMetadata(n.Target, parentID)
		}

	case *ParenExpr:
		if n.Value != nil {
			mv.AssignMetadata(n.Value, parentID)
		}
	}
}

// GetTracker returns the node tracker backing this visitor.
func (mv *MetadataVisitor) GetTracker() *NodeTracker {
	return mv.tracker
}

// FindNodeByPosition finds the metadata of the innermost node enclosing a
// position: the one with the smallest source range, ties going to the
// node visited later (the deeper one).
func (mv *MetadataVisitor) FindNodeByPosition(pos Position) *Metadata {
	var best *Metadata
	for _, meta := range mv.tracker.metadata {
		if !meta.Source.Contains(pos) {
			continue
		}
		span := meta.Source.End.Offset - meta.Source.Start.Offset
		if best == nil {
			best = meta
			continue
		}
		bestSpan := best.Source.End.Offset - best.Source.Start.Offset
		if span < bestSpan || (span == bestSpan && meta.NodeID > best.NodeID) {
			best = meta
		}
	}
	return best
}

// PrintDebugInfo renders a human-readable dump of all tracked nodes.
func (mv *MetadataVisitor) PrintDebugInfo() string {
	var sb strings.Builder
	sb.WriteString("=== AST Metadata Debug Info ===\n")

	for nodeID, meta := range mv.tracker.metadata {
		sb.WriteString(meta.String())
		sb.WriteString("\n")

		if meta.SourceText != "" {
			sb.WriteString("   Source: ")
			sb.WriteString(strings.ReplaceAll(meta.SourceText, "\n", "\\n"))
			sb.WriteString("\n")
		}

		if meta.AnalysisInfo != nil {
			sb.WriteString("   Analysis: level=")
			sb.WriteString(meta.AnalysisInfo.Level)
			sb.WriteString(" pc=")
			sb.WriteString(meta.AnalysisInfo.PCAtNode)
			sb.WriteString("\n")
		}
		_ = nodeID
		sb.WriteString("\n")
	}

	return sb.String()
}
