package ast

// UpdateAnalysisInfo records the secrecy level the checking pass computed for
// a node, and the PC level in effect at the time, for later inspection (the
// CLI's --debug output renders it via ParseResult.GetDebugInfo). A no-op if
// the node was never assigned metadata (i.e. the source wasn't parsed with
// ParseSourceWithMetadata).
func UpdateAnalysisInfo(node Node, level, pcAtNode string) {
	if node == nil {
		return
	}

	meta := node.GetMetadata()
	if meta == nil {
		return
	}

	meta.AnalysisInfo = &AnalysisMetadata{
		Level:    level,
		PCAtNode: pcAtNode,
	}
}

// CollectAllNodes performs a deep traversal to collect every node reachable
// from root, independent of whether metadata was ever assigned to them; the
// CLI's --debug output uses it to report the total AST node count alongside
// the (possibly smaller) count of metadata-tracked nodes from a
// MetadataVisitor's NodeTracker.
func CollectAllNodes(root Node) []Node {
	var nodes []Node
	collectNodesRecursive(root, &nodes)
	return nodes
}

func collectNodesRecursive(node Node, nodes *[]Node) {
	if node == nil {
		return
	}

	*nodes = append(*nodes, node)

	switch n := node.(type) {
	case *Model:
		for _, unit := range n.Units {
			collectNodesRecursive(unit, nodes)
		}
		if n.Lattice != nil {
			collectNodesRecursive(n.Lattice, nodes)
		}

	case *CompilationUnit:
		for _, mod := range n.Modules {
			collectNodesRecursive(mod, nodes)
		}

	case *Module:
		collectNodesRecursive(&n.Name, nodes)
		for _, iface := range n.Interfaces {
			collectNodesRecursive(iface, nodes)
		}
		for _, cls := range n.Classes {
			collectNodesRecursive(cls, nodes)
		}

	case *LatticeDecl:
		for _, l := range n.Labels {
			collectNodesRecursive(&l, nodes)
		}
		for _, e := range n.Edges {
			collectNodesRecursive(e, nodes)
		}

	case *LatticeEdge:
		collectNodesRecursive(&n.Lower, nodes)
		collectNodesRecursive(&n.Upper, nodes)

	case *Annotation:
		collectNodesRecursive(&n.Value, nodes)

	case *InterfaceDecl:
		collectNodesRecursive(&n.Name, nodes)
		for _, m := range n.Methods {
			collectNodesRecursive(m, nodes)
		}

	case *MethodSig:
		if n.Annotation != nil {
			collectNodesRecursive(n.Annotation, nodes)
		}
		if n.Return != nil {
			collectNodesRecursive(n.Return, nodes)
		}
		collectNodesRecursive(&n.Name, nodes)
		for _, p := range n.Params {
			collectNodesRecursive(p, nodes)
		}

	case *ClassDecl:
		collectNodesRecursive(&n.Name, nodes)
		for _, impl := range n.Implements {
			collectNodesRecursive(&impl, nodes)
		}
		for _, item := range n.Items {
			collectNodesRecursive(item, nodes)
		}

	case *FieldDecl:
		if n.Annotation != nil {
			collectNodesRecursive(n.Annotation, nodes)
		}
		if n.Type != nil {
			collectNodesRecursive(n.Type, nodes)
		}
		collectNodesRecursive(&n.Name, nodes)

	case *MethodDecl:
		if n.Annotation != nil {
			collectNodesRecursive(n.Annotation, nodes)
		}
		if n.Return != nil {
			collectNodesRecursive(n.Return, nodes)
		}
		collectNodesRecursive(&n.Name, nodes)
		for _, p := range n.Params {
			collectNodesRecursive(p, nodes)
		}
		if n.Body != nil {
			collectNodesRecursive(n.Body, nodes)
		}

	case *Param:
		if n.Annotation != nil {
			collectNodesRecursive(n.Annotation, nodes)
		}
		if n.Type != nil {
			collectNodesRecursive(n.Type, nodes)
		}
		collectNodesRecursive(&n.Name, nodes)

	case *Type:
		collectNodesRecursive(&n.Name, nodes)
		for _, g := range n.Generics {
			collectNodesRecursive(g, nodes)
		}

	case *Block:
		for _, s := range n.Stmts {
			collectNodesRecursive(s, nodes)
		}

	case *ExprStmt:
		if n.Expr != nil {
			collectNodesRecursive(n.Expr, nodes)
		}

	case *ReturnStmt:
		if n.Value != nil {
			collectNodesRecursive(n.Value, nodes)
		}

	case *VarDeclStmt:
		if n.Annotation != nil {
			collectNodesRecursive(n.Annotation, nodes)
		}
		if n.Type != nil {
			collectNodesRecursive(n.Type, nodes)
		}
		collectNodesRecursive(&n.Name, nodes)
		if n.Value != nil {
			collectNodesRecursive(n.Value, nodes)
		}

	case *AssignStmt:
		if n.Target != nil {
			collectNodesRecursive(n.Target, nodes)
		}
		if n.Value != nil {
			collectNodesRecursive(n.Value, nodes)
		}

	case *IfStmt:
		if n.Cond != nil {
			collectNodesRecursive(n.Cond, nodes)
		}
		if n.Then != nil {
			collectNodesRecursive(n.Then, nodes)
		}
		if n.Else != nil {
			collectNodesRecursive(n.Else, nodes)
		}

	case *WhileStmt:
		if n.Cond != nil {
			collectNodesRecursive(n.Cond, nodes)
		}
		if n.Body != nil {
			collectNodesRecursive(n.Body, nodes)
		}

	case *AwaitStmt:
		collectNodesRecursive(&n.Future, nodes)

	case *BinaryExpr:
		if n.Left != nil {
			collectNodesRecursive(n.Left, nodes)
		}
		if n.Right != nil {
			collectNodesRecursive(n.Right, nodes)
		}

	case *UnaryExpr:
		if n.Value != nil {
			collectNodesRecursive(n.Value, nodes)
		}

	case *CallExpr:
		if n.Receiver != nil {
			collectNodesRecursive(n.Receiver, nodes)
		}
		collectNodesRecursive(&n.Method, nodes)
		for _, arg := range n.Args {
			collectNodesRecursive(arg, nodes)
		}

	case *GetExpr:
		collectNodesRecursive(&n.Future, nodes)

	case *FieldAccessExpr:
		if n.Target != nil {
			collectNodesRecursive(n.Target, nodes)
		}

	case *ParenExpr:
		if n.Value != nil {
			collectNodesRecursive(n.Value, nodes)
		}
	}
}
