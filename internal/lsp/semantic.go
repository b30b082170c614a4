package lsp

import "secrecy/internal/ast"

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the SemanticTokenTypes array (handler.go)
// TokenModifiers is a bitmask based on SemanticTokenModifiers (handler.go)
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens walks a parsed Model and emits one token per
// identifier-bearing node: module, interface, and class names; field,
// parameter, and method names; annotation tags; and identifier uses
// inside method bodies.
func collectSemanticTokens(model *ast.Model) []SemanticToken {
	var tokens []SemanticToken

	if model == nil {
		return tokens
	}

	for _, unit := range model.Units {
		for _, mod := range unit.Modules {
			tokens = append(tokens, walkModule(mod)...)
		}
	}

	return tokens
}

func walkModule(m *ast.Module) []SemanticToken {
	var tokens []SemanticToken

	tokens = append(tokens, makeToken(m.Name.Pos, m.Name.EndPos, m.Name.Value, "namespace", 1))

	for _, iface := range m.Interfaces {
		tokens = append(tokens, walkInterface(iface)...)
	}
	for _, cls := range m.Classes {
		tokens = append(tokens, walkClass(cls)...)
	}

	return tokens
}

func walkInterface(iface *ast.InterfaceDecl) []SemanticToken {
	tokens := []SemanticToken{makeToken(iface.Name.Pos, iface.Name.EndPos, iface.Name.Value, "type", 1)}

	for _, sig := range iface.Methods {
		tokens = append(tokens, annotationToken(sig.Annotation)...)
		tokens = append(tokens, makeToken(sig.Name.Pos, sig.Name.EndPos, sig.Name.Value, "function", 1))
		tokens = append(tokens, paramTokens(sig.Params)...)
	}

	return tokens
}

func walkClass(cls *ast.ClassDecl) []SemanticToken {
	tokens := []SemanticToken{makeToken(cls.Name.Pos, cls.Name.EndPos, cls.Name.Value, "type", 1)}

	for _, impl := range cls.Implements {
		tokens = append(tokens, makeToken(impl.Pos, impl.EndPos, impl.Value, "type", 0))
	}

	for _, item := range cls.Items {
		switch decl := item.(type) {
		case *ast.FieldDecl:
			tokens = append(tokens, annotationToken(decl.Annotation)...)
			tokens = append(tokens, makeToken(decl.Name.Pos, decl.Name.EndPos, decl.Name.Value, "property", 1))
		case *ast.MethodDecl:
			tokens = append(tokens, annotationToken(decl.Annotation)...)
			tokens = append(tokens, makeToken(decl.Name.Pos, decl.Name.EndPos, decl.Name.Value, "function", 1))
			tokens = append(tokens, paramTokens(decl.Params)...)
			tokens = append(tokens, walkBlock(decl.Body)...)
		}
	}

	return tokens
}

func paramTokens(params []*ast.Param) []SemanticToken {
	var tokens []SemanticToken
	for _, p := range params {
		tokens = append(tokens, annotationToken(p.Annotation)...)
		tokens = append(tokens, makeToken(p.Name.Pos, p.Name.EndPos, p.Name.Value, "parameter", 1))
	}
	return tokens
}

func annotationToken(ann *ast.Annotation) []SemanticToken {
	if ann == nil {
		return nil
	}
	return []SemanticToken{makeToken(ann.Value.Pos, ann.Value.EndPos, ann.Value.Value, "modifier", 0)}
}

func walkBlock(b *ast.Block) []SemanticToken {
	var tokens []SemanticToken
	if b == nil {
		return tokens
	}
	for _, stmt := range b.Stmts {
		tokens = append(tokens, walkStmt(stmt)...)
	}
	return tokens
}

func walkStmt(stmt ast.Stmt) []SemanticToken {
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		tokens := annotationToken(s.Annotation)
		tokens = append(tokens, makeToken(s.Name.Pos, s.Name.EndPos, s.Name.Value, "variable", 1))
		return append(tokens, walkExpr(s.Value)...)
	case *ast.AssignStmt:
		tokens := walkExpr(s.Target)
		return append(tokens, walkExpr(s.Value)...)
	case *ast.ReturnStmt:
		return walkExpr(s.Value)
	case *ast.IfStmt:
		tokens := walkExpr(s.Cond)
		tokens = append(tokens, walkBlock(s.Then)...)
		return append(tokens, walkBlock(s.Else)...)
	case *ast.WhileStmt:
		tokens := walkExpr(s.Cond)
		return append(tokens, walkBlock(s.Body)...)
	case *ast.AwaitStmt:
		return []SemanticToken{makeToken(s.Future.Pos, s.Future.EndPos, s.Future.Value, "variable", 0)}
	case *ast.ExprStmt:
		return walkExpr(s.Expr)
	}
	return nil
}

func walkExpr(expr ast.Expr) []SemanticToken {
	switch e := expr.(type) {
	case nil:
		return nil
	case *ast.BinaryExpr:
		return append(walkExpr(e.Left), walkExpr(e.Right)...)
	case *ast.UnaryExpr:
		return walkExpr(e.Value)
	case *ast.ParenExpr:
		return walkExpr(e.Value)
	case *ast.IdentExpr:
		return []SemanticToken{makeToken(e.Pos, e.EndPos, e.Name, "variable", 0)}
	case *ast.FieldAccessExpr:
		return append(walkExpr(e.Target), makeToken(e.Pos, e.EndPos, e.Field, "property", 0))
	case *ast.CallExpr:
		tokens := walkExpr(e.Receiver)
		tokens = append(tokens, makeToken(e.Method.Pos, e.Method.EndPos, e.Method.Value, "function", 0))
		for _, arg := range e.Args {
			tokens = append(tokens, walkExpr(arg)...)
		}
		return tokens
	case *ast.GetExpr:
		return []SemanticToken{makeToken(e.Future.Pos, e.Future.EndPos, e.Future.Value, "variable", 0)}
	default:
		return nil
	}
}

func makeToken(pos, endPos ast.Position, value, tokenType string, decl int) SemanticToken {
	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}

	return SemanticToken{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: decl << indexOf("declaration", SemanticTokenModifiers),
	}
}

// indexOf returns the index of a string in a list, or -1 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return -1
}
