package secrecy

import (
	"secrecy/internal/ast"
	"secrecy/internal/errors"
	"secrecy/internal/lattice"
)

// CheckMethod runs the Checking Pass (spec.md §4.5) over one method
// body: a fresh PC stack, a scope seeded with the method's parameters,
// and a straight-line walk over its statements.
func CheckMethod(ctx *CheckingContext, class *ClassInfo, method *ast.MethodDecl) {
	info := class.Methods[method.Name.Value]
	methodCtx := ctx.withMethodScope(class, info.ReturnLabel)

	for _, param := range method.Params {
		// The Extraction Pass already reported any invalid parameter
		// annotation; a throwaway sink keeps it from being reported twice.
		label := annotationLabel(param.Annotation, methodCtx.Lattice, &diagSink{})
		methodCtx.Scope.Define(param.Name.Value, label)
		methodCtx.Scope.DefineType(param.Name.Value, typeString(param.Type))
	}

	checkBlock(methodCtx, method.Body)
}

func checkBlock(ctx *CheckingContext, block *ast.Block) {
	for _, stmt := range block.Stmts {
		checkStmt(ctx, stmt)
	}
}

func checkStmt(ctx *CheckingContext, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		checkVarDecl(ctx, s)
	case *ast.AssignStmt:
		checkAssign(ctx, s)
	case *ast.ReturnStmt:
		checkReturn(ctx, s)
	case *ast.IfStmt:
		checkIf(ctx, s)
	case *ast.WhileStmt:
		checkWhile(ctx, s)
	case *ast.AwaitStmt:
		checkAwait(ctx, s)
	case *ast.ExprStmt:
		Eval(ctx, s.Expr)
	}
}

// checkVarDecl implements "Variable declaration with initialiser L x = e"
// (spec.md §4.5): the declared label (⊥ if absent) is stored for x, and a
// LeakageFromTo fires if the initialiser's level isn't ⊑ that label.
func checkVarDecl(ctx *CheckingContext, s *ast.VarDeclStmt) {
	declared := annotationLabel(s.Annotation, ctx.Lattice, ctx.sink)
	valueLevel := Eval(ctx, s.Value)

	if !ctx.Lattice.Leq(valueLevel, declared) {
		ctx.report(errors.LeakageFromTo(string(valueLevel), string(declared), s.Pos))
	}

	ctx.Scope.Define(s.Name.Value, declared)
	ctx.Scope.DefineType(s.Name.Value, typeString(s.Type))
	ast.UpdateAnalysisInfo(s, string(declared), string(ctx.pc()))
}

// checkAssign implements "Assignment x := e" (spec.md §4.5): the target's
// declared label defaults to ⊥ if unknown, so any non-⊥ assignment to an
// undeclared name leaks.
func checkAssign(ctx *CheckingContext, s *ast.AssignStmt) {
	valueLevel := Eval(ctx, s.Value)
	declared := assignTargetLabel(ctx, s.Target)

	if !ctx.Lattice.Leq(valueLevel, declared) {
		ctx.report(errors.LeakageFromTo(string(valueLevel), string(declared), s.Pos))
	}
	ast.UpdateAnalysisInfo(s, string(declared), string(ctx.pc()))
}

// assignTargetLabel resolves the declared label of an assignment's
// target: a bare identifier (local, parameter, or implicit field) or a
// "recv.field" field access. Anything else defaults to ⊥.
func assignTargetLabel(ctx *CheckingContext, target ast.Expr) lattice.Label {
	switch t := target.(type) {
	case *ast.IdentExpr:
		return lookupIdent(ctx, t.Name)
	case *ast.FieldAccessExpr:
		return lookupFieldAccess(ctx, t)
	default:
		return ctx.Lattice.Min()
	}
}

// checkReturn implements "Return e" (spec.md §4.5): the returned value's
// level must be ⊑ the method's declared return label.
func checkReturn(ctx *CheckingContext, s *ast.ReturnStmt) {
	if s.Value == nil {
		return
	}
	level := Eval(ctx, s.Value)
	if !ctx.Lattice.Leq(level, ctx.ReturnLabel) {
		ctx.report(errors.LeakageFromTo(string(level), string(ctx.ReturnLabel), s.Pos))
	}
	ast.UpdateAnalysisInfo(s, string(level), string(ctx.pc()))
}

// checkIf implements "If g then S1 else S2" (spec.md §4.5): a conditional
// frame is pushed at level(g) ⊔ pc for each branch in turn, and popped on
// leaving it.
func checkIf(ctx *CheckingContext, s *ast.IfStmt) {
	guardLevel := Eval(ctx, s.Cond)

	ctx.PC.Push("if", guardLevel)
	checkBlock(ctx, s.Then)
	ctx.PC.Pop()

	if s.Else != nil {
		ctx.PC.Push("if", guardLevel)
		checkBlock(ctx, s.Else)
		ctx.PC.Pop()
	}
}

// checkWhile implements "While g do S" (spec.md §4.5): pushed once (no
// fixed-point iteration) at level(g) ⊔ pc, popped on exit.
func checkWhile(ctx *CheckingContext, s *ast.WhileStmt) {
	guardLevel := Eval(ctx, s.Cond)

	ctx.PC.Push("while", guardLevel)
	checkBlock(ctx, s.Body)
	ctx.PC.Pop()
}

// checkAwait implements "Await f?" (spec.md §4.5): pushes a persistent
// frame keyed on f's name, released by the matching "get f" (spec.md
// §4.3). The level is whatever f's symbol table entry carries — the
// label f was declared with (⊥ if it has no declaration); assignments
// to f do not change it.
func checkAwait(ctx *CheckingContext, s *ast.AwaitStmt) {
	level := lookupIdent(ctx, s.Future.Value)
	ctx.PC.Push(s.Future.Value, level)
}
