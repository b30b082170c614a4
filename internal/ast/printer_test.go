package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentString(t *testing.T) {
	id := Ident{Value: "balance"}
	assert.Equal(t, "balance", id.String())
}

func TestLiteralExprString(t *testing.T) {
	lit := &LiteralExpr{Value: "42"}
	assert.Equal(t, "42", lit.String())
}

func TestBinaryExprString(t *testing.T) {
	expr := &BinaryExpr{
		Left:  &IdentExpr{Name: "amount"},
		Op:    ">",
		Right: &LiteralExpr{Value: "0"},
	}
	assert.Equal(t, "(amount > 0)", expr.String())
}

func TestUnaryExprString(t *testing.T) {
	expr := &UnaryExpr{Op: "!", Value: &IdentExpr{Name: "ready"}}
	assert.Equal(t, "(!ready)", expr.String())
}

func TestGetExprString(t *testing.T) {
	expr := &GetExpr{Future: Ident{Value: "f"}}
	assert.Equal(t, "get f", expr.String())
}

func TestFieldAccessExprString(t *testing.T) {
	expr := &FieldAccessExpr{Target: &IdentExpr{Name: "this"}, Field: "balance"}
	assert.Equal(t, "this.balance", expr.String())
}

func TestCallExprString(t *testing.T) {
	sync := &CallExpr{
		Receiver: &IdentExpr{Name: "acct"},
		Method:   Ident{Value: "deposit"},
		Args:     []Expr{&LiteralExpr{Value: "10"}},
		Async:    false,
	}
	assert.Equal(t, "acct.deposit(10)", sync.String())

	async := &CallExpr{
		Receiver: &IdentExpr{Name: "acct"},
		Method:   Ident{Value: "deposit"},
		Args:     []Expr{&LiteralExpr{Value: "10"}},
		Async:    true,
	}
	assert.Equal(t, "acct!deposit(10)", async.String())
}

func TestAnnotationString(t *testing.T) {
	ann := &Annotation{Name: "Secrecy", Value: Ident{Value: "High"}}
	assert.Equal(t, "@Secrecy(High)", ann.String())
}

func TestTypeStringWithGenerics(t *testing.T) {
	typ := &Type{
		Name:     Ident{Value: "Fut"},
		Generics: []*Type{{Name: Ident{Value: "Int"}}},
	}
	assert.Equal(t, "Fut<Int>", typ.String())
}

func TestVarDeclStmtString(t *testing.T) {
	stmt := &VarDeclStmt{
		Annotation: &Annotation{Name: "Secrecy", Value: Ident{Value: "Low"}},
		Type:       &Type{Name: Ident{Value: "Int"}},
		Name:       Ident{Value: "x"},
		Value:      &LiteralExpr{Value: "0"},
	}
	assert.Equal(t, "@Secrecy(Low) Int x = 0;", stmt.String())
}

func TestAssignStmtString(t *testing.T) {
	stmt := &AssignStmt{
		Target: &IdentExpr{Name: "x"},
		Value:  &LiteralExpr{Value: "1"},
	}
	assert.Equal(t, "x := 1;", stmt.String())
}

func TestReturnStmtString(t *testing.T) {
	assert.Equal(t, "return;", (&ReturnStmt{}).String())
	assert.Equal(t, "return 1;", (&ReturnStmt{Value: &LiteralExpr{Value: "1"}}).String())
}

func TestAwaitStmtString(t *testing.T) {
	stmt := &AwaitStmt{Future: Ident{Value: "f"}}
	assert.Equal(t, "await f;", stmt.String())
}

func TestIfStmtString(t *testing.T) {
	stmt := &IfStmt{
		Cond: &IdentExpr{Name: "g"},
		Then: &Block{},
	}
	assert.Equal(t, "if (g) {\n}", stmt.String())
}

func TestMethodSigString(t *testing.T) {
	sig := &MethodSig{
		Annotation: &Annotation{Name: "Secrecy", Value: Ident{Value: "Low"}},
		Return:     &Type{Name: Ident{Value: "Int"}},
		Name:       Ident{Value: "get"},
		Params:     []*Param{{Type: &Type{Name: Ident{Value: "Int"}}, Name: Ident{Value: "x"}}},
	}
	assert.Equal(t, "@Secrecy(Low) Int get(Int x);", sig.String())
}

func TestClassDeclStringWithImplements(t *testing.T) {
	cls := &ClassDecl{
		Name:       Ident{Value: "Account"},
		Implements: []Ident{{Value: "Holder"}},
		Items: []ClassItem{
			&FieldDecl{Type: &Type{Name: Ident{Value: "Int"}}, Name: Ident{Value: "balance"}},
		},
	}
	expected := "class Account implements Holder {\n  Int balance;\n}"
	assert.Equal(t, expected, cls.String())
}

func TestLatticeDeclString(t *testing.T) {
	decl := &LatticeDecl{
		Labels: []Ident{{Value: "Low"}, {Value: "High"}},
		Edges:  []*LatticeEdge{{Lower: Ident{Value: "Low"}, Upper: Ident{Value: "High"}}},
	}
	expected := "lattice {\n  label Low;\n  label High;\n  Low <= High;\n}"
	assert.Equal(t, expected, decl.String())
}

func TestModelStringWithoutLattice(t *testing.T) {
	model := &Model{
		Units: []*CompilationUnit{
			{Modules: []*Module{{Name: Ident{Value: "M"}}}},
		},
	}
	expected := "module M {\n}\n\n"
	assert.Equal(t, expected, model.String())
}
