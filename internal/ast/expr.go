package ast

// Expr is any node that can appear where a value is expected.
type Expr interface {
	Node
	isExpr()
}

func (*BadExpr) isExpr()         {}
func (*BinaryExpr) isExpr()      {}
func (*UnaryExpr) isExpr()       {}
func (*CallExpr) isExpr()        {}
func (*GetExpr) isExpr()         {}
func (*FieldAccessExpr) isExpr() {}
func (*LiteralExpr) isExpr()     {}
func (*IdentExpr) isExpr()       {}
func (*ParenExpr) isExpr()       {}
