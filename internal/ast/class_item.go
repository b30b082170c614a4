package ast

// ClassItem is a member declared directly inside a class body.
type ClassItem interface {
	Node
	isClassItem()
}

func (*FieldDecl) isClassItem()  {}
func (*MethodDecl) isClassItem() {}
func (*Comment) isClassItem()    {}
func (*BadDecl) isClassItem()    {}
