package ast

import (
	"fmt"
	"strings"
)

func (i *Ident) String() string { return i.Value }

func (bd *BadDecl) String() string { return fmt.Sprintf("BadDecl: %s", bd.Bad.Message) }
func (be *BadExpr) String() string { return fmt.Sprintf("BadExpr: %s", be.Bad.Message) }

func (dc *DocComment) String() string { return dc.Text }
func (c *Comment) String() string     { return c.Text }

func (m *Model) String() string {
	var b strings.Builder
	if m.Lattice != nil {
		b.WriteString(m.Lattice.String())
		b.WriteString("\n\n")
	}
	for _, u := range m.Units {
		b.WriteString(u.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (cu *CompilationUnit) String() string {
	var b strings.Builder
	for _, mod := range cu.Modules {
		b.WriteString(mod.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Module) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("module %s {\n", m.Name.Value))
	for _, iface := range m.Interfaces {
		b.WriteString("  " + strings.ReplaceAll(iface.String(), "\n", "\n  ") + "\n")
	}
	for _, cls := range m.Classes {
		b.WriteString("  " + strings.ReplaceAll(cls.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (ld *LatticeDecl) String() string {
	var b strings.Builder
	b.WriteString("lattice {\n")
	for _, l := range ld.Labels {
		b.WriteString("  label " + l.Value + ";\n")
	}
	for _, e := range ld.Edges {
		b.WriteString("  " + e.String() + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (le *LatticeEdge) String() string {
	return fmt.Sprintf("%s <= %s;", le.Lower.Value, le.Upper.Value)
}

func (a *Annotation) String() string {
	return fmt.Sprintf("@%s(%s)", a.Name, a.Value.Value)
}

func (id *InterfaceDecl) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("interface %s {\n", id.Name.Value))
	for _, m := range id.Methods {
		b.WriteString("  " + m.String() + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (ms *MethodSig) String() string {
	var b strings.Builder
	if ms.Annotation != nil {
		b.WriteString(ms.Annotation.String())
		b.WriteString(" ")
	}
	if ms.Return != nil {
		b.WriteString(ms.Return.String())
		b.WriteString(" ")
	} else {
		b.WriteString("void ")
	}
	b.WriteString(ms.Name.Value)
	b.WriteString("(")
	for i, p := range ms.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(");")
	return b.String()
}

func (cd *ClassDecl) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("class %s", cd.Name.Value))
	if len(cd.Implements) > 0 {
		b.WriteString(" implements ")
		for i, impl := range cd.Implements {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(impl.Value)
		}
	}
	b.WriteString(" {\n")
	for _, item := range cd.Items {
		b.WriteString("  " + strings.ReplaceAll(item.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (fd *FieldDecl) String() string {
	var b strings.Builder
	if fd.Annotation != nil {
		b.WriteString(fd.Annotation.String())
		b.WriteString(" ")
	}
	if fd.Type != nil {
		b.WriteString(fd.Type.String())
		b.WriteString(" ")
	}
	b.WriteString(fd.Name.Value)
	b.WriteString(";")
	return b.String()
}

func (md *MethodDecl) String() string {
	var b strings.Builder
	if md.Annotation != nil {
		b.WriteString(md.Annotation.String())
		b.WriteString(" ")
	}
	if md.Return != nil {
		b.WriteString(md.Return.String())
		b.WriteString(" ")
	} else {
		b.WriteString("void ")
	}
	b.WriteString(md.Name.Value)
	b.WriteString("(")
	for i, p := range md.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(") ")
	if md.Body != nil {
		b.WriteString(md.Body.String())
	}
	return b.String()
}

func (p *Param) String() string {
	var b strings.Builder
	if p.Annotation != nil {
		b.WriteString(p.Annotation.String())
		b.WriteString(" ")
	}
	if p.Type != nil {
		b.WriteString(p.Type.String())
		b.WriteString(" ")
	}
	b.WriteString(p.Name.Value)
	return b.String()
}

func (t *Type) String() string {
	var b strings.Builder
	b.WriteString(t.Name.Value)
	if len(t.Generics) > 0 {
		b.WriteString("<")
		for i, g := range t.Generics {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(g.String())
		}
		b.WriteString(">")
	}
	return b.String()
}

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Stmts {
		sb.WriteString("  " + strings.ReplaceAll(s.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (es *ExprStmt) String() string { return es.Expr.String() + ";" }

func (rs *ReturnStmt) String() string {
	if rs.Value == nil {
		return "return;"
	}
	return "return " + rs.Value.String() + ";"
}

func (vds *VarDeclStmt) String() string {
	var b strings.Builder
	if vds.Annotation != nil {
		b.WriteString(vds.Annotation.String())
		b.WriteString(" ")
	}
	if vds.Type != nil {
		b.WriteString(vds.Type.String())
		b.WriteString(" ")
	}
	b.WriteString(vds.Name.Value)
	if vds.Value != nil {
		b.WriteString(" = ")
		b.WriteString(vds.Value.String())
	}
	b.WriteString(";")
	return b.String()
}

func (as *AssignStmt) String() string {
	return fmt.Sprintf("%s := %s;", as.Target.String(), as.Value.String())
}

func (is *IfStmt) String() string {
	var b strings.Builder
	b.WriteString("if (")
	b.WriteString(is.Cond.String())
	b.WriteString(") ")
	b.WriteString(is.Then.String())
	if is.Else != nil {
		b.WriteString(" else ")
		b.WriteString(is.Else.String())
	}
	return b.String()
}

func (ws *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", ws.Cond.String(), ws.Body.String())
}

func (aws *AwaitStmt) String() string {
	return fmt.Sprintf("await %s;", aws.Future.Value)
}

func (be *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", be.Left.String(), be.Op, be.Right.String())
}

func (ue *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", ue.Op, ue.Value.String())
}

func (ce *CallExpr) String() string {
	var b strings.Builder
	if ce.Receiver != nil {
		b.WriteString(ce.Receiver.String())
		if ce.Async {
			b.WriteString("!")
		} else {
			b.WriteString(".")
		}
	}
	b.WriteString(ce.Method.Value)
	b.WriteString("(")
	for i, arg := range ce.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(")")
	return b.String()
}

func (ge *GetExpr) String() string { return "get " + ge.Future.Value }

func (fae *FieldAccessExpr) String() string {
	return fmt.Sprintf("%s.%s", fae.Target.String(), fae.Field)
}

func (le *LiteralExpr) String() string { return le.Value }

func (ie *IdentExpr) String() string { return ie.Name }

func (pe *ParenExpr) String() string { return "(" + pe.Value.String() + ")" }
