package ast

// Node is implemented by every AST type. Metadata support exists for
// debugging and CLI tooling (see metadata.go); the secrecy engine itself
// reads NodePos/NodeType for diagnostics and writes AnalysisInfo via
// GetMetadata/SetMetadata to record what it concluded about a node.
type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string

	GetMetadata() *Metadata
	SetMetadata(*Metadata)
}

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (bd *BadDecl) NodePos() Position    { return bd.Bad.Pos }
func (bd *BadDecl) NodeEndPos() Position { return bd.Bad.EndPos }
func (*BadDecl) NodeType() NodeType      { return BAD_DECL }

func (be *BadExpr) NodePos() Position    { return be.Bad.Pos }
func (be *BadExpr) NodeEndPos() Position { return be.Bad.EndPos }
func (*BadExpr) NodeType() NodeType      { return BAD_EXPR }

func (dc *DocComment) NodePos() Position    { return dc.Pos }
func (dc *DocComment) NodeEndPos() Position { return dc.EndPos }
func (*DocComment) NodeType() NodeType      { return DOC_COMMENT }

func (c *Comment) NodePos() Position    { return c.Pos }
func (c *Comment) NodeEndPos() Position { return c.EndPos }
func (*Comment) NodeType() NodeType     { return COMMENT }

func (m *Model) NodePos() Position    { return m.Pos }
func (m *Model) NodeEndPos() Position { return m.EndPos }
func (*Model) NodeType() NodeType     { return MODEL }
func (m *Model) GetMetadata() *Metadata { return nil }
func (m *Model) SetMetadata(*Metadata)  {}

func (cu *CompilationUnit) NodePos() Position    { return cu.Pos }
func (cu *CompilationUnit) NodeEndPos() Position { return cu.EndPos }
func (*CompilationUnit) NodeType() NodeType      { return COMPILATION_UNIT }

func (mod *Module) NodePos() Position    { return mod.Pos }
func (mod *Module) NodeEndPos() Position { return mod.EndPos }
func (*Module) NodeType() NodeType       { return MODULE }

func (ld *LatticeDecl) NodePos() Position    { return ld.Pos }
func (ld *LatticeDecl) NodeEndPos() Position { return ld.EndPos }
func (*LatticeDecl) NodeType() NodeType      { return LATTICE_DECL }

func (le *LatticeEdge) NodePos() Position    { return le.Pos }
func (le *LatticeEdge) NodeEndPos() Position { return le.EndPos }
func (*LatticeEdge) NodeType() NodeType      { return LATTICE_EDGE }

func (a *Annotation) NodePos() Position    { return a.Pos }
func (a *Annotation) NodeEndPos() Position { return a.EndPos }
func (*Annotation) NodeType() NodeType     { return ANNOTATION }

func (id *InterfaceDecl) NodePos() Position    { return id.Pos }
func (id *InterfaceDecl) NodeEndPos() Position { return id.EndPos }
func (*InterfaceDecl) NodeType() NodeType      { return INTERFACE_DECL }

func (ms *MethodSig) NodePos() Position    { return ms.Pos }
func (ms *MethodSig) NodeEndPos() Position { return ms.EndPos }
func (*MethodSig) NodeType() NodeType      { return METHOD_SIG }

func (cd *ClassDecl) NodePos() Position    { return cd.Pos }
func (cd *ClassDecl) NodeEndPos() Position { return cd.EndPos }
func (*ClassDecl) NodeType() NodeType      { return CLASS_DECL }

func (fd *FieldDecl) NodePos() Position    { return fd.Pos }
func (fd *FieldDecl) NodeEndPos() Position { return fd.EndPos }
func (*FieldDecl) NodeType() NodeType      { return FIELD_DECL }

func (md *MethodDecl) NodePos() Position    { return md.Pos }
func (md *MethodDecl) NodeEndPos() Position { return md.EndPos }
func (*MethodDecl) NodeType() NodeType      { return METHOD_DECL }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (t *Type) NodePos() Position    { return t.Pos }
func (t *Type) NodeEndPos() Position { return t.EndPos }
func (*Type) NodeType() NodeType     { return TYPE }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (v *VarDeclStmt) NodePos() Position    { return v.Pos }
func (v *VarDeclStmt) NodeEndPos() Position { return v.EndPos }
func (*VarDeclStmt) NodeType() NodeType     { return VAR_DECL_STMT }

func (a *AssignStmt) NodePos() Position    { return a.Pos }
func (a *AssignStmt) NodeEndPos() Position { return a.EndPos }
func (*AssignStmt) NodeType() NodeType     { return ASSIGN_STMT }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (w *WhileStmt) NodePos() Position    { return w.Pos }
func (w *WhileStmt) NodeEndPos() Position { return w.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (a *AwaitStmt) NodePos() Position    { return a.Pos }
func (a *AwaitStmt) NodeEndPos() Position { return a.EndPos }
func (*AwaitStmt) NodeType() NodeType     { return AWAIT_STMT }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (g *GetExpr) NodePos() Position    { return g.Pos }
func (g *GetExpr) NodeEndPos() Position { return g.EndPos }
func (*GetExpr) NodeType() NodeType     { return GET_EXPR }

func (f *FieldAccessExpr) NodePos() Position    { return f.Pos }
func (f *FieldAccessExpr) NodeEndPos() Position { return f.EndPos }
func (*FieldAccessExpr) NodeType() NodeType     { return FIELD_ACCESS_EXPR }

func (l *LiteralExpr) NodePos() Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() Position { return l.EndPos }
func (*LiteralExpr) NodeType() NodeType     { return LITERAL_EXPR }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (p *ParenExpr) NodePos() Position    { return p.Pos }
func (p *ParenExpr) NodeEndPos() Position { return p.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }

// GetMetadata / SetMetadata implementations.

func (i *Ident) GetMetadata() *Metadata  { return i.metadata }
func (i *Ident) SetMetadata(m *Metadata) { i.metadata = m }

func (bd *BadDecl) GetMetadata() *Metadata  { return bd.Bad.metadata }
func (bd *BadDecl) SetMetadata(m *Metadata) { bd.Bad.metadata = m }

func (be *BadExpr) GetMetadata() *Metadata  { return be.Bad.metadata }
func (be *BadExpr) SetMetadata(m *Metadata) { be.Bad.metadata = m }

func (dc *DocComment) GetMetadata() *Metadata  { return dc.metadata }
func (dc *DocComment) SetMetadata(m *Metadata) { dc.metadata = m }

func (c *Comment) GetMetadata() *Metadata  { return c.metadata }
func (c *Comment) SetMetadata(m *Metadata) { c.metadata = m }

func (cu *CompilationUnit) GetMetadata() *Metadata  { return cu.metadata }
func (cu *CompilationUnit) SetMetadata(m *Metadata) { cu.metadata = m }

func (mod *Module) GetMetadata() *Metadata  { return mod.metadata }
func (mod *Module) SetMetadata(m *Metadata) { mod.metadata = m }

func (ld *LatticeDecl) GetMetadata() *Metadata  { return ld.metadata }
func (ld *LatticeDecl) SetMetadata(m *Metadata) { ld.metadata = m }

func (le *LatticeEdge) GetMetadata() *Metadata  { return le.metadata }
func (le *LatticeEdge) SetMetadata(m *Metadata) { le.metadata = m }

func (a *Annotation) GetMetadata() *Metadata  { return a.metadata }
func (a *Annotation) SetMetadata(m *Metadata) { a.metadata = m }

func (id *InterfaceDecl) GetMetadata() *Metadata  { return id.metadata }
func (id *InterfaceDecl) SetMetadata(m *Metadata) { id.metadata = m }

func (ms *MethodSig) GetMetadata() *Metadata  { return ms.metadata }
func (ms *MethodSig) SetMetadata(m *Metadata) { ms.metadata = m }

func (cd *ClassDecl) GetMetadata() *Metadata  { return cd.metadata }
func (cd *ClassDecl) SetMetadata(m *Metadata) { cd.metadata = m }

func (fd *FieldDecl) GetMetadata() *Metadata  { return fd.metadata }
func (fd *FieldDecl) SetMetadata(m *Metadata) { fd.metadata = m }

func (md *MethodDecl) GetMetadata() *Metadata  { return md.metadata }
func (md *MethodDecl) SetMetadata(m *Metadata) { md.metadata = m }

func (p *Param) GetMetadata() *Metadata  { return p.metadata }
func (p *Param) SetMetadata(m *Metadata) { p.metadata = m }

func (t *Type) GetMetadata() *Metadata  { return t.metadata }
func (t *Type) SetMetadata(m *Metadata) { t.metadata = m }

func (b *Block) GetMetadata() *Metadata  { return b.metadata }
func (b *Block) SetMetadata(m *Metadata) { b.metadata = m }

func (e *ExprStmt) GetMetadata() *Metadata  { return e.metadata }
func (e *ExprStmt) SetMetadata(m *Metadata) { e.metadata = m }

func (r *ReturnStmt) GetMetadata() *Metadata  { return r.metadata }
func (r *ReturnStmt) SetMetadata(m *Metadata) { r.metadata = m }

func (v *VarDeclStmt) GetMetadata() *Metadata  { return v.metadata }
func (v *VarDeclStmt) SetMetadata(m *Metadata) { v.metadata = m }

func (a *AssignStmt) GetMetadata() *Metadata  { return a.metadata }
func (a *AssignStmt) SetMetadata(m *Metadata) { a.metadata = m }

func (i *IfStmt) GetMetadata() *Metadata  { return i.metadata }
func (i *IfStmt) SetMetadata(m *Metadata) { i.metadata = m }

func (w *WhileStmt) GetMetadata() *Metadata  { return w.metadata }
func (w *WhileStmt) SetMetadata(m *Metadata) { w.metadata = m }

func (a *AwaitStmt) GetMetadata() *Metadata  { return a.metadata }
func (a *AwaitStmt) SetMetadata(m *Metadata) { a.metadata = m }

func (b *BinaryExpr) GetMetadata() *Metadata  { return b.metadata }
func (b *BinaryExpr) SetMetadata(m *Metadata) { b.metadata = m }

func (u *UnaryExpr) GetMetadata() *Metadata  { return u.metadata }
func (u *UnaryExpr) SetMetadata(m *Metadata) { u.metadata = m }

func (c *CallExpr) GetMetadata() *Metadata  { return c.metadata }
func (c *CallExpr) SetMetadata(m *Metadata) { c.metadata = m }

func (g *GetExpr) GetMetadata() *Metadata  { return g.metadata }
func (g *GetExpr) SetMetadata(m *Metadata) { g.metadata = m }

func (f *FieldAccessExpr) GetMetadata() *Metadata  { return f.metadata }
func (f *FieldAccessExpr) SetMetadata(m *Metadata) { f.metadata = m }

func (l *LiteralExpr) GetMetadata() *Metadata  { return l.metadata }
func (l *LiteralExpr) SetMetadata(m *Metadata) { l.metadata = m }

func (i *IdentExpr) GetMetadata() *Metadata  { return i.metadata }
func (i *IdentExpr) SetMetadata(m *Metadata) { i.metadata = m }

func (p *ParenExpr) GetMetadata() *Metadata  { return p.metadata }
func (p *ParenExpr) SetMetadata(m *Metadata) { p.metadata = m }
