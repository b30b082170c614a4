package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_DECL
	BAD_EXPR

	// Comments
	DOC_COMMENT
	COMMENT

	// High-level constructs
	MODEL
	COMPILATION_UNIT
	MODULE

	// Lattice declaration
	LATTICE_DECL
	LATTICE_EDGE

	// Annotations
	ANNOTATION

	// Declarations
	INTERFACE_DECL
	METHOD_SIG
	CLASS_DECL
	FIELD_DECL
	METHOD_DECL
	PARAM

	// Types
	TYPE
	IDENT

	// Statements
	BLOCK
	EXPR_STMT
	RETURN_STMT
	VAR_DECL_STMT
	ASSIGN_STMT
	IF_STMT
	WHILE_STMT
	AWAIT_STMT

	// Expressions
	BINARY_EXPR
	UNARY_EXPR
	CALL_EXPR
	GET_EXPR
	FIELD_ACCESS_EXPR
	LITERAL_EXPR
	IDENT_EXPR
	PAREN_EXPR
)
