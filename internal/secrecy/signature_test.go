package secrecy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"secrecy/internal/ast"
)

func intType() *ast.Type       { return &ast.Type{Name: ast.Ident{Value: "Int"}} }
func futType(inner string) *ast.Type {
	return &ast.Type{Name: ast.Ident{Value: "Fut"}, Generics: []*ast.Type{{Name: ast.Ident{Value: inner}}}}
}

func TestTypeStringRendersGenerics(t *testing.T) {
	assert.Equal(t, "Int", typeString(intType()))
	assert.Equal(t, "Fut<Int>", typeString(futType("Int")))
	assert.Equal(t, "", typeString(nil))
}

func TestSignaturesMatchIgnoresParamOrder(t *testing.T) {
	a := MethodInfo{
		Name: "transfer", ReturnType: "Int",
		Params: []ParamInfo{{Name: "to", Type: "Int"}, {Name: "amount", Type: "Int"}},
	}
	b := MethodInfo{
		Name: "transfer", ReturnType: "Int",
		Params: []ParamInfo{{Name: "amount", Type: "Int"}, {Name: "to", Type: "Int"}},
	}
	assert.True(t, signaturesMatch(a, b))
}

func TestSignaturesMatchRejectsDifferentNames(t *testing.T) {
	a := MethodInfo{Name: "foo", ReturnType: "Int"}
	b := MethodInfo{Name: "bar", ReturnType: "Int"}
	assert.False(t, signaturesMatch(a, b))
}

func TestSignaturesMatchRejectsDifferentReturnType(t *testing.T) {
	a := MethodInfo{Name: "foo", ReturnType: "Int"}
	b := MethodInfo{Name: "foo", ReturnType: "Bool"}
	assert.False(t, signaturesMatch(a, b))
}

func TestSignaturesMatchRejectsDifferentParamCardinality(t *testing.T) {
	a := MethodInfo{Name: "foo", ReturnType: "Int", Params: []ParamInfo{{Name: "a", Type: "Int"}}}
	b := MethodInfo{Name: "foo", ReturnType: "Int"}
	assert.False(t, signaturesMatch(a, b))
}

func TestSignaturesMatchRejectsDifferentParamTypeAtSameName(t *testing.T) {
	a := MethodInfo{Name: "foo", ReturnType: "Int", Params: []ParamInfo{{Name: "a", Type: "Int"}}}
	b := MethodInfo{Name: "foo", ReturnType: "Int", Params: []ParamInfo{{Name: "a", Type: "Bool"}}}
	assert.False(t, signaturesMatch(a, b))
}
