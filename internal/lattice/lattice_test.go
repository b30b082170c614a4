package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"secrecy/internal/ast"
)

func TestDefaultLattice(t *testing.T) {
	l := Default()

	assert.True(t, l.IsValid(DefaultLow))
	assert.True(t, l.IsValid(DefaultHigh))
	assert.False(t, l.IsValid("Medium"))

	assert.True(t, l.Leq(DefaultLow, DefaultHigh))
	assert.True(t, l.Leq(DefaultLow, DefaultLow))
	assert.False(t, l.Leq(DefaultHigh, DefaultLow))

	assert.Equal(t, DefaultLow, l.Min())
	assert.Equal(t, DefaultHigh, l.Join(DefaultLow, DefaultHigh))
	assert.Equal(t, DefaultLow, l.Join(DefaultLow))
}

func TestEvalStackEmptyIsBottom(t *testing.T) {
	l := Default()
	assert.Equal(t, DefaultLow, l.EvalStack(nil))
}

func TestEvalStackJoinsFrames(t *testing.T) {
	l := Default()
	assert.Equal(t, DefaultHigh, l.EvalStack([]Label{DefaultLow, DefaultHigh, DefaultLow}))
}

func TestFromDeclDiamond(t *testing.T) {
	// Bot <= A, Bot <= B, A <= Top, B <= Top: a diamond lattice.
	decl := &ast.LatticeDecl{
		Labels: []ast.Ident{{Value: "Bot"}, {Value: "A"}, {Value: "B"}, {Value: "Top"}},
		Edges: []*ast.LatticeEdge{
			{Lower: ast.Ident{Value: "Bot"}, Upper: ast.Ident{Value: "A"}},
			{Lower: ast.Ident{Value: "Bot"}, Upper: ast.Ident{Value: "B"}},
			{Lower: ast.Ident{Value: "A"}, Upper: ast.Ident{Value: "Top"}},
			{Lower: ast.Ident{Value: "B"}, Upper: ast.Ident{Value: "Top"}},
		},
	}

	l, err := FromDecl(decl)
	assert.NoError(t, err)
	assert.Equal(t, Label("Bot"), l.Min())
	assert.True(t, l.Leq("Bot", "Top"))
	assert.Equal(t, Label("Top"), l.Join("A", "B"))
}

func TestFromDeclRejectsIncomparablePair(t *testing.T) {
	// Two disjoint two-element chains: A <= B and X <= Y, with no edge
	// relating the two chains, so join(B, Y) has no least upper bound.
	decl := &ast.LatticeDecl{
		Labels: []ast.Ident{{Value: "A"}, {Value: "B"}, {Value: "X"}, {Value: "Y"}},
		Edges: []*ast.LatticeEdge{
			{Lower: ast.Ident{Value: "A"}, Upper: ast.Ident{Value: "B"}},
			{Lower: ast.Ident{Value: "X"}, Upper: ast.Ident{Value: "Y"}},
		},
	}

	_, err := FromDecl(decl)
	assert.Error(t, err)
	var malformed *MalformedLatticeError
	assert.ErrorAs(t, err, &malformed)
}

func TestJoinWithInvalidLabelFallsBackToMin(t *testing.T) {
	l := Default()
	assert.Equal(t, DefaultHigh, l.Join("NotALabel", DefaultHigh))
}

func TestLabelsSortedForSuggestions(t *testing.T) {
	l := Default()
	assert.Equal(t, []Label{DefaultHigh, DefaultLow}, l.Labels())
}
