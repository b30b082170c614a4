package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanTokensKeywordsAndOperators(t *testing.T) {
	source := `module Bank { class Account implements Payable { } }`
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	assert.Empty(t, scanner.errors)

	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}

	assert.Equal(t, []TokenType{
		MODULE, IDENTIFIER, LEFT_BRACE,
		CLASS, IDENTIFIER, IMPLEMENTS, IDENTIFIER, LEFT_BRACE, RIGHT_BRACE,
		RIGHT_BRACE, EOF,
	}, types)
}

func TestScanAssignmentAndAnnotation(t *testing.T) {
	source := `@Secrecy(High) Int x := 1;`
	tokens := NewScanner(source).ScanTokens()

	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}

	assert.Equal(t, []TokenType{
		AT, IDENTIFIER, LEFT_PAREN, IDENTIFIER, RIGHT_PAREN,
		IDENTIFIER, IDENTIFIER, COLON_EQUAL, NUMBER, SEMICOLON, EOF,
	}, types)
}

func TestScanAwaitQuestionMark(t *testing.T) {
	tokens := NewScanner(`await f?;`).ScanTokens()
	assert.Equal(t, AWAIT, tokens[0].Type)
	assert.Equal(t, IDENTIFIER, tokens[1].Type)
	assert.Equal(t, QUESTION, tokens[2].Type)
	assert.Equal(t, SEMICOLON, tokens[3].Type)
}

func TestScanLoneColonIsError(t *testing.T) {
	scanner := NewScanner(`x : Int`)
	scanner.ScanTokens()
	assert.NotEmpty(t, scanner.errors)
}

func TestScanDoubleCharOperators(t *testing.T) {
	tokens := NewScanner(`a && b || c == d != e <= f >= g`).ScanTokens()
	var types []TokenType
	for _, tok := range tokens {
		if tok.Type != IDENTIFIER {
			types = append(types, tok.Type)
		}
	}
	assert.Equal(t, []TokenType{AND, OR, EQUAL_EQUAL, BANG_EQUAL, LESS_EQUAL, GREATER_EQUAL, EOF}, types)
}

func TestScanLineComment(t *testing.T) {
	tokens := NewScanner("// a comment\nmodule").ScanTokens()
	assert.Equal(t, COMMENT, tokens[0].Type)
	assert.Equal(t, MODULE, tokens[1].Type)
}

func TestScanDocComment(t *testing.T) {
	tokens := NewScanner("/// doc\nmodule").ScanTokens()
	assert.Equal(t, DOC_COMMENT, tokens[0].Type)
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	scanner := NewScanner(`"unterminated`)
	scanner.ScanTokens()
	assert.Len(t, scanner.errors, 1)
}

func TestScanNumberWithDecimalPoint(t *testing.T) {
	tokens := NewScanner(`3.14`).ScanTokens()
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, "3.14", tokens[0].Lexeme)
}
