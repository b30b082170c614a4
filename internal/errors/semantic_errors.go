package errors

import (
	"fmt"

	"secrecy/internal/ast"
)

// SemanticErrorBuilder provides a fluent interface for creating errors with suggestions.
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new error builder.
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewSemanticWarning creates a new warning builder.
func NewSemanticWarning(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span.
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error.
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text.
func (b *SemanticErrorBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error.
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error.
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error.
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

// Secrecy diagnostics (spec §7). One constructor per kind, each anchored at
// the site the spec names and carrying the label(s) involved in the message.

// WrongAnnotationValue reports a Secrecy(L) tag whose L is not a lattice label.
func WrongAnnotationValue(label string, validLabels []string, pos ast.Position) CompilerError {
	builder := NewSemanticError(ErrorWrongAnnotationValue,
		fmt.Sprintf("'%s' is not a declared secrecy label", label), pos).
		WithLength(len(label)).
		WithHelp("declare the label in a lattice block, or use one already declared")

	for _, candidate := range validLabels {
		if levenshteinDistance(label, candidate) <= 2 && len(candidate) > 2 {
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", candidate))
		}
	}

	return builder.Build()
}

// LeakageFromTo reports a value of label `from` flowing into a sink of label `to`.
func LeakageFromTo(from, to string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorLeakageFromTo,
		fmt.Sprintf("value labeled '%s' flows into a sink labeled '%s'", from, to), pos).
		WithNote(fmt.Sprintf("'%s' is not below or equal to '%s' in the lattice", from, to)).
		Build()
}

// LeakageAtMost reports an overriding method whose label exceeds the
// interface's declared label, anchored at the implementation's return-type site.
func LeakageAtMost(declared, actual string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorLeakageAtMost,
		fmt.Sprintf("override raises secrecy from '%s' to '%s'", declared, actual), pos).
		WithNote("an overriding method's label must be no higher than the interface's").
		Build()
}

// ParameterTooHigh reports a call-site argument whose label exceeds the
// declared parameter label.
func ParameterTooHigh(supplied, declared string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorParameterTooHigh,
		fmt.Sprintf("argument labeled '%s' exceeds parameter labeled '%s'", supplied, declared), pos).
		Build()
}

// MalformedLattice reports that no least upper bound exists for some pair of
// declared labels; the checking pass is suppressed entirely when this fires.
func MalformedLattice(a, b string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorMalformedLattice,
		fmt.Sprintf("no least upper bound for '%s' and '%s'", a, b), pos).
		WithHelp("every pair of labels must have a join; add edges to the lattice declaration").
		Build()
}

// Parser errors. internal/parser's consume/errorAtCurrent/unexpectedToken
// build these for every recoverable syntax error; lexical errors (bad
// characters, unterminated strings) stay in the scanner's own ScanError,
// since none of these constructors name a lexical-level mistake.

// UnexpectedToken reports a token that cannot start or continue the current
// grammar production.
func UnexpectedToken(found string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorUnexpectedToken,
		fmt.Sprintf("unexpected token '%s'", found), pos).
		WithLength(len(found)).
		Build()
}

// ExpectedToken reports a specific token that was required but not found.
func ExpectedToken(expected, found string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorExpectedToken,
		fmt.Sprintf("expected '%s', found '%s'", expected, found), pos).
		Build()
}

// InvalidAnnotationSyntax reports a malformed "@Name(Value)" annotation.
func InvalidAnnotationSyntax(pos ast.Position) CompilerError {
	return NewSemanticError(ErrorInvalidAnnotationSyntax,
		"annotation must be of the form @Name(Value)", pos).
		Build()
}

// InvalidLatticeSyntax reports a malformed lattice declaration block.
func InvalidLatticeSyntax(message string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorInvalidLatticeSyntax, message, pos).
		WithHelp("lattice { label A; label B; A <= B; }").
		Build()
}

// InvalidGetTarget reports a "get" expression applied to something other
// than a bare variable name, which the grammar restricts to avoid the
// brittle toString()-based origin matching a textual fallback would need.
func InvalidGetTarget(pos ast.Position) CompilerError {
	return NewSemanticError(ErrorInvalidGetTarget,
		"get requires a bare variable name naming an awaited future", pos).
		Build()
}

// levenshteinDistance computes edit distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
