package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"secrecy/internal/ast"
)

func TestErrorReporter(t *testing.T) {
	source := `module Bank {
  class Account {
    void set(Int secret) {
      this.pub := secret;
    }
  }
}`

	reporter := NewErrorReporter("test.sec", source)

	err := LeakageFromTo("High", "Low", ast.Position{Line: 4, Column: 7})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorLeakageFromTo+"]")
	assert.Contains(t, formatted, "High")
	assert.Contains(t, formatted, "Low")
	assert.Contains(t, formatted, "test.sec:4:7")
}

func TestWrongAnnotationValueError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := WrongAnnotationValue("Hgh", []string{"High", "Low"}, pos)
	assert.Equal(t, ErrorWrongAnnotationValue, err.Code)
	assert.Contains(t, err.Message, "Hgh")
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "did you mean 'High'")

	err = WrongAnnotationValue("Medium", []string{"High", "Low"}, pos)
	assert.Empty(t, err.Suggestions)
}

func TestLeakageFromToError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := LeakageFromTo("High", "Low", pos)
	assert.Equal(t, ErrorLeakageFromTo, err.Code)
	assert.Contains(t, err.Message, "High")
	assert.Contains(t, err.Message, "Low")
	assert.Len(t, err.Notes, 1)
}

func TestLeakageAtMostError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := LeakageAtMost("Low", "High", pos)
	assert.Equal(t, ErrorLeakageAtMost, err.Code)
	assert.Contains(t, err.Message, "Low")
	assert.Contains(t, err.Message, "High")
}

func TestParameterTooHighError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := ParameterTooHigh("High", "Low", pos)
	assert.Equal(t, ErrorParameterTooHigh, err.Code)
	assert.Contains(t, err.Message, "High")
	assert.Contains(t, err.Message, "Low")
}

func TestMalformedLatticeError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	err := MalformedLattice("A", "B", pos)
	assert.Equal(t, ErrorMalformedLattice, err.Code)
	assert.Contains(t, err.Message, "A")
	assert.Contains(t, err.Message, "B")
}

func TestUnexpectedTokenError(t *testing.T) {
	pos := ast.Position{Line: 2, Column: 3}

	err := UnexpectedToken("}", pos)
	assert.Equal(t, ErrorUnexpectedToken, err.Code)
	assert.Contains(t, err.Message, "}")
}

func TestExpectedTokenError(t *testing.T) {
	pos := ast.Position{Line: 2, Column: 3}

	err := ExpectedToken(";", "}", pos)
	assert.Equal(t, ErrorExpectedToken, err.Code)
	assert.Contains(t, err.Message, ";")
	assert.Contains(t, err.Message, "}")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `let variable = value;`
	reporter := NewErrorReporter("test.sec", source)

	marker := reporter.createMarker(5, 8, Error) // "variable" is 8 chars at column 5

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces) // column 5 means 4 spaces before
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets) // 8 character length
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo")) // deletion is 1, not 2
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestErrorLevels(t *testing.T) {
	source := `test`
	reporter := NewErrorReporter("test.sec", source)
	pos := ast.Position{Line: 1, Column: 1}

	errorErr := CompilerError{Level: Error, Message: "test error", Position: pos}
	warningErr := CompilerError{Level: Warning, Message: "test warning", Position: pos}

	errorFormatted := reporter.FormatError(errorErr)
	warningFormatted := reporter.FormatError(warningErr)

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}
