package errors

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodeUniqueness(t *testing.T) {
	codes := make(map[ErrorCode]bool)
	for _, code := range []ErrorCode{
		ErrIllegalCharacter, ErrExpectedToken, ErrUnexpectedEOF, ErrUnclosedComment,
	} {
		assert.False(t, codes[code], "duplicate error code %s", code)
		codes[code] = true
	}
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name     string
		diag     *Diagnostic
		expected string
	}{
		{
			name:     "expected token",
			diag:     NewExpectedToken(Location{Line: 3, Column: 7}, "';'", "BEGIN"),
			expected: "Error (line: 3, column: 7): ';' expected but 'BEGIN' found",
		},
		{
			name:     "category",
			diag:     NewExpectedToken(Location{Line: 1, Column: 9}, "Identifier", "BEGIN"),
			expected: "Error (line: 1, column: 9): Identifier expected but 'BEGIN' found",
		},
		{
			name:     "end of input",
			diag:     NewUnexpectedEOF("'.'"),
			expected: "Error: '.' expected but EOF found",
		},
		{
			name:     "illegal character",
			diag:     NewIllegalCharacter(Location{Line: 2, Column: 4}, "$"),
			expected: "Error (line: 2, column: 4): Illegal character '$' detected",
		},
		{
			name:     "unclosed comment",
			diag:     NewUnclosedComment(Location{Line: 5, Column: 1}),
			expected: "Error (line: 5, column: 1): Unclosed comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
			assert.Equal(t, tt.expected, tt.diag.Error())
		})
	}
}

func TestDiagnosticPhases(t *testing.T) {
	assert.Equal(t, PhaseLexer, NewIllegalCharacter(Location{Line: 1, Column: 1}, "#").Phase)
	assert.Equal(t, PhaseParser, NewUnexpectedEOF("';'").Phase)
	assert.Equal(t, SeverityError, NewExpectedToken(Location{}, "a", "b").Severity)
}

func TestDiagnosticJSON(t *testing.T) {
	d := NewExpectedToken(Location{Line: 10, Column: 5}, "';'", "END").WithFile("main.sig")

	jsonStr, err := d.ToJSON()
	require.NoError(t, err)

	var parsed Diagnostic
	require.NoError(t, json.Unmarshal([]byte(jsonStr), &parsed))
	assert.Equal(t, ErrExpectedToken, parsed.Code)
	assert.Equal(t, "expected_token", parsed.Type)
	assert.Equal(t, PhaseParser, parsed.Phase)
	assert.Equal(t, Location{Line: 10, Column: 5}, parsed.Location)
	assert.Equal(t, "main.sig", parsed.File)
	assert.Equal(t, "';'", parsed.Expected)
	assert.Equal(t, "END", parsed.Actual)
}

func TestErrorList(t *testing.T) {
	var empty ErrorList
	assert.Equal(t, "no errors", empty.Error())
	assert.False(t, empty.HasErrors())

	list := ErrorList{
		NewIllegalCharacter(Location{Line: 1, Column: 1}, "$"),
		NewUnexpectedEOF("'.'"),
	}
	assert.True(t, list.HasErrors())
	errCount, warnCount := list.ErrorCount()
	assert.Equal(t, 2, errCount)
	assert.Equal(t, 0, warnCount)
	assert.Equal(t,
		"Error (line: 1, column: 1): Illegal character '$' detected\nError: '.' expected but EOF found",
		list.Error())
}

func TestFormatError(t *testing.T) {
	d := NewExpectedToken(Location{Line: 4, Column: 2}, "';'", "END").WithFile("prog.sig")
	formatted := FormatError(d)

	assert.Contains(t, formatted, "Syntax Error in prog.sig")
	assert.Contains(t, formatted, "Line 4, Column 2:")
	assert.Contains(t, formatted, "Expected: ';'")
	assert.Contains(t, formatted, "Actual:   END")

	eof := FormatError(NewUnexpectedEOF("'.'"))
	assert.Contains(t, eof, "<source>")
	assert.Contains(t, eof, "At end of input:")

	lexical := FormatError(NewUnclosedComment(Location{Line: 1, Column: 1}))
	assert.Contains(t, lexical, "Lexical Error")
	assert.Contains(t, lexical, "Close the comment")
}

func TestFormatErrorList(t *testing.T) {
	assert.Equal(t, "no errors", FormatErrorList(nil))

	out := FormatErrorList(ErrorList{
		NewIllegalCharacter(Location{Line: 1, Column: 1}, "$"),
		NewIllegalCharacter(Location{Line: 2, Column: 1}, "%"),
	})
	assert.True(t, strings.HasPrefix(out, "Analysis failed with 2 error(s), 0 warning(s)"))
	assert.Contains(t, out, strings.Repeat("-", 80))
}

func TestFormatCompact(t *testing.T) {
	d := NewExpectedToken(Location{Line: 3, Column: 7}, "';'", "BEGIN").WithFile("a.sig")
	assert.Equal(t, "a.sig:3:7: error: ';' expected but 'BEGIN' found [SYN002]", FormatCompact(d))
}
