package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/signal-lang/sigc/internal/compiler/errors"
)

func TestFormatDiagnostic(t *testing.T) {
	tests := []struct {
		name string
		diag *errors.Diagnostic
		want string
	}{
		{
			name: "parser",
			diag: errors.NewExpectedToken(errors.Location{Line: 1, Column: 14}, "';'", "BEGIN"),
			want: "Parser: Error (line: 1, column: 14): ';' expected but 'BEGIN' found",
		},
		{
			name: "end of input",
			diag: errors.NewUnexpectedEOF("'.'"),
			want: "Parser: Error: '.' expected but EOF found",
		},
		{
			name: "lexer",
			diag: errors.NewIllegalCharacter(errors.Location{Line: 2, Column: 3}, "#"),
			want: "Lexer: Error (line: 2, column: 3): Illegal character '#' detected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDiagnostic(tt.diag, true))
		})
	}
}

func TestWriteDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	WriteDiagnostics(&buf, []*errors.Diagnostic{
		errors.NewUnclosedComment(errors.Location{Line: 3, Column: 1}),
	}, true)

	assert.Equal(t,
		"Lexer: Error (line: 3, column: 1): Unclosed comment\n1 error(s), 0 warning(s)\n",
		buf.String())
}
