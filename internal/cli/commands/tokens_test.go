package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	inTempDir(t)

	stdout, _, err := run(t, "PROGRAM x;\nLABEL 7;", "tokens")
	require.NoError(t, err)

	assert.Equal(t, lines(
		"Tokens: <stdin>",
		"───────────────",
		"Line  Column  Code  Kind        Name",
		"────  ──────  ────  ──────────  ───────",
		"   1       1   301  KEYWORD     PROGRAM",
		"   1       9  1001  IDENTIFIER  x",
		"   1      10    59  DELIMITER   ;",
		"   2       1   305  KEYWORD     LABEL",
		"   2       7   501  CONSTANT    7",
		"   2       8    59  DELIMITER   ;",
		"",
		"Tokens:      6",
		"Constants:   1",
		"Identifiers: 1",
	), stdout)
}

func TestTokens_CodeTable(t *testing.T) {
	inTempDir(t)

	stdout, _, err := run(t, "PROGRAM abc; BEGIN END.", "tokens", "--table")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Code table\n")
	assert.Contains(t, stdout, " 301  Keyword     PROGRAM\n")
	assert.Contains(t, stdout, "1001  Identifier  abc\n")
}

func TestTokens_LexicalError(t *testing.T) {
	inTempDir(t)

	stdout, _, err := run(t, "PROGRAM (* open", "tokens")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 lexical error(s)")
	assert.Contains(t, stdout, "Lexer: Error (line: 1, column: 9): Unclosed comment\n")
}
