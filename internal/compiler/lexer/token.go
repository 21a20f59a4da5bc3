package lexer

import (
	"fmt"

	"github.com/signal-lang/sigc/internal/compiler/errors"
)

// Kind is the lexical category of a token. It is informational only; the
// parser classifies tokens through the Table.
type Kind int

const (
	// KindDelimiter is a single-character delimiter such as ';' or '.'.
	KindDelimiter Kind = iota
	// KindKeyword is a reserved word (PROGRAM, BEGIN, ...).
	KindKeyword
	// KindConstant is an unsigned integer literal.
	KindConstant
	// KindIdentifier is a user-defined name.
	KindIdentifier
)

// KindNames maps token kinds to their string representations
var KindNames = map[Kind]string{
	KindDelimiter:  "DELIMITER",
	KindKeyword:    "KEYWORD",
	KindConstant:   "CONSTANT",
	KindIdentifier: "IDENTIFIER",
}

// String returns the string representation of a Kind
func (k Kind) String() string {
	if name, ok := KindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", k)
}

// Token represents a single lexical token in Signal source code.
// Tokens are produced by the lexer and never mutated afterwards.
type Token struct {
	Code   int    // Terminal identity; delimiters use their character ordinal
	Name   string // The raw text of the token
	Line   int    // Line number (1-indexed)
	Column int    // Column number (1-indexed)
	Kind   Kind   // Lexical category
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s %d '%s' at %d:%d", t.Kind, t.Code, t.Name, t.Line, t.Column)
}

// Keyword codes assigned by the default table.
const (
	CodeProgram   = 301
	CodeProcedure = 302
	CodeBegin     = 303
	CodeEnd       = 304
	CodeLabel     = 305
)

// Keywords maps reserved words to their token codes
var Keywords = map[string]int{
	"PROGRAM":   CodeProgram,
	"PROCEDURE": CodeProcedure,
	"BEGIN":     CodeBegin,
	"END":       CodeEnd,
	"LABEL":     CodeLabel,
}

// Delimiters lists the single-character terminals the lexer accepts.
const Delimiters = ".;,():"

// LexError represents an error encountered during lexical analysis
type LexError struct {
	Code    errors.ErrorCode // Diagnostic code
	Message string           // Error message
	Line    int              // Line number where error occurred
	Column  int              // Column number where error occurred
	Lexeme  string           // The problematic text
}

// Error implements the error interface
func (e LexError) Error() string {
	return fmt.Sprintf("Lexical error at %d:%d: %s (near '%s')",
		e.Line, e.Column, e.Message, e.Lexeme)
}
