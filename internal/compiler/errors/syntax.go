package errors

import "fmt"

// Lexical and syntax diagnostic codes
const (
	// ErrIllegalCharacter indicates a character outside the Signal alphabet
	ErrIllegalCharacter ErrorCode = "SYN001"
	// ErrExpectedToken indicates a specific terminal was expected but not found
	ErrExpectedToken ErrorCode = "SYN002"
	// ErrUnexpectedEOF indicates the token stream ended while a terminal was expected
	ErrUnexpectedEOF ErrorCode = "SYN010"
	// ErrUnclosedComment indicates a (* comment without its closing *)
	ErrUnclosedComment ErrorCode = "SYN018"
)

// NewIllegalCharacter creates a SYN001 error
func NewIllegalCharacter(loc Location, ch string) *Diagnostic {
	return newError(
		ErrIllegalCharacter,
		"illegal_character",
		PhaseLexer,
		fmt.Sprintf("Illegal character '%s' detected", ch),
		loc,
	).WithActual(ch)
}

// NewUnclosedComment creates a SYN018 error
func NewUnclosedComment(loc Location) *Diagnostic {
	return newError(
		ErrUnclosedComment,
		"unclosed_comment",
		PhaseLexer,
		"Unclosed comment",
		loc,
	).WithSuggestion("Close the comment with *)")
}

// NewExpectedToken creates a SYN002 error. expected is already rendered,
// e.g. "Identifier", "Keyword 'BEGIN'" or "';'".
func NewExpectedToken(loc Location, expected, found string) *Diagnostic {
	return newError(
		ErrExpectedToken,
		"expected_token",
		PhaseParser,
		fmt.Sprintf("%s expected but '%s' found", expected, found),
		loc,
	).WithExpected(expected).WithActual(found)
}

// NewUnexpectedEOF creates a SYN010 error
func NewUnexpectedEOF(expected string) *Diagnostic {
	return newError(
		ErrUnexpectedEOF,
		"unexpected_eof",
		PhaseParser,
		fmt.Sprintf("%s expected but EOF found", expected),
		Location{},
	).WithExpected(expected).WithActual("EOF")
}
