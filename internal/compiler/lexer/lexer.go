// Package lexer provides lexical analysis for Signal source code.
// It tokenizes .sig files into a stream of tokens and populates the token
// table the parser uses to classify codes.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/signal-lang/sigc/internal/compiler/errors"
)

// Lexer tokenizes Signal source code.
//
// Thread Safety: Lexer instances are NOT thread-safe. Each goroutine must
// create its own Lexer and Table.
type Lexer struct {
	source  string     // Source code to tokenize
	table   *Table     // Code table populated while scanning
	start   int        // Start position of current token
	current int        // Current position in source
	line    int        // Current line number (1-indexed)
	column  int        // Column of source[current] (1-indexed)
	startLn int        // Line of the current token
	startCl int        // Column of the current token
	tokens  []Token    // Collected tokens
	errors  []LexError // Collected errors
}

// New creates a new Lexer for the given source code. A nil table is
// replaced by NewTable().
func New(source string, table *Table) *Lexer {
	if table == nil {
		table = NewTable()
	}
	return &Lexer{
		source: source,
		table:  table,
		line:   1,
		column: 1,
		tokens: make([]Token, 0),
		errors: make([]LexError, 0),
	}
}

// Table returns the code table populated by the lexer
func (l *Lexer) Table() *Table {
	return l.table
}

// ScanTokens tokenizes the entire source and returns tokens and errors.
// No end-of-file token is appended: the stream ends when the slice does.
func (l *Lexer) ScanTokens() ([]Token, []LexError) {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLn = l.line
		l.startCl = l.column
		l.scanToken()
	}
	return l.tokens, l.errors
}

// Report appends every lexical error to sink as a diagnostic
func Report(lexErrors []LexError, sink *errors.Sink) {
	for _, e := range lexErrors {
		sink.Add(e.Diagnostic())
	}
}

// Diagnostic converts the lexical error into a sink diagnostic
func (e LexError) Diagnostic() *errors.Diagnostic {
	loc := errors.Location{Line: e.Line, Column: e.Column}
	if e.Code == errors.ErrUnclosedComment {
		return errors.NewUnclosedComment(loc)
	}
	return errors.NewIllegalCharacter(loc, e.Lexeme)
}

func (l *Lexer) scanToken() {
	c := l.advance()

	switch {
	case isSpace(c):
		// Ignore whitespace
	case c == '(' && l.peek() == '*':
		l.comment()
	case strings.IndexByte(Delimiters, c) >= 0:
		l.addToken(int(c), KindDelimiter)
	case isDigit(c):
		l.number()
	case isAlpha(c):
		l.identifier()
	default:
		l.skipRune()
		l.addError(errors.ErrIllegalCharacter, "Illegal character")
	}
}

// skipRune consumes the rest of a multi-byte character whose first byte was
// just consumed, so it is reported once with its full text
func (l *Lexer) skipRune() {
	_, size := utf8.DecodeRuneInString(l.source[l.start:])
	for i := 1; i < size; i++ {
		l.advance()
	}
}

// comment skips a (* ... *) comment. The opening '(' is already consumed.
func (l *Lexer) comment() {
	l.advance() // '*'
	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == ')' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
	l.addError(errors.ErrUnclosedComment, "Unclosed comment")
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}
	name := l.source[l.start:l.current]
	l.addToken(l.table.Intern(name, RangeConstant), KindConstant)
}

func (l *Lexer) identifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	name := l.source[l.start:l.current]

	if code, ok := l.table.Code(name, RangeKeyword); ok {
		l.addToken(code, KindKeyword)
		return
	}
	l.addToken(l.table.Intern(name, RangeIdentifier), KindIdentifier)
}

// isAtEnd returns true if all source has been consumed
func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// advance consumes and returns the current byte. Columns count characters:
// UTF-8 continuation bytes do not move the column.
func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	switch {
	case c == '\n':
		l.line++
		l.column = 1
	case !utf8.RuneStart(c):
	default:
		l.column++
	}
	return c
}

// peek returns the current character without consuming
func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

// peekNext returns the next character without consuming
func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (l *Lexer) addToken(code int, kind Kind) {
	l.tokens = append(l.tokens, Token{
		Code:   code,
		Name:   l.source[l.start:l.current],
		Line:   l.startLn,
		Column: l.startCl,
		Kind:   kind,
	})
}

func (l *Lexer) addError(code errors.ErrorCode, message string) {
	end := l.current
	if code == errors.ErrUnclosedComment {
		end = l.start + 2
	}
	l.errors = append(l.errors, LexError{
		Code:    code,
		Message: message,
		Line:    l.startLn,
		Column:  l.startCl,
		Lexeme:  l.source[l.start:end],
	})
}
