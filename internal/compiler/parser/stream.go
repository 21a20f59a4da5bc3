package parser

import "github.com/signal-lang/sigc/internal/compiler/lexer"

// TokenStream is a forward cursor over a token slice. The end of the slice is
// the end of input.
type TokenStream struct {
	tokens []lexer.Token
	pos    int
}

// Mark is a saved stream position, restorable with Reset
type Mark struct {
	pos int
}

// NewTokenStream creates a stream positioned at the first token
func NewTokenStream(tokens []lexer.Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Peek returns the current token without consuming it; ok is false at end
func (s *TokenStream) Peek() (lexer.Token, bool) {
	if s.AtEnd() {
		return lexer.Token{}, false
	}
	return s.tokens[s.pos], true
}

// Advance consumes the current token. It is a no-op at end.
func (s *TokenStream) Advance() {
	if !s.AtEnd() {
		s.pos++
	}
}

// AtEnd returns true once every token has been consumed
func (s *TokenStream) AtEnd() bool {
	return s.pos >= len(s.tokens)
}

// Pos returns the number of tokens consumed so far
func (s *TokenStream) Pos() int {
	return s.pos
}

// Len returns the total number of tokens
func (s *TokenStream) Len() int {
	return len(s.tokens)
}

// Mark saves the current position
func (s *TokenStream) Mark() Mark {
	return Mark{pos: s.pos}
}

// Reset rewinds to a position saved by Mark. Marks ahead of the cursor are
// ignored; the stream never skips tokens through Reset.
func (s *TokenStream) Reset(m Mark) {
	if m.pos <= s.pos {
		s.pos = m.pos
	}
}
