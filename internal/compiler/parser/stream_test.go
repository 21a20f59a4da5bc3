package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signal-lang/sigc/internal/compiler/lexer"
)

func TestTokenStream(t *testing.T) {
	tokens := []lexer.Token{
		{Code: lexer.CodeBegin, Name: "BEGIN"},
		{Code: lexer.CodeEnd, Name: "END"},
	}
	ts := NewTokenStream(tokens)

	tok, ok := ts.Peek()
	require.True(t, ok)
	assert.Equal(t, "BEGIN", tok.Name)
	assert.Equal(t, 2, ts.Len())

	ts.Advance()
	tok, ok = ts.Peek()
	require.True(t, ok)
	assert.Equal(t, "END", tok.Name)

	ts.Advance()
	assert.True(t, ts.AtEnd())
	_, ok = ts.Peek()
	assert.False(t, ok)

	ts.Advance()
	assert.Equal(t, 2, ts.Pos(), "advance past end is a no-op")
}

func TestTokenStreamMarkReset(t *testing.T) {
	tokens := []lexer.Token{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	ts := NewTokenStream(tokens)

	ts.Advance()
	m := ts.Mark()
	ts.Advance()
	ts.Advance()
	require.True(t, ts.AtEnd())

	ts.Reset(m)
	assert.Equal(t, 1, ts.Pos())
	tok, _ := ts.Peek()
	assert.Equal(t, "b", tok.Name)

	ahead := NewTokenStream(tokens)
	ahead.Reset(m)
	assert.Equal(t, 0, ahead.Pos(), "reset never moves forward")
}
