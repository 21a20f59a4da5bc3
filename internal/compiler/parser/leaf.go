package parser

import (
	"go.uber.org/zap"

	"github.com/signal-lang/sigc/internal/compiler/errors"
	"github.com/signal-lang/sigc/internal/compiler/lexer"
)

// anyCode lets a range-constrained match accept any code of that range
const anyCode = -1

// outcome is the result of a terminal match
type outcome int

const (
	// matched: the token was attached to the tree and consumed
	matched outcome = iota
	// skipped: an optional match did not apply; nothing consumed or reported
	skipped
	// failed: a diagnostic was appended; the analysis must stop
	failed
)

// leaf matches the current token against an expected terminal.
//
// With rng set, the token must belong to that range and, unless code is
// anyCode, carry that code. With RangeNone only the raw code is compared,
// which is how delimiters match without being in the table. A mismatch of
// an optional terminal is skipped silently; end of input always fails.
func (p *Parser) leaf(b builder, ts *TokenStream, sink *errors.Sink, code int, rng lexer.Range, required bool) outcome {
	tok, ok := ts.Peek()
	if !ok {
		sink.Add(errors.NewUnexpectedEOF(b.expected(code, rng, true)))
		p.logger.Debug("unexpected end of input", zap.Int("code", code), zap.Stringer("range", rng))
		return failed
	}

	found := b.table.RangeOf(tok.Code)

	mismatch := false
	if rng != lexer.RangeNone {
		mismatch = found != rng || (code != anyCode && tok.Code != code)
	} else {
		mismatch = tok.Code != code
	}

	if mismatch {
		if !required {
			return skipped
		}
		loc := errors.Location{Line: tok.Line, Column: tok.Column}
		sink.Add(errors.NewExpectedToken(loc, b.expected(code, rng, found != lexer.RangeNone), tok.Name))
		p.logger.Debug("terminal mismatch",
			zap.Int("expected", code),
			zap.Int("found", tok.Code),
			zap.Int("line", tok.Line),
			zap.Int("column", tok.Column))
		return failed
	}

	b.terminal(tok)
	ts.Advance()
	return matched
}

// expected renders the expected terminal for a diagnostic: "';'",
// "Identifier", or "Keyword 'BEGIN'". The keyword name is only spelled out
// when named is set, i.e. the found token is itself classified or input
// has ended.
func (b builder) expected(code int, rng lexer.Range, named bool) string {
	if rng == lexer.RangeNone {
		return "'" + b.table.NameOf(code) + "'"
	}
	if code != anyCode && named {
		return rng.String() + " '" + b.table.NameOf(code) + "'"
	}
	return rng.String()
}
