package parser

import (
	"github.com/signal-lang/sigc/internal/compiler/ast"
	"github.com/signal-lang/sigc/internal/compiler/errors"
	"github.com/signal-lang/sigc/internal/compiler/lexer"
)

// Result bundles everything one lex + parse run produces
type Result struct {
	Tokens      []lexer.Token
	Table       *lexer.Table
	Tree        *ast.Tree
	Diagnostics *errors.Sink
}

// Accepted reports whether neither phase reported an error
func (r *Result) Accepted() bool {
	return !r.Diagnostics.Diagnostics().HasErrors()
}

// ParseSource lexes source with a fresh table and analyzes the tokens.
// Lexical diagnostics short-circuit syntax analysis.
func (p *Parser) ParseSource(source string) *Result {
	sink := errors.NewSink()

	lex := lexer.New(source, nil)
	tokens, lexErrors := lex.ScanTokens()
	lexer.Report(lexErrors, sink)

	return &Result{
		Tokens:      tokens,
		Table:       lex.Table(),
		Tree:        p.Analyze(tokens, lex.Table(), sink),
		Diagnostics: sink,
	}
}
