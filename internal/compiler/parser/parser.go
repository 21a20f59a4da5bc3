// Package parser implements the Signal syntax analyzer, transforming a token
// stream into a labeled syntax tree.
//
// It is a recursive descent parser with single-token lookahead and no error
// recovery: the first required terminal that does not match appends one
// diagnostic and fails every production up to Analyze.
package parser

import (
	"go.uber.org/zap"

	"github.com/signal-lang/sigc/internal/compiler/ast"
	"github.com/signal-lang/sigc/internal/compiler/errors"
	"github.com/signal-lang/sigc/internal/compiler/lexer"
)

// Parser holds analysis configuration. It keeps no per-analysis state, so a
// single Parser may run concurrent analyses.
type Parser struct {
	logger *zap.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger traces production entry and failures at debug level
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a parser
func New(opts ...Option) *Parser {
	p := &Parser{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Analyze parses tokens into a tree rooted at a SignalProgram node,
// appending diagnostics to sink. When sink already holds diagnostics from an
// earlier phase, the root is returned without children and nothing is
// consumed or appended.
//
// On failure the returned tree is the partial tree built up to the failing
// terminal.
func (p *Parser) Analyze(tokens []lexer.Token, table *lexer.Table, sink *errors.Sink) *ast.Tree {
	tree := ast.NewTree(ast.SignalProgram)

	if !sink.Empty() {
		p.logger.Debug("skipping syntax analysis", zap.Int("diagnostics", sink.Len()))
		return tree
	}

	ts := NewTokenStream(tokens)
	accepted := p.signalProgram(builder{node: tree.Root, table: table}, ts, sink)

	p.logger.Debug("syntax analysis finished",
		zap.Bool("accepted", accepted),
		zap.Int("consumed", ts.Pos()),
		zap.Int("tokens", ts.Len()),
		zap.Int("nodes", tree.Size()))

	return tree
}

// signal-program --> program
func (p *Parser) signalProgram(b builder, ts *TokenStream, sink *errors.Sink) bool {
	p.enter("signal-program", ts)
	return p.program(b, ts, sink)
}

// program --> PROGRAM procedure-identifier ; block .
//
//	| PROCEDURE procedure-identifier parameters-list ; block ;
func (p *Parser) program(b builder, ts *TokenStream, sink *errors.Sink) bool {
	p.enter("program", ts)
	b = b.descend(ast.Program)

	switch p.leaf(b, ts, sink, lexer.CodeProgram, lexer.RangeKeyword, false) {
	case failed:
		return false
	case matched:
		return p.procedureIdentifier(b, ts, sink) &&
			p.expect(b, ts, sink, ';') &&
			p.block(b, ts, sink) &&
			p.expect(b, ts, sink, '.')
	}

	return p.keyword(b, ts, sink, lexer.CodeProcedure) &&
		p.procedureIdentifier(b, ts, sink) &&
		p.parametersList(b, ts, sink) &&
		p.expect(b, ts, sink, ';') &&
		p.block(b, ts, sink) &&
		p.expect(b, ts, sink, ';')
}

// procedure-identifier --> identifier
func (p *Parser) procedureIdentifier(b builder, ts *TokenStream, sink *errors.Sink) bool {
	p.enter("procedure-identifier", ts)
	return p.identifier(b.descend(ast.ProcedureIdentifier), ts, sink)
}

// block --> declarations BEGIN statements-list END
func (p *Parser) block(b builder, ts *TokenStream, sink *errors.Sink) bool {
	p.enter("block", ts)
	b = b.descend(ast.Block)

	return p.declarations(b, ts, sink) &&
		p.keyword(b, ts, sink, lexer.CodeBegin) &&
		p.statementsList(b, ts, sink) &&
		p.keyword(b, ts, sink, lexer.CodeEnd)
}

// parameters-list --> ( declarations-list ) | <empty>
func (p *Parser) parametersList(b builder, ts *TokenStream, sink *errors.Sink) bool {
	p.enter("parameters-list", ts)
	b = b.descend(ast.ParametersList)

	switch p.leaf(b, ts, sink, '(', lexer.RangeNone, false) {
	case failed:
		return false
	case skipped:
		b.empty()
		return true
	}

	return p.declarationsList(b, ts, sink) &&
		p.expect(b, ts, sink, ')')
}

// declarations --> label-declarations
func (p *Parser) declarations(b builder, ts *TokenStream, sink *errors.Sink) bool {
	p.enter("declarations", ts)
	return p.labelDeclarations(b.descend(ast.Declarations), ts, sink)
}

// declarations-list --> <empty>
//
// The rule has no non-empty alternative yet; it always yields the
// placeholder and consumes nothing.
func (p *Parser) declarationsList(b builder, ts *TokenStream, _ *errors.Sink) bool {
	p.enter("declarations-list", ts)
	b.descend(ast.DeclarationsList).empty()
	return true
}

// statements-list --> <empty>
//
// Like declarations-list, a placeholder until statements are added.
func (p *Parser) statementsList(b builder, ts *TokenStream, _ *errors.Sink) bool {
	p.enter("statements-list", ts)
	b.descend(ast.StatementsList).empty()
	return true
}

// label-declarations --> LABEL unsigned-integer labels-list ; | <empty>
func (p *Parser) labelDeclarations(b builder, ts *TokenStream, sink *errors.Sink) bool {
	p.enter("label-declarations", ts)
	b = b.descend(ast.LabelDeclarations)

	switch p.leaf(b, ts, sink, lexer.CodeLabel, lexer.RangeKeyword, false) {
	case failed:
		return false
	case skipped:
		b.empty()
		return true
	}

	return p.unsignedInteger(b, ts, sink) &&
		p.labelsList(b, ts, sink) &&
		p.expect(b, ts, sink, ';')
}

// labels-list --> , unsigned-integer labels-list | <empty>
func (p *Parser) labelsList(b builder, ts *TokenStream, sink *errors.Sink) bool {
	p.enter("labels-list", ts)
	b = b.descend(ast.LabelsList)

	switch p.leaf(b, ts, sink, ',', lexer.RangeNone, false) {
	case failed:
		return false
	case skipped:
		b.empty()
		return true
	}

	return p.unsignedInteger(b, ts, sink) &&
		p.labelsList(b, ts, sink)
}

// unsigned-integer --> <constant>
func (p *Parser) unsignedInteger(b builder, ts *TokenStream, sink *errors.Sink) bool {
	p.enter("unsigned-integer", ts)
	return p.leaf(b.descend(ast.UnsignedInteger), ts, sink, anyCode, lexer.RangeConstant, true) == matched
}

// identifier --> <identifier>
func (p *Parser) identifier(b builder, ts *TokenStream, sink *errors.Sink) bool {
	p.enter("identifier", ts)
	return p.leaf(b.descend(ast.Identifier), ts, sink, anyCode, lexer.RangeIdentifier, true) == matched
}

// keyword requires the keyword with the given code
func (p *Parser) keyword(b builder, ts *TokenStream, sink *errors.Sink, code int) bool {
	return p.leaf(b, ts, sink, code, lexer.RangeKeyword, true) == matched
}

// expect requires the delimiter ch
func (p *Parser) expect(b builder, ts *TokenStream, sink *errors.Sink, ch byte) bool {
	return p.leaf(b, ts, sink, int(ch), lexer.RangeNone, true) == matched
}

func (p *Parser) enter(rule string, ts *TokenStream) {
	if ce := p.logger.Check(zap.DebugLevel, "enter production"); ce != nil {
		ce.Write(zap.String("rule", rule), zap.Int("pos", ts.Pos()))
	}
}
