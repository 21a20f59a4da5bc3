package parser

import (
	"github.com/signal-lang/sigc/internal/compiler/ast"
	"github.com/signal-lang/sigc/internal/compiler/lexer"
)

// builder is the tree-construction cursor: the node new children are attached
// to, plus the table used to classify tokens. It is passed by value, so a
// production that descends only moves its own copy and its callees' copies.
type builder struct {
	node  *ast.Node
	table *lexer.Table
}

// descend attaches a construct node and returns a cursor positioned on it
func (b builder) descend(label ast.Label) builder {
	b.node = b.node.AddChild(label)
	return b
}

// empty inserts the placeholder for an alternative that matched nothing
func (b builder) empty() {
	b.node.AddChild(ast.Empty)
}

// terminal attaches a leaf for a matched token
func (b builder) terminal(tok lexer.Token) {
	b.node.AddTerminal(tok.Code, tok.Name, tok.Line, tok.Column)
}
