package tooling

import (
	"github.com/signal-lang/sigc/internal/compiler/ast"
	"github.com/signal-lang/sigc/internal/compiler/lexer"
	"github.com/signal-lang/sigc/internal/compiler/parser"
)

// SymbolKind categorizes symbols for IDE display
type SymbolKind int

const (
	// SymbolKindProgram is the name declared by PROGRAM
	SymbolKindProgram SymbolKind = iota
	// SymbolKindProcedure is the name declared by PROCEDURE
	SymbolKindProcedure
	// SymbolKindLabel is a label declared by LABEL
	SymbolKindLabel
)

// Symbol represents a named entity in the source code
type Symbol struct {
	Name   string
	Kind   SymbolKind
	Range  Range
	Detail string
}

// extractSymbols walks the (possibly partial) tree for declared names
func extractSymbols(result *parser.Result) []*Symbol {
	symbols := make([]*Symbol, 0)
	if result == nil || result.Tree == nil {
		return symbols
	}

	for _, program := range result.Tree.Find(ast.Program) {
		kind := SymbolKindProgram
		detail := "program"
		if len(program.Children) > 0 && program.Children[0].Code == lexer.CodeProcedure {
			kind = SymbolKindProcedure
			detail = "procedure"
		}
		for _, child := range program.Children {
			if child.Label != ast.ProcedureIdentifier {
				continue
			}
			if name := firstTerminal(child); name != nil {
				symbols = append(symbols, newSymbol(name, kind, detail))
			}
		}
	}

	for _, label := range result.Tree.Find(ast.UnsignedInteger) {
		if value := firstTerminal(label); value != nil {
			symbols = append(symbols, newSymbol(value, SymbolKindLabel, "label"))
		}
	}

	return symbols
}

func newSymbol(n *ast.Node, kind SymbolKind, detail string) *Symbol {
	start := Position{Line: n.Line - 1, Character: n.Column - 1}
	return &Symbol{
		Name:   n.Name,
		Kind:   kind,
		Detail: detail,
		Range: Range{
			Start: start,
			End:   Position{Line: start.Line, Character: start.Character + len(n.Name)},
		},
	}
}

func firstTerminal(n *ast.Node) *ast.Node {
	var found *ast.Node
	(&ast.Tree{Root: n}).Walk(func(node *ast.Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.IsTerminal() {
			found = node
			return false
		}
		return true
	})
	return found
}
