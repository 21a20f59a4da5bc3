// Package ast defines the syntax tree produced by the Signal parser: an
// ordered, labeled, multi-way tree in which every node owns its children.
package ast

import "fmt"

// Label identifies the grammar construct a node stands for
type Label int

const (
	// Terminal marks a leaf carrying a matched token code
	Terminal Label = iota
	// Empty is the placeholder for an alternative that matched nothing
	Empty
	SignalProgram
	Program
	ProcedureIdentifier
	Block
	ParametersList
	Declarations
	DeclarationsList
	StatementsList
	LabelDeclarations
	LabelsList
	UnsignedInteger
	Identifier
)

// LabelNames maps labels to their display names
var LabelNames = map[Label]string{
	Terminal:            "terminal",
	Empty:               "empty",
	SignalProgram:       "signal-program",
	Program:             "program",
	ProcedureIdentifier: "procedure-identifier",
	Block:               "block",
	ParametersList:      "parameters-list",
	Declarations:        "declarations",
	DeclarationsList:    "declarations-list",
	StatementsList:      "statements-list",
	LabelDeclarations:   "label-declarations",
	LabelsList:          "labels-list",
	UnsignedInteger:     "unsigned-integer",
	Identifier:          "identifier",
}

// String returns the display name of a Label
func (l Label) String() string {
	if name, ok := LabelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("label(%d)", int(l))
}

// MarshalText renders the label by name in JSON and YAML output
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Node is one vertex of the syntax tree. A node's parent is implicit: nodes
// are only ever created through AddChild or AddTerminal on their parent and
// are never re-parented or removed.
type Node struct {
	Label    Label   `json:"label" yaml:"label"`
	Code     int     `json:"code,omitempty" yaml:"code,omitempty"`
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Line     int     `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int     `json:"column,omitempty" yaml:"column,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// AddChild appends a construct node and returns it
func (n *Node) AddChild(label Label) *Node {
	child := &Node{Label: label}
	n.Children = append(n.Children, child)
	return child
}

// AddTerminal appends a leaf carrying a matched token and returns it
func (n *Node) AddTerminal(code int, name string, line, column int) *Node {
	child := &Node{
		Label:  Terminal,
		Code:   code,
		Name:   name,
		Line:   line,
		Column: column,
	}
	n.Children = append(n.Children, child)
	return child
}

// IsTerminal reports whether the node is a matched token
func (n *Node) IsTerminal() bool {
	return n.Label == Terminal
}

// Equal compares two subtrees structurally (labels, codes, names, children)
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Label != other.Label || n.Code != other.Code || n.Name != other.Name {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Tree is a syntax tree with a single root
type Tree struct {
	Root *Node `json:"root" yaml:"root"`
}

// NewTree creates a tree whose root carries label
func NewTree(label Label) *Tree {
	return &Tree{Root: &Node{Label: label}}
}

// Equal compares two trees structurally
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Root.Equal(other.Root)
}

// Walk visits nodes depth-first in child order. Returning false from fn
// skips the node's children.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.Root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(child, depth+1, fn)
	}
}

// Find returns every node with the given label, in depth-first order
func (t *Tree) Find(label Label) []*Node {
	var found []*Node
	t.Walk(func(n *Node, _ int) bool {
		if n.Label == label {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Size returns the number of nodes in the tree
func (t *Tree) Size() int {
	count := 0
	t.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}
