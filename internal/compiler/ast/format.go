package ast

import (
	"fmt"
	"io"
	"strings"
)

// Format writes the tree one node per line, indented by two dots per level.
// Constructs render as <label>, terminals as "<code> <name>".
//
//	<signal-program>
//	..<program>
//	....301 PROGRAM
func (t *Tree) Format(w io.Writer) error {
	var err error
	t.Walk(func(n *Node, depth int) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("..", depth), n.display())
		return true
	})
	return err
}

// String returns the formatted tree
func (t *Tree) String() string {
	var b strings.Builder
	_ = t.Format(&b)
	return b.String()
}

func (n *Node) display() string {
	if n.IsTerminal() {
		return fmt.Sprintf("%d %s", n.Code, n.Name)
	}
	return "<" + n.Label.String() + ">"
}
