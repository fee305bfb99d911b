package format

import (
	"io"
	"strings"

	"github.com/Maazi-78/Compiler/decaf/parser"
)

// TreeEncoder renders a parse tree one node per line: the node's label
// indented by two spaces per level of depth.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node *parser.Node) error {
	var b strings.Builder
	writeTree(&b, node, 0)
	_, err := io.WriteString(e.w, b.String())
	return err
}

func writeTree(b *strings.Builder, n *parser.Node, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString(n.Label())
	b.WriteByte('\n')
	for _, child := range n.Children {
		writeTree(b, child, depth+1)
	}
}
