package format

import (
	"github.com/Maazi-78/Compiler/decaf/parser"
)

type Encoder interface {
	Encode(node *parser.Node) error
}
