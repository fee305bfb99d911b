package parser

type NodeKind int

const (
	// Program level
	KindProgram NodeKind = iota
	KindDeclList

	// Declarations
	KindVarDecl
	KindFnDecl
	KindClassDecl
	KindInterfaceDecl
	KindPrototype
	KindExtends
	KindImplements
	KindFieldList
	KindPrototypeList
	KindFormals

	// Types
	KindTypeName
	KindArrayType

	// Statements
	KindStmtBlock
	KindVarDeclList
	KindStmtList
	KindIfStmt
	KindWhileStmt
	KindForStmt
	KindForInit
	KindForTest
	KindForStep
	KindReturnStmt
	KindBreakStmt
	KindContinueStmt
	KindPrintStmt

	// Expressions
	KindAssignment
	KindLogicalOr
	KindLogicalAnd
	KindEqual
	KindNotEqual
	KindLess
	KindLessEqual
	KindGreater
	KindGreaterEqual
	KindAdd
	KindSubtract
	KindMultiply
	KindDivide
	KindMod
	KindNegate
	KindNot
	KindFieldAccess
	KindArrayAccess
	KindCall
	KindActuals
	KindNewExpr
	KindNewArray
	KindThis
	KindReadInteger
	KindReadLine

	// Leaves carrying a lexeme
	KindIdentifier
	KindIntConstant
	KindDoubleConstant
	KindBoolConstant
	KindStringConstant
	KindNullConstant
)

var nodeKindNames = map[NodeKind]string{
	KindProgram:        "Program",
	KindDeclList:       "DeclList",
	KindVarDecl:        "VarDecl",
	KindFnDecl:         "FnDecl",
	KindClassDecl:      "ClassDecl",
	KindInterfaceDecl:  "InterfaceDecl",
	KindPrototype:      "Prototype",
	KindExtends:        "Extends",
	KindImplements:     "Implements",
	KindFieldList:      "FieldList",
	KindPrototypeList:  "PrototypeList",
	KindFormals:        "Formals",
	KindTypeName:       "TypeName",
	KindArrayType:      "ArrayType",
	KindStmtBlock:      "StmtBlock",
	KindVarDeclList:    "VarDeclList",
	KindStmtList:       "StmtList",
	KindIfStmt:         "IfStmt",
	KindWhileStmt:      "WhileStmt",
	KindForStmt:        "ForStmt",
	KindForInit:        "ForInit",
	KindForTest:        "ForTest",
	KindForStep:        "ForStep",
	KindReturnStmt:     "ReturnStmt",
	KindBreakStmt:      "BreakStmt",
	KindContinueStmt:   "ContinueStmt",
	KindPrintStmt:      "PrintStmt",
	KindAssignment:     "Assignment",
	KindLogicalOr:      "LogicalOr",
	KindLogicalAnd:     "LogicalAnd",
	KindEqual:          "Equal",
	KindNotEqual:       "NotEqual",
	KindLess:           "Less",
	KindLessEqual:      "LessEqual",
	KindGreater:        "Greater",
	KindGreaterEqual:   "GreaterEqual",
	KindAdd:            "Add",
	KindSubtract:       "Subtract",
	KindMultiply:       "Multiply",
	KindDivide:         "Divide",
	KindMod:            "Mod",
	KindNegate:         "Negate",
	KindNot:            "Not",
	KindFieldAccess:    "FieldAccess",
	KindArrayAccess:    "ArrayAccess",
	KindCall:           "Call",
	KindActuals:        "Actuals",
	KindNewExpr:        "NewExpr",
	KindNewArray:       "NewArray",
	KindThis:           "This",
	KindReadInteger:    "ReadInteger",
	KindReadLine:       "ReadLine",
	KindIdentifier:     "Identifier",
	KindIntConstant:    "IntConstant",
	KindDoubleConstant: "DoubleConstant",
	KindBoolConstant:   "BoolConstant",
	KindStringConstant: "StringConstant",
	KindNullConstant:   "NullConstant",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is one labeled vertex of the parse tree. Children are owned
// exclusively by their parent: they are attached at construction and
// never reassigned, so the tree is acyclic and released as one unit.
type Node struct {
	Kind     NodeKind
	Span     Span
	Token    *Token
	Children []*Node
}

func NewNode(kind NodeKind, children ...*Node) *Node {
	n := &Node{Kind: kind}
	for _, child := range children {
		n.AddChild(child)
	}
	return n
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

// Adopt appends every child of source onto n, in order, and empties
// source. This is the single flatten primitive behind every list
// production: the per-link accumulator nodes built during recursion
// hand their children over and are discarded.
func (n *Node) Adopt(source *Node) {
	if source == nil {
		return
	}
	n.Children = append(n.Children, source.Children...)
	source.Children = nil
}

// Label is what the renderers print: leaves that carry a lexeme render
// it verbatim, every other node renders its production name.
func (n *Node) Label() string {
	switch n.Kind {
	case KindIdentifier, KindIntConstant, KindDoubleConstant,
		KindBoolConstant, KindStringConstant, KindNullConstant,
		KindTypeName:
		if n.Token != nil {
			return n.Token.Literal
		}
	}
	return n.Kind.String()
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

func (n *Node) String() string {
	return n.stringIndent(0)
}

func (n *Node) stringIndent(indent int) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	result := prefix + n.Label() + "\n"
	for _, child := range n.Children {
		result += child.stringIndent(indent + 1)
	}
	return result
}
