package parser

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenDoubleLiteral
	TokenBoolLiteral
	TokenStringLiteral
	TokenNull

	// The five primitive type names share one kind; the literal
	// carries the spelling.
	TokenType

	// Keywords
	TokenPackage
	TokenFunc
	TokenIf
	TokenElse
	TokenWhile
	TokenFor
	TokenReturn
	TokenBreak
	TokenContinue
	TokenThis
	TokenClass
	TokenInterface
	TokenExtends
	TokenImplements
	TokenNew
	TokenNewArray
	TokenPrint
	TokenReadInteger
	TokenReadLine

	// Operators and punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot

	TokenAssign
	TokenEQ
	TokenNE
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenAnd
	TokenOr
	TokenNot
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "EOF",
	TokenError:         "Error",
	TokenWhitespace:    "Whitespace",
	TokenComment:       "Comment",
	TokenIdent:         "Identifier",
	TokenIntLiteral:    "IntLiteral",
	TokenDoubleLiteral: "DoubleLiteral",
	TokenBoolLiteral:   "BoolLiteral",
	TokenStringLiteral: "StringLiteral",
	TokenNull:          "null",
	TokenType:          "Type",
	TokenPackage:       "package",
	TokenFunc:          "func",
	TokenIf:            "if",
	TokenElse:          "else",
	TokenWhile:         "while",
	TokenFor:           "for",
	TokenReturn:        "return",
	TokenBreak:         "break",
	TokenContinue:      "continue",
	TokenThis:          "this",
	TokenClass:         "class",
	TokenInterface:     "interface",
	TokenExtends:       "extends",
	TokenImplements:    "implements",
	TokenNew:           "new",
	TokenNewArray:      "NewArray",
	TokenPrint:         "Print",
	TokenReadInteger:   "ReadInteger",
	TokenReadLine:      "ReadLine",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenSemicolon:     ";",
	TokenComma:         ",",
	TokenDot:           ".",
	TokenAssign:        "=",
	TokenEQ:            "==",
	TokenNE:            "!=",
	TokenLT:            "<",
	TokenLE:            "<=",
	TokenGT:            ">",
	TokenGE:            ">=",
	TokenAnd:           "&&",
	TokenOr:            "||",
	TokenNot:           "!",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenSlash:         "/",
	TokenPercent:       "%",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

var keywords = map[string]TokenKind{
	"package":     TokenPackage,
	"func":        TokenFunc,
	"if":          TokenIf,
	"else":        TokenElse,
	"while":       TokenWhile,
	"for":         TokenFor,
	"return":      TokenReturn,
	"break":       TokenBreak,
	"continue":    TokenContinue,
	"this":        TokenThis,
	"class":       TokenClass,
	"interface":   TokenInterface,
	"extends":     TokenExtends,
	"implements":  TokenImplements,
	"new":         TokenNew,
	"NewArray":    TokenNewArray,
	"Print":       TokenPrint,
	"ReadInteger": TokenReadInteger,
	"ReadLine":    TokenReadLine,
	"true":        TokenBoolLiteral,
	"false":       TokenBoolLiteral,
	"null":        TokenNull,
	"void":        TokenType,
	"int":         TokenType,
	"double":      TokenType,
	"bool":        TokenType,
	"string":      TokenType,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
