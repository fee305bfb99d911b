package parser

import (
	"io"
	"strconv"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithErrorHandler installs a hook that sees each lexical error as the
// scanner finds it. Lexical errors are always collected on the parser
// as well.
func WithErrorHandler(h ErrorHandler) Option {
	return func(p *Parser) {
		p.onLexError = h
	}
}

type Parser struct {
	file       string
	reader     io.Reader
	lexer      *Lexer
	buf        []Token
	onLexError ErrorHandler
	lexErrors  []*LexicalError
	err        *SyntaxError
}

// ParseProgram parses a whole Decaf program from r and returns its
// parse tree. On the first token with no valid continuation it returns
// a *SyntaxError and no tree; lexical errors alone do not fail the
// parse and are available from LexicalErrors.
func ParseProgram(r io.Reader, opts ...Option) (*Node, error) {
	p := newParser(r, opts...)
	if err := p.start(); err != nil {
		return nil, err
	}
	node := p.parseProgram()
	if p.err != nil {
		return nil, p.err
	}
	return node, nil
}

// ParseExpression parses a single expression followed by end of input.
func ParseExpression(r io.Reader, opts ...Option) (*Node, error) {
	p := newParser(r, opts...)
	if err := p.start(); err != nil {
		return nil, err
	}
	node := p.parseExpr()
	if p.err == nil && !p.check(TokenEOF) {
		p.fail()
	}
	if p.err != nil {
		return nil, p.err
	}
	return node, nil
}

func newParser(r io.Reader, opts ...Option) *Parser {
	p := &Parser{reader: r}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) start() error {
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return err
	}
	p.lexer = NewLexer(data, p.file)
	return nil
}

func (p *Parser) LexicalErrors() []*LexicalError {
	return p.lexErrors
}

// pull fetches the next significant token from the scanner, skipping
// whitespace and comments and reporting lexical errors as they occur.
func (p *Parser) pull() Token {
	for {
		tok := p.lexer.NextToken()
		switch tok.Kind {
		case TokenWhitespace, TokenComment:
			continue
		case TokenError:
			lexErr := lexicalErrorFor(tok)
			p.lexErrors = append(p.lexErrors, lexErr)
			if p.onLexError != nil {
				p.onLexError(lexErr)
			}
			continue
		}
		return tok
	}
}

func (p *Parser) peekAt(n int) Token {
	for len(p.buf) <= n {
		if len(p.buf) > 0 && p.buf[len(p.buf)-1].Kind == TokenEOF {
			return p.buf[len(p.buf)-1]
		}
		p.buf = append(p.buf, p.pull())
	}
	return p.buf[n]
}

func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if tok.Kind != TokenEOF {
		p.buf = p.buf[1:]
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) expect(kind TokenKind) *Token {
	tok := p.peek()
	if tok.Kind == kind {
		p.advance()
		return &tok
	}
	p.fail()
	return nil
}

// fail records the fatal syntax error at the current lookahead's line.
// Only the first failure counts; everything after it unwinds.
func (p *Parser) fail() {
	if p.err == nil {
		p.err = &SyntaxError{Line: p.peek().Span.Start.Line}
	}
}

func (p *Parser) bad() bool {
	return p.err != nil
}

func (p *Parser) expectIdent() *Node {
	tok := p.expect(TokenIdent)
	if tok == nil {
		return nil
	}
	return &Node{Kind: KindIdentifier, Token: tok, Span: tok.Span}
}

func leaf(kind NodeKind, tok Token) *Node {
	return &Node{Kind: kind, Token: &tok, Span: tok.Span}
}

// program := 'package' IDENT ';' decl+
func (p *Parser) parseProgram() *Node {
	node := NewNode(KindProgram)
	p.expect(TokenPackage)
	node.AddChild(p.expectIdent())
	p.expect(TokenSemicolon)
	node.AddChild(p.parseDeclList())
	if !p.bad() && !p.check(TokenEOF) {
		p.fail()
	}
	return node
}

func (p *Parser) parseDeclList() *Node {
	node := NewNode(KindDeclList)
	node.AddChild(p.parseDecl())
	if !p.bad() && !p.check(TokenEOF) {
		node.Adopt(p.parseDeclList())
	}
	return node
}

func (p *Parser) parseDecl() *Node {
	switch p.peek().Kind {
	case TokenClass:
		return p.parseClassDecl()
	case TokenInterface:
		return p.parseInterfaceDecl()
	case TokenFunc:
		return p.parseFnDecl()
	case TokenType, TokenIdent:
		return p.parseVarDecl()
	}
	p.fail()
	return nil
}

// var_decl := type IDENT ';'
func (p *Parser) parseVarDecl() *Node {
	typ := p.parseType()
	name := p.expectIdent()
	p.expect(TokenSemicolon)
	return NewNode(KindVarDecl, typ, name)
}

// type := TYPE | IDENT | type '[' ']'
func (p *Parser) parseType() *Node {
	var base *Node
	switch p.peek().Kind {
	case TokenType, TokenIdent:
		base = leaf(KindTypeName, p.advance())
	default:
		p.fail()
		return nil
	}
	for p.check(TokenLBracket) && p.peekAt(1).Kind == TokenRBracket {
		p.advance()
		p.advance()
		base = NewNode(KindArrayType, base)
	}
	return base
}

// func_decl := 'func' IDENT '(' formals ')' type stmt_block
func (p *Parser) parseFnDecl() *Node {
	p.expect(TokenFunc)
	name := p.expectIdent()
	p.expect(TokenLParen)
	formals := p.parseFormals()
	p.expect(TokenRParen)
	typ := p.parseType()
	body := p.parseStmtBlock()
	return NewNode(KindFnDecl, typ, name, formals, body)
}

func (p *Parser) parseFormals() *Node {
	if p.check(TokenRParen) {
		return nil
	}
	return p.parseFormalList()
}

func (p *Parser) parseFormalList() *Node {
	node := NewNode(KindFormals)
	node.AddChild(p.parseFormal())
	if !p.bad() && p.check(TokenComma) {
		p.advance()
		node.Adopt(p.parseFormalList())
	}
	return node
}

func (p *Parser) parseFormal() *Node {
	typ := p.parseType()
	name := p.expectIdent()
	return NewNode(KindVarDecl, typ, name)
}

// class_decl := 'class' IDENT extends? implements? '{' field* '}'
func (p *Parser) parseClassDecl() *Node {
	p.expect(TokenClass)
	name := p.expectIdent()

	var ext *Node
	if p.check(TokenExtends) {
		p.advance()
		ext = NewNode(KindExtends, p.expectIdent())
	}

	var impl *Node
	if p.check(TokenImplements) {
		p.advance()
		impl = NewNode(KindImplements, p.expectIdent())
		for !p.bad() && p.check(TokenComma) {
			p.advance()
			impl.AddChild(p.expectIdent())
		}
	}

	p.expect(TokenLBrace)
	fields := p.parseFieldList()
	p.expect(TokenRBrace)
	return NewNode(KindClassDecl, name, ext, impl, fields)
}

func (p *Parser) parseFieldList() *Node {
	if p.check(TokenRBrace) {
		return nil
	}
	node := NewNode(KindFieldList)
	node.AddChild(p.parseField())
	if !p.bad() && !p.check(TokenRBrace) && !p.check(TokenEOF) {
		node.Adopt(p.parseFieldList())
	}
	return node
}

func (p *Parser) parseField() *Node {
	switch p.peek().Kind {
	case TokenFunc:
		return p.parseFnDecl()
	case TokenType, TokenIdent:
		return p.parseVarDecl()
	}
	p.fail()
	return nil
}

// interface_decl := 'interface' IDENT '{' prototype* '}'
func (p *Parser) parseInterfaceDecl() *Node {
	p.expect(TokenInterface)
	name := p.expectIdent()
	p.expect(TokenLBrace)
	protos := p.parsePrototypeList()
	p.expect(TokenRBrace)
	return NewNode(KindInterfaceDecl, name, protos)
}

func (p *Parser) parsePrototypeList() *Node {
	if p.check(TokenRBrace) {
		return nil
	}
	node := NewNode(KindPrototypeList)
	node.AddChild(p.parsePrototype())
	if !p.bad() && !p.check(TokenRBrace) && !p.check(TokenEOF) {
		node.Adopt(p.parsePrototypeList())
	}
	return node
}

// prototype := 'func' IDENT '(' formals ')' type ';'
func (p *Parser) parsePrototype() *Node {
	p.expect(TokenFunc)
	name := p.expectIdent()
	p.expect(TokenLParen)
	formals := p.parseFormals()
	p.expect(TokenRParen)
	typ := p.parseType()
	p.expect(TokenSemicolon)
	return NewNode(KindPrototype, typ, name, formals)
}

// stmt_block := '{' var_decl* stmt* '}'
//
// The block node has two children when both sections are present, one
// when exactly one is, and none when the block is empty.
func (p *Parser) parseStmtBlock() *Node {
	p.expect(TokenLBrace)
	decls := p.parseBlockVarDecls()
	stmts := p.parseStmtList()
	p.expect(TokenRBrace)
	return NewNode(KindStmtBlock, decls, stmts)
}

func (p *Parser) parseBlockVarDecls() *Node {
	if p.bad() || !p.isVarDeclStart() {
		return nil
	}
	node := NewNode(KindVarDeclList)
	node.AddChild(p.parseVarDecl())
	if !p.bad() {
		node.Adopt(p.parseBlockVarDecls())
	}
	return node
}

// isVarDeclStart distinguishes a leading variable declaration from an
// expression statement: a type name, or an identifier that is itself
// followed by an identifier or by '[' ']'.
func (p *Parser) isVarDeclStart() bool {
	switch p.peek().Kind {
	case TokenType:
		return true
	case TokenIdent:
		next := p.peekAt(1).Kind
		if next == TokenIdent {
			return true
		}
		return next == TokenLBracket && p.peekAt(2).Kind == TokenRBracket
	}
	return false
}

func (p *Parser) parseStmtList() *Node {
	if p.bad() || p.check(TokenRBrace) || p.check(TokenEOF) {
		return nil
	}
	node := NewNode(KindStmtList)
	node.AddChild(p.parseStmt())
	if !p.bad() {
		node.Adopt(p.parseStmtList())
	}
	return node
}

func (p *Parser) parseStmt() *Node {
	switch p.peek().Kind {
	case TokenIf:
		return p.parseIfStmt()
	case TokenWhile:
		return p.parseWhileStmt()
	case TokenFor:
		return p.parseForStmt()
	case TokenReturn:
		return p.parseReturnStmt()
	case TokenBreak:
		p.advance()
		p.expect(TokenSemicolon)
		return NewNode(KindBreakStmt)
	case TokenContinue:
		p.advance()
		p.expect(TokenSemicolon)
		return NewNode(KindContinueStmt)
	case TokenPrint:
		return p.parsePrintStmt()
	case TokenLBrace:
		return p.parseStmtBlock()
	}
	expr := p.parseExpr()
	p.expect(TokenSemicolon)
	return expr
}

// if_stmt := 'if' '(' expr ')' stmt ('else' stmt)?
func (p *Parser) parseIfStmt() *Node {
	p.expect(TokenIf)
	p.expect(TokenLParen)
	cond := p.parseExpr()
	p.expect(TokenRParen)
	node := NewNode(KindIfStmt, cond, p.parseStmt())
	// A pending else outranks the else-less if, so it is shifted here
	// and attaches to the nearest unmatched if.
	if !p.bad() && p.check(TokenElse) && shiftElse() {
		p.advance()
		node.AddChild(p.parseStmt())
	}
	return node
}

func (p *Parser) parseWhileStmt() *Node {
	p.expect(TokenWhile)
	p.expect(TokenLParen)
	cond := p.parseExpr()
	p.expect(TokenRParen)
	return NewNode(KindWhileStmt, cond, p.parseStmt())
}

// for_stmt := 'for' '(' expr? ';' expr? ';' expr? ')' stmt
func (p *Parser) parseForStmt() *Node {
	p.expect(TokenFor)
	p.expect(TokenLParen)

	init := NewNode(KindForInit)
	if !p.check(TokenSemicolon) {
		init.AddChild(p.parseExpr())
	}
	p.expect(TokenSemicolon)

	test := NewNode(KindForTest)
	if !p.check(TokenSemicolon) {
		test.AddChild(p.parseExpr())
	}
	p.expect(TokenSemicolon)

	step := NewNode(KindForStep)
	if !p.check(TokenRParen) {
		step.AddChild(p.parseExpr())
	}
	p.expect(TokenRParen)

	return NewNode(KindForStmt, init, test, step, p.parseStmt())
}

func (p *Parser) parseReturnStmt() *Node {
	p.expect(TokenReturn)
	node := NewNode(KindReturnStmt)
	if !p.check(TokenSemicolon) {
		node.AddChild(p.parseExpr())
	}
	p.expect(TokenSemicolon)
	return node
}

// print_stmt := 'Print' '(' actuals ')' ';'
func (p *Parser) parsePrintStmt() *Node {
	p.expect(TokenPrint)
	p.expect(TokenLParen)
	actuals := p.parseActuals()
	p.expect(TokenRParen)
	p.expect(TokenSemicolon)
	return NewNode(KindPrintStmt, actuals)
}

func (p *Parser) parseActuals() *Node {
	if p.check(TokenRParen) {
		return nil
	}
	return p.parseExprList()
}

func (p *Parser) parseExprList() *Node {
	node := NewNode(KindActuals)
	node.AddChild(p.parseExpr())
	if !p.bad() && p.check(TokenComma) {
		p.advance()
		node.Adopt(p.parseExprList())
	}
	return node
}

func (p *Parser) parseExpr() *Node {
	return p.parseBinaryExpr(precAssign)
}

// parseBinaryExpr folds all binary operators at or above minPrec,
// consulting the precedence table at each step. A right-associative
// operator re-enters at its own level, a left-associative one at the
// level above.
func (p *Parser) parseBinaryExpr(minPrec int) *Node {
	left := p.parseUnaryExpr()
	for !p.bad() {
		op, ok := binaryOp(p.peek().Kind, minPrec)
		if !ok {
			break
		}
		p.advance()
		next := op.prec + 1
		if op.rightAssoc {
			next = op.prec
		}
		left = NewNode(op.kind, left, p.parseBinaryExpr(next))
	}
	return left
}

func (p *Parser) parseUnaryExpr() *Node {
	switch p.peek().Kind {
	case TokenMinus:
		p.advance()
		return NewNode(KindNegate, p.parseUnaryExpr())
	case TokenNot:
		p.advance()
		return NewNode(KindNot, p.parseUnaryExpr())
	}
	return p.parsePostfixExpr()
}

func (p *Parser) parsePostfixExpr() *Node {
	expr := p.parsePrimaryExpr()
	for !p.bad() {
		switch p.peek().Kind {
		case TokenDot:
			p.advance()
			name := p.expectIdent()
			if !p.bad() && p.check(TokenLParen) {
				p.advance()
				actuals := p.parseActuals()
				p.expect(TokenRParen)
				expr = NewNode(KindCall, expr, name, actuals)
			} else {
				expr = NewNode(KindFieldAccess, expr, name)
			}
		case TokenLBracket:
			p.advance()
			index := p.parseExpr()
			p.expect(TokenRBracket)
			expr = NewNode(KindArrayAccess, expr, index)
		default:
			return expr
		}
	}
	return expr
}

func (p *Parser) parsePrimaryExpr() *Node {
	switch p.peek().Kind {
	case TokenIntLiteral:
		return leaf(KindIntConstant, canonicalInt(p.advance()))
	case TokenDoubleLiteral:
		return leaf(KindDoubleConstant, canonicalDouble(p.advance()))
	case TokenBoolLiteral:
		return leaf(KindBoolConstant, p.advance())
	case TokenStringLiteral:
		return leaf(KindStringConstant, p.advance())
	case TokenNull:
		return leaf(KindNullConstant, p.advance())
	case TokenThis:
		return leaf(KindThis, p.advance())
	case TokenIdent:
		name := p.expectIdent()
		if p.check(TokenLParen) {
			p.advance()
			actuals := p.parseActuals()
			p.expect(TokenRParen)
			return NewNode(KindCall, name, actuals)
		}
		return name
	case TokenLParen:
		p.advance()
		expr := p.parseExpr()
		p.expect(TokenRParen)
		return expr
	case TokenNew:
		p.advance()
		name := p.expectIdent()
		p.expect(TokenLParen)
		actuals := p.parseActuals()
		p.expect(TokenRParen)
		return NewNode(KindNewExpr, name, actuals)
	case TokenNewArray:
		p.advance()
		p.expect(TokenLParen)
		size := p.parseExpr()
		p.expect(TokenComma)
		typ := p.parseType()
		p.expect(TokenRParen)
		return NewNode(KindNewArray, size, typ)
	case TokenReadInteger:
		tok := p.advance()
		p.expect(TokenLParen)
		p.expect(TokenRParen)
		return leaf(KindReadInteger, tok)
	case TokenReadLine:
		tok := p.advance()
		p.expect(TokenLParen)
		p.expect(TokenRParen)
		return leaf(KindReadLine, tok)
	}
	p.fail()
	return nil
}

// canonicalInt rewrites an integer literal to its base-10 rendering,
// so "007" prints as "7".
func canonicalInt(tok Token) Token {
	if v, err := strconv.ParseInt(tok.Literal, 10, 64); err == nil {
		tok.Literal = strconv.FormatInt(v, 10)
	}
	return tok
}

// canonicalDouble rewrites a double literal to its shortest
// round-trippable rendering.
func canonicalDouble(tok Token) Token {
	if v, err := strconv.ParseFloat(tok.Literal, 64); err == nil {
		tok.Literal = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return tok
}
