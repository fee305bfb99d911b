package parser

import "fmt"

// SyntaxError is fatal: the first one aborts the parse and no tree is
// produced. Its message carries the fixed "Error: syntax error" marker
// the batch harness greps for.
type SyntaxError struct {
	Line int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Error: syntax error at line %d", e.Line)
}

// LexicalError is diagnostic only: scanning resumes at the next
// character and any number of them may occur in one pass.
type LexicalError struct {
	Line int
	Msg  string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Error: %s at line %d", e.Msg, e.Line)
}

// ErrorHandler receives each lexical error as it is found. The default
// handler collects them on the parser for later retrieval.
type ErrorHandler func(*LexicalError)

func lexicalErrorFor(tok Token) *LexicalError {
	msg := fmt.Sprintf("unrecognized char '%s'", tok.Literal)
	if len(tok.Literal) > 0 {
		switch tok.Literal[0] {
		case '"':
			msg = "unterminated string constant"
		case '/':
			msg = "unterminated comment"
		}
	}
	return &LexicalError{Line: tok.Span.Start.Line, Msg: msg}
}
