package lsp

import (
	"bytes"
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/Maazi-78/Compiler/decaf/parser"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "decaf"

// Server speaks LSP over stdio and republishes the parser's
// diagnostics on every open, change, and save of a Decaf document.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	log     commonlog.Logger
}

func NewServer(version string) *Server {
	s := &Server{
		version: version,
		log:     commonlog.GetLogger("decaf.lsp"),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.publishDiagnostics(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.publishDiagnostics(ctx, params.TextDocument.URI, []byte(textChange.Text))
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.publishDiagnostics(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

// publishDiagnostics parses content and pushes one diagnostic per
// lexical error plus, when the parse fails, one for the syntax error.
func (s *Server) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, content []byte) {
	file := uriToPath(string(uri))

	diagnostics := []protocol.Diagnostic{}
	_, err := parser.ParseProgram(bytes.NewReader(content),
		parser.WithFile(file),
		parser.WithErrorHandler(func(lexErr *parser.LexicalError) {
			diagnostics = append(diagnostics, diagnosticAt(lexErr.Line, lexErr.Error()))
		}))

	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		diagnostics = append(diagnostics, diagnosticAt(syntaxErr.Line, syntaxErr.Error()))
	}

	s.log.Debugf("%s: %d diagnostics", file, len(diagnostics))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func diagnosticAt(line int, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	if line < 1 {
		line = 1
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line - 1), Character: 0},
			End:   protocol.Position{Line: protocol.UInteger(line - 1), Character: 0},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if parsed, err := url.Parse(uri); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
