package workspace

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/arith/arith/compiler"
	"github.com/dhamidi/arith/arith/parser"
)

const lsName = "arith"

type LSPServer struct {
	workspace *Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
	log       commonlog.Logger
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		workspace: New("."),
		version:   version,
		log:       commonlog.GetLogger("arith.lsp"),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.workspace = New(rootDir)
	ls.log.Infof("initialize: root %s", rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.workspace.ScanAll(context.Background()); err != nil {
		ls.log.Warningf("scan %s: %v", ls.workspace.RootDir(), err)
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	file := ls.workspace.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publish(ctx, params.TextDocument.URI, file.Report)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			file := ls.workspace.UpdateFile(path, []byte(textChange.Text))
			ls.publish(ctx, params.TextDocument.URI, file.Report)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.workspace.UpdateFile(path, []byte(*params.Text))
	} else if err := ls.workspace.ScanFile(context.Background(), path); err != nil {
		ls.log.Warningf("save: %v", err)
		return nil
	}
	if file := ls.workspace.GetFile(path); file != nil {
		ls.publish(ctx, params.TextDocument.URI, file.Report)
	}
	return nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.workspace.GetFile(path)
	if file == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: hoverText(file.Report),
		},
	}, nil
}

func hoverText(r *compiler.Report) string {
	lines := r.Lines()
	return lines[len(lines)-1].Text
}

func (ls *LSPServer) publish(ctx *glsp.Context, uri protocol.DocumentUri, r *compiler.Report) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: toProtocolDiagnostics(r),
	})
}

func toProtocolDiagnostics(r *compiler.Report) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	source := lsName
	for _, d := range r.Diagnostics {
		severity := protocol.DiagnosticSeverityError
		if d.Stage == parser.StageParser && r.Value.Valid() {
			severity = protocol.DiagnosticSeverityWarning
		}
		diags = append(diags, protocol.Diagnostic{
			Range:    toProtocolRange(d.Span),
			Severity: &severity,
			Source:   &source,
			Message:  d.String(),
		})
	}
	return diags
}

func toProtocolRange(span parser.Span) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(span.Start),
		End:   toProtocolPosition(span.End),
	}
}

func toProtocolPosition(pos parser.Position) protocol.Position {
	line, column := pos.Line-1, pos.Column-1
	if line < 0 {
		line = 0
	}
	if column < 0 {
		column = 0
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(column),
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
