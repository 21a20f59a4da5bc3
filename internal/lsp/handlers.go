package lsp

import (
	"context"
	"encoding/json"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/signal-lang/sigc/internal/tooling"
)

// handleTextDocumentDidOpen handles document open notifications
func (s *Server) handleTextDocumentDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didOpen params")
	}

	docURI := string(params.TextDocument.URI)
	version := int(params.TextDocument.Version)

	s.logger.Debug("document opened", zap.String("uri", docURI), zap.Int("version", version))

	if _, err := s.api.UpdateDocument(docURI, params.TextDocument.Text, version); err != nil {
		s.logger.Warn("failed to analyze document", zap.String("uri", docURI), zap.Error(err))
	}

	s.publishDiagnostics(ctx, docURI)

	return reply(ctx, nil, nil)
}

// handleTextDocumentDidChange handles document change notifications
func (s *Server) handleTextDocumentDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didChange params")
	}

	if len(params.ContentChanges) == 0 {
		return reply(ctx, nil, nil)
	}

	docURI := string(params.TextDocument.URI)
	version := int(params.TextDocument.Version)

	// Full document sync: the last change holds the whole text
	content := params.ContentChanges[len(params.ContentChanges)-1].Text

	s.logger.Debug("document changed", zap.String("uri", docURI), zap.Int("version", version))

	if _, err := s.api.UpdateDocument(docURI, content, version); err != nil {
		s.logger.Warn("failed to analyze document", zap.String("uri", docURI), zap.Error(err))
	}

	s.publishDiagnostics(ctx, docURI)

	return reply(ctx, nil, nil)
}

// handleTextDocumentDidClose handles document close notifications
func (s *Server) handleTextDocumentDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didClose params")
	}

	docURI := string(params.TextDocument.URI)
	s.logger.Debug("document closed", zap.String("uri", docURI))

	s.api.CloseDocument(docURI)

	// Clear stale markers in the editor
	s.publish(ctx, docURI, []protocol.Diagnostic{})

	return reply(ctx, nil, nil)
}

// handleTextDocumentDidSave handles document save notifications
func (s *Server) handleTextDocumentDidSave(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidSaveTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse didSave params")
	}

	docURI := string(params.TextDocument.URI)
	s.logger.Debug("document saved", zap.String("uri", docURI))

	s.publishDiagnostics(ctx, docURI)

	return reply(ctx, nil, nil)
}

// handleTextDocumentDocumentSymbol handles document symbol requests
func (s *Server) handleTextDocumentDocumentSymbol(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DocumentSymbolParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse document symbol params")
	}

	symbols, err := s.api.GetDocumentSymbols(string(params.TextDocument.URI))
	if err != nil {
		s.logger.Warn("failed to get document symbols", zap.Error(err))
		return s.replyWithError(ctx, reply, jsonrpc2.InternalError, "Failed to get document symbols")
	}

	lspSymbols := make([]protocol.DocumentSymbol, 0, len(symbols))
	for _, sym := range symbols {
		lspSymbols = append(lspSymbols, protocol.DocumentSymbol{
			Name:           sym.Name,
			Kind:           convertSymbolKind(sym.Kind),
			Detail:         sym.Detail,
			Range:          convertRange(sym.Range),
			SelectionRange: convertRange(sym.Range),
		})
	}

	return reply(ctx, lspSymbols, nil)
}

// publishDiagnostics publishes the current diagnostics of a document
func (s *Server) publishDiagnostics(ctx context.Context, docURI string) {
	diagnostics := s.api.GetDiagnostics(docURI)

	lspDiagnostics := make([]protocol.Diagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		lspDiagnostics = append(lspDiagnostics, protocol.Diagnostic{
			Range:    convertRange(d.Range),
			Severity: convertSeverity(d.Severity),
			Code:     d.Code,
			Source:   d.Source,
			Message:  d.Message,
		})
	}

	s.publish(ctx, docURI, lspDiagnostics)
}

func (s *Server) publish(ctx context.Context, docURI string, diagnostics []protocol.Diagnostic) {
	params := protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(docURI),
		Diagnostics: diagnostics,
	}

	if err := s.client.PublishDiagnostics(ctx, &params); err != nil {
		s.logger.Warn("failed to publish diagnostics", zap.String("uri", docURI), zap.Error(err))
	}
}

func convertRange(r tooling.Range) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(r.Start.Line),
			Character: uint32(r.Start.Character),
		},
		End: protocol.Position{
			Line:      uint32(r.End.Line),
			Character: uint32(r.End.Character),
		},
	}
}

// convertSeverity converts tooling diagnostic severity to LSP severity
func convertSeverity(severity tooling.DiagnosticSeverity) protocol.DiagnosticSeverity {
	switch severity {
	case tooling.DiagnosticSeverityError:
		return protocol.DiagnosticSeverityError
	case tooling.DiagnosticSeverityWarning:
		return protocol.DiagnosticSeverityWarning
	case tooling.DiagnosticSeverityInfo:
		return protocol.DiagnosticSeverityInformation
	case tooling.DiagnosticSeverityHint:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func convertSymbolKind(kind tooling.SymbolKind) protocol.SymbolKind {
	switch kind {
	case tooling.SymbolKindProgram:
		return protocol.SymbolKindModule
	case tooling.SymbolKindProcedure:
		return protocol.SymbolKindFunction
	case tooling.SymbolKindLabel:
		return protocol.SymbolKindConstant
	default:
		return protocol.SymbolKindObject
	}
}
