// Package lsp implements a Language Server Protocol server for Signal.
// It publishes lexical and syntax diagnostics as documents change and
// answers document symbol requests.
package lsp

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync/atomic"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"

	"github.com/signal-lang/sigc/internal/tooling"
)

// ServerName is reported to clients during initialization
const ServerName = "sigc-lsp"

// Server implements the LSP server for Signal
type Server struct {
	// api holds open documents and their analyses
	api *tooling.API

	// conn is the JSON-RPC connection
	conn jsonrpc2.Conn

	// client is the LSP client interface
	client protocol.Client

	logger *zap.Logger

	// version is reported in ServerInfo
	version string

	// workspaceRoot is the root directory of the workspace
	workspaceRoot string

	// Server capabilities
	capabilities protocol.ServerCapabilities

	// shutdown is set once the client requested shutdown
	shutdown atomic.Bool

	// cancel is used to signal server shutdown
	cancel context.CancelFunc
}

// NewServer creates a new LSP server instance. A nil logger disables logging.
func NewServer(logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		api:     tooling.NewAPI(logger.Named("tooling")),
		logger:  logger,
		version: version,
		capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
				Save: &protocol.SaveOptions{
					IncludeText: false,
				},
			},
			DocumentSymbolProvider: true,
		},
	}
}

// Run serves LSP over stdin/stdout until ctx is cancelled or the client exits
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, stdrwc{})
}

// Serve serves LSP over rwc until ctx is cancelled, the client sends exit,
// or the connection closes
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	s.logger.Info("starting Signal language server", zap.String("version", s.version))

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	defer cancel()

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	s.conn = conn
	s.client = protocol.ClientDispatcher(conn, s.logger.Named("client"))

	conn.Go(ctx, s.handler())

	select {
	case <-ctx.Done():
	case <-conn.Done():
		s.logger.Info("connection closed")
		return nil
	}

	s.logger.Info("shutting down Signal language server")
	return conn.Close()
}

// handler returns the JSON-RPC handler function
func (s *Server) handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.logger.Debug("received", zap.String("method", req.Method()))

		if s.shutdown.Load() && req.Method() != protocol.MethodExit {
			return s.replyWithError(ctx, reply, jsonrpc2.InvalidRequest, "Server is shutting down")
		}

		switch req.Method() {
		case protocol.MethodInitialize:
			return s.handleInitialize(ctx, reply, req)
		case protocol.MethodInitialized:
			return s.handleInitialized(ctx, reply, req)
		case protocol.MethodShutdown:
			return s.handleShutdown(ctx, reply, req)
		case protocol.MethodExit:
			return s.handleExit(ctx, reply, req)
		case protocol.MethodTextDocumentDidOpen:
			return s.handleTextDocumentDidOpen(ctx, reply, req)
		case protocol.MethodTextDocumentDidChange:
			return s.handleTextDocumentDidChange(ctx, reply, req)
		case protocol.MethodTextDocumentDidClose:
			return s.handleTextDocumentDidClose(ctx, reply, req)
		case protocol.MethodTextDocumentDidSave:
			return s.handleTextDocumentDidSave(ctx, reply, req)
		case protocol.MethodTextDocumentDocumentSymbol:
			return s.handleTextDocumentDocumentSymbol(ctx, reply, req)
		default:
			return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
		}
	}
}

// handleInitialize handles the initialize request
func (s *Server) handleInitialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.InitializeParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyWithError(ctx, reply, jsonrpc2.InvalidParams, "Failed to parse initialize params")
	}

	if params.ClientInfo != nil {
		s.logger.Info("initialize", zap.String("client", params.ClientInfo.Name))
	}

	if len(params.WorkspaceFolders) > 0 {
		s.workspaceRoot = uri.URI(params.WorkspaceFolders[0].URI).Filename()
	} else if params.RootURI != "" {
		s.workspaceRoot = params.RootURI.Filename()
	} else if params.RootPath != "" {
		s.workspaceRoot = params.RootPath
	}
	if s.workspaceRoot != "" {
		s.logger.Info("workspace root set", zap.String("root", s.workspaceRoot))
	}

	result := protocol.InitializeResult{
		Capabilities: s.capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    ServerName,
			Version: s.version,
		},
	}

	return reply(ctx, result, nil)
}

// handleInitialized handles the initialized notification
func (s *Server) handleInitialized(ctx context.Context, reply jsonrpc2.Replier, _ jsonrpc2.Request) error {
	s.logger.Debug("client initialized")
	return reply(ctx, nil, nil)
}

// handleShutdown handles the shutdown request
func (s *Server) handleShutdown(ctx context.Context, reply jsonrpc2.Replier, _ jsonrpc2.Request) error {
	s.logger.Info("shutdown requested")
	s.shutdown.Store(true)
	s.api.CloseAll()
	return reply(ctx, nil, nil)
}

// handleExit handles the exit notification
func (s *Server) handleExit(ctx context.Context, reply jsonrpc2.Replier, _ jsonrpc2.Request) error {
	s.logger.Info("exit requested")
	if err := reply(ctx, nil, nil); err != nil {
		s.logger.Warn("failed to reply to exit", zap.Error(err))
	}
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// replyWithError sends an LSP-compliant error response
func (s *Server) replyWithError(ctx context.Context, reply jsonrpc2.Replier, code jsonrpc2.Code, message string) error {
	return reply(ctx, nil, &jsonrpc2.Error{
		Code:    code,
		Message: message,
	})
}

// stdrwc implements io.ReadWriteCloser for stdin/stdout
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
