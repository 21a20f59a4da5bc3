package lsp

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/signal-lang/sigc/internal/tooling"
)

const testTimeout = 5 * time.Second

// testClient drives a Server over an in-memory pipe
type testClient struct {
	conn        jsonrpc2.Conn
	diagnostics chan protocol.PublishDiagnosticsParams
	done        chan error
	cancel      context.CancelFunc
}

func startServer(t *testing.T) (*Server, *testClient) {
	t.Helper()

	serverSide, clientSide := net.Pipe()
	server := NewServer(nil, "test")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, serverSide)
	}()

	client := &testClient{
		conn:        jsonrpc2.NewConn(jsonrpc2.NewStream(clientSide)),
		diagnostics: make(chan protocol.PublishDiagnosticsParams, 16),
		done:        done,
		cancel:      cancel,
	}
	client.conn.Go(ctx, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if req.Method() == protocol.MethodTextDocumentPublishDiagnostics {
			var params protocol.PublishDiagnosticsParams
			if err := json.Unmarshal(req.Params(), &params); err == nil {
				client.diagnostics <- params
			}
		}
		return reply(ctx, nil, nil)
	})

	t.Cleanup(func() {
		cancel()
		_ = client.conn.Close()
	})

	return server, client
}

func (c *testClient) call(t *testing.T, method string, params, result interface{}) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	_, err := c.conn.Call(ctx, method, params, result)
	return err
}

func (c *testClient) notify(t *testing.T, method string, params interface{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	require.NoError(t, c.conn.Notify(ctx, method, params))
}

func (c *testClient) nextDiagnostics(t *testing.T) protocol.PublishDiagnosticsParams {
	t.Helper()
	select {
	case params := <-c.diagnostics:
		return params
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for diagnostics")
		return protocol.PublishDiagnosticsParams{}
	}
}

func openDocument(t *testing.T, c *testClient, docURI protocol.DocumentURI, text string) {
	t.Helper()
	c.notify(t, protocol.MethodTextDocumentDidOpen, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        docURI,
			LanguageID: "signal",
			Version:    1,
			Text:       text,
		},
	})
}

func TestNewServer(t *testing.T) {
	server := NewServer(nil, "1.2.3")
	require.NotNil(t, server)

	assert.NotNil(t, server.api)
	assert.NotNil(t, server.logger)
	assert.Equal(t, "1.2.3", server.version)
	assert.Equal(t, true, server.capabilities.DocumentSymbolProvider)
}

func TestServer_Initialize(t *testing.T) {
	server, client := startServer(t)

	var result protocol.InitializeResult
	err := client.call(t, protocol.MethodInitialize, &protocol.InitializeParams{
		RootURI: protocol.DocumentURI(uri.File("/work/signal")),
	}, &result)
	require.NoError(t, err)

	require.NotNil(t, result.ServerInfo)
	assert.Equal(t, ServerName, result.ServerInfo.Name)
	assert.Equal(t, "test", result.ServerInfo.Version)
	assert.Equal(t, "/work/signal", server.workspaceRoot)
}

func TestServer_PublishesSyntaxDiagnostics(t *testing.T) {
	_, client := startServer(t)
	docURI := protocol.DocumentURI("file:///work/main.sig")

	openDocument(t, client, docURI, "PROGRAM Main\nBEGIN END.")

	params := client.nextDiagnostics(t)
	assert.Equal(t, docURI, params.URI)
	require.Len(t, params.Diagnostics, 1)

	d := params.Diagnostics[0]
	assert.Equal(t, "';' expected but 'BEGIN' found", d.Message)
	assert.Equal(t, tooling.DiagnosticSource, d.Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, d.Severity)
	assert.Equal(t, uint32(1), d.Range.Start.Line)
	assert.Equal(t, uint32(0), d.Range.Start.Character)
}

func TestServer_DidChangeClearsDiagnostics(t *testing.T) {
	_, client := startServer(t)
	docURI := protocol.DocumentURI("file:///work/main.sig")

	openDocument(t, client, docURI, "PROGRAM Main BEGIN END.")
	require.Len(t, client.nextDiagnostics(t).Diagnostics, 1)

	client.notify(t, protocol.MethodTextDocumentDidChange, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: docURI},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{
			{Text: "PROGRAM Main; BEGIN END."},
		},
	})

	assert.Empty(t, client.nextDiagnostics(t).Diagnostics)
}

func TestServer_DidCloseForgetsDocument(t *testing.T) {
	server, client := startServer(t)
	docURI := protocol.DocumentURI("file:///work/main.sig")

	openDocument(t, client, docURI, "PROGRAM Main BEGIN END.")
	client.nextDiagnostics(t)

	client.notify(t, protocol.MethodTextDocumentDidClose, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	})

	assert.Empty(t, client.nextDiagnostics(t).Diagnostics)
	_, exists := server.api.GetDocument(string(docURI))
	assert.False(t, exists)
}

func TestServer_DocumentSymbols(t *testing.T) {
	_, client := startServer(t)
	docURI := protocol.DocumentURI("file:///work/main.sig")

	openDocument(t, client, docURI, "PROGRAM Main;\nLABEL 10;\nBEGIN\nEND.")
	client.nextDiagnostics(t)

	var symbols []protocol.DocumentSymbol
	err := client.call(t, protocol.MethodTextDocumentDocumentSymbol, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	}, &symbols)
	require.NoError(t, err)

	require.Len(t, symbols, 2)
	assert.Equal(t, "Main", symbols[0].Name)
	assert.Equal(t, protocol.SymbolKindModule, symbols[0].Kind)
	assert.Equal(t, "10", symbols[1].Name)
	assert.Equal(t, protocol.SymbolKindConstant, symbols[1].Kind)
	assert.Equal(t, uint32(1), symbols[1].Range.Start.Line)
}

func TestServer_UnknownMethod(t *testing.T) {
	_, client := startServer(t)

	err := client.call(t, protocol.MethodTextDocumentHover, &protocol.HoverParams{}, nil)
	assert.Error(t, err)
}

func TestServer_ShutdownAndExit(t *testing.T) {
	server, client := startServer(t)
	docURI := protocol.DocumentURI("file:///work/main.sig")

	openDocument(t, client, docURI, "PROGRAM Main; BEGIN END.")
	client.nextDiagnostics(t)

	require.NoError(t, client.call(t, protocol.MethodShutdown, nil, nil))

	_, exists := server.api.GetDocument(string(docURI))
	assert.False(t, exists)

	err := client.call(t, protocol.MethodTextDocumentDocumentSymbol, &protocol.DocumentSymbolParams{}, nil)
	assert.Error(t, err)

	client.notify(t, protocol.MethodExit, nil)

	select {
	case err := <-client.done:
		assert.NoError(t, err)
	case <-time.After(testTimeout):
		t.Fatal("server did not stop after exit")
	}
}

func TestConvertSeverity(t *testing.T) {
	tests := []struct {
		name     string
		input    tooling.DiagnosticSeverity
		expected protocol.DiagnosticSeverity
	}{
		{"Error severity", tooling.DiagnosticSeverityError, protocol.DiagnosticSeverityError},
		{"Warning severity", tooling.DiagnosticSeverityWarning, protocol.DiagnosticSeverityWarning},
		{"Info severity", tooling.DiagnosticSeverityInfo, protocol.DiagnosticSeverityInformation},
		{"Hint severity", tooling.DiagnosticSeverityHint, protocol.DiagnosticSeverityHint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, convertSeverity(tt.input))
		})
	}
}

func TestConvertSymbolKind(t *testing.T) {
	assert.Equal(t, protocol.SymbolKindModule, convertSymbolKind(tooling.SymbolKindProgram))
	assert.Equal(t, protocol.SymbolKindFunction, convertSymbolKind(tooling.SymbolKindProcedure))
	assert.Equal(t, protocol.SymbolKindConstant, convertSymbolKind(tooling.SymbolKindLabel))
}
