// Package tooling provides a programmatic API for IDE integration via LSP.
// It keeps per-document analysis results and converts diagnostics and
// symbols into editor-friendly, zero-based positions.
package tooling

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/signal-lang/sigc/internal/compiler/cache"
	"github.com/signal-lang/sigc/internal/compiler/errors"
	"github.com/signal-lang/sigc/internal/compiler/parser"
)

// DiagnosticSource identifies sigc diagnostics in editors
const DiagnosticSource = "sigc"

// API provides thread-safe access to the analyzer for IDE integration
type API struct {
	documents map[string]*Document
	docsMutex sync.RWMutex

	// results is keyed by URI and validated by content hash
	results *cache.ResultCache
	hasher  *cache.FileHasher

	parser *parser.Parser
	logger *zap.Logger
}

// Document is an open document and its latest analysis
type Document struct {
	// URI is the document identifier
	URI string

	// Content is the raw source code
	Content string

	// Version tracks document changes
	Version int

	// AnalysisID identifies the analysis run that produced Result
	AnalysisID string

	// Result holds tokens, tree and diagnostics
	Result *parser.Result

	// Symbols lists the named entities found in the tree
	Symbols []*Symbol
}

// Position represents a position in a document (zero-based for LSP compatibility)
type Position struct {
	Line      int // Zero-based line number
	Character int // Zero-based character offset
}

// Range represents a range in a document
type Range struct {
	Start Position
	End   Position
}

// Diagnostic represents an analysis error in editor coordinates
type Diagnostic struct {
	Range    Range
	Severity DiagnosticSeverity
	Code     string
	Message  string
	Source   string
}

// DiagnosticSeverity indicates the severity of a diagnostic
type DiagnosticSeverity int

const (
	// DiagnosticSeverityError represents an error diagnostic
	DiagnosticSeverityError DiagnosticSeverity = iota
	// DiagnosticSeverityWarning represents a warning diagnostic
	DiagnosticSeverityWarning
	// DiagnosticSeverityInfo represents an informational diagnostic
	DiagnosticSeverityInfo
	// DiagnosticSeverityHint represents a hint diagnostic
	DiagnosticSeverityHint
)

// NewAPI creates a tooling API. A nil logger disables logging.
func NewAPI(logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		documents: make(map[string]*Document),
		results:   cache.NewResultCache(),
		hasher:    cache.NewFileHasher(),
		parser:    parser.New(parser.WithLogger(logger.Named("parser"))),
		logger:    logger,
	}
}

// ParseFile analyzes content and stores it as version 1 of uri
func (a *API) ParseFile(uri, content string) (*Document, error) {
	return a.UpdateDocument(uri, content, 1)
}

// UpdateDocument analyzes new content for uri. Unchanged content reuses the
// cached analysis and only bumps the version.
func (a *API) UpdateDocument(uri, content string, version int) (*Document, error) {
	if uri == "" {
		return nil, fmt.Errorf("document URI must not be empty")
	}

	hash := a.hasher.HashString(content)

	a.docsMutex.Lock()
	defer a.docsMutex.Unlock()

	if old, exists := a.documents[uri]; exists {
		if result, ok := a.results.Lookup(uri, hash); ok && old.Result == result {
			// Documents already handed out are never mutated
			updated := *old
			updated.Version = version
			a.documents[uri] = &updated
			a.results.Touch(uri)
			return &updated, nil
		}
	}

	var doc *Document
	if shared, ok := a.results.GetByHash(hash); ok {
		doc = a.reuse(uri, content, shared.Result)
	} else {
		doc = a.analyze(uri, content)
	}
	doc.Version = version
	a.results.Set(uri, doc.Result, hash)
	a.documents[uri] = doc

	return doc, nil
}

func (a *API) analyze(uri, content string) *Document {
	id := uuid.NewString()
	result := a.parser.ParseSource(content)

	a.logger.Debug("document analyzed",
		zap.String("uri", uri),
		zap.String("analysis_id", id),
		zap.Int("tokens", len(result.Tokens)),
		zap.Int("diagnostics", result.Diagnostics.Len()))

	return &Document{
		URI:        uri,
		Content:    content,
		AnalysisID: id,
		Result:     result,
		Symbols:    extractSymbols(result),
	}
}

// reuse builds a document around a result computed for identical content
// under another URI
func (a *API) reuse(uri, content string, result *parser.Result) *Document {
	id := uuid.NewString()
	a.logger.Debug("reusing analysis",
		zap.String("uri", uri),
		zap.String("analysis_id", id))

	return &Document{
		URI:        uri,
		Content:    content,
		AnalysisID: id,
		Result:     result,
		Symbols:    extractSymbols(result),
	}
}

// GetDocument retrieves an open document
func (a *API) GetDocument(uri string) (*Document, bool) {
	a.docsMutex.RLock()
	defer a.docsMutex.RUnlock()

	doc, exists := a.documents[uri]
	return doc, exists
}

// CloseDocument forgets a document and its cached analysis
func (a *API) CloseDocument(uri string) {
	a.docsMutex.Lock()
	delete(a.documents, uri)
	a.docsMutex.Unlock()

	a.results.Invalidate(uri)
}

// CloseAll forgets every document and cached analysis
func (a *API) CloseAll() {
	a.docsMutex.Lock()
	a.documents = make(map[string]*Document)
	a.docsMutex.Unlock()

	a.results.InvalidateAll()
}

// GetDiagnostics returns diagnostics for a document in editor coordinates
func (a *API) GetDiagnostics(uri string) []Diagnostic {
	doc, exists := a.GetDocument(uri)
	if !exists {
		return nil
	}

	list := doc.Result.Diagnostics.Diagnostics()
	diagnostics := make([]Diagnostic, 0, len(list))
	for _, d := range list {
		diagnostics = append(diagnostics, Diagnostic{
			Range:    diagnosticRange(d, doc.Content),
			Severity: convertSeverity(d.Severity),
			Code:     string(d.Code),
			Message:  d.Message,
			Source:   DiagnosticSource,
		})
	}

	return diagnostics
}

// GetDocumentSymbols returns the symbols of a document
func (a *API) GetDocumentSymbols(uri string) ([]*Symbol, error) {
	doc, exists := a.GetDocument(uri)
	if !exists {
		return nil, fmt.Errorf("document not found: %s", uri)
	}
	return doc.Symbols, nil
}

// diagnosticRange spans the offending token, or the end of the document for
// end-of-input diagnostics
func diagnosticRange(d *errors.Diagnostic, content string) Range {
	if d.Location.IsZero() {
		end := endOfContent(content)
		return Range{Start: end, End: end}
	}

	start := Position{Line: d.Location.Line - 1, Character: d.Location.Column - 1}
	width := utf8.RuneCountInString(d.Actual)
	if width == 0 {
		width = 1
	}
	return Range{
		Start: start,
		End:   Position{Line: start.Line, Character: start.Character + width},
	}
}

func endOfContent(content string) Position {
	pos := Position{}
	for _, r := range content {
		if r == '\n' {
			pos.Line++
			pos.Character = 0
		} else {
			pos.Character++
		}
	}
	return pos
}

func convertSeverity(severity errors.ErrorSeverity) DiagnosticSeverity {
	if severity == errors.SeverityWarning {
		return DiagnosticSeverityWarning
	}
	return DiagnosticSeverityError
}
