package lsp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"secrecy/internal/ast"
	"secrecy/internal/parser"
	"secrecy/internal/secrecy"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"typeParameter",
	"function",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"operator",
	"modifier",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
	"deprecated",
	"abstract",
}

// SecrecyHandler implements the LSP server handlers for the secrecy checker.
type SecrecyHandler struct {
	mu      sync.RWMutex
	content map[string]string
	models  map[string]*ast.Model
}

// NewSecrecyHandler creates and returns a new SecrecyHandler instance
func NewSecrecyHandler() *SecrecyHandler {
	return &SecrecyHandler{
		content: make(map[string]string),
		models:  make(map[string]*ast.Model),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *SecrecyHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false), // no additional detail resolution yet
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *SecrecyHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("secrecy-lsp Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *SecrecyHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("secrecy-lsp Shutdown")
	return nil
}

// SetTrace handles the client's $/setTrace notification
func (h *SecrecyHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *SecrecyHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateModel(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update model: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *SecrecyHandler) TextDocumentDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.models, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *SecrecyHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateModel(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update model: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion handles completion requests (currently returns empty list)
func (h *SecrecyHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        []protocol.CompletionItem{},
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *SecrecyHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	model, err := h.getOrUpdateModel(ctx, path, rawURI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(model)

	var data []uint32
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

func (h *SecrecyHandler) getOrUpdateModel(ctx *glsp.Context, path string, rawURI protocol.DocumentUri) (*ast.Model, error) {
	h.mu.RLock()
	model, ok := h.models[path]
	h.mu.RUnlock()

	if !ok {
		diagnostics, err := h.updateModel(rawURI)
		if err != nil {
			return nil, err
		}

		h.mu.RLock()
		model = h.models[path]
		h.mu.RUnlock()

		sendDiagnosticNotification(ctx, rawURI, diagnostics)
	}

	return model, nil
}

// updateModel re-parses a document and runs the secrecy engine over it,
// caching the resulting model for subsequent requests (e.g. semantic
// tokens) and returning the diagnostics to publish: parse/scan errors
// when the source doesn't parse cleanly, secrecy findings otherwise.
func (h *SecrecyHandler) updateModel(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	model, parseErrs, scanErrs := parser.ParseSource(path, string(content))
	if len(parseErrs) > 0 || len(scanErrs) > 0 {
		var diagnostics []protocol.Diagnostic
		diagnostics = append(diagnostics, ConvertScanErrors(scanErrs)...)
		diagnostics = append(diagnostics, ConvertParseErrors(parseErrs)...)
		return diagnostics, nil
	}

	h.mu.Lock()
	h.content[path] = string(content)
	h.models[path] = model
	h.mu.Unlock()

	return ConvertSecrecyDiagnostics(secrecy.Run(model)), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	diagnosticsJSON, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		fmt.Println("Failed to marshal diagnostics:", err)
		return
	}

	log.Println("Sending diagnostics:", string(diagnosticsJSON))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
