// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"secrecy/internal/lsp"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "secrecy" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	// Create a new instance of the SecrecyHandler (the language-specific handler)
	secrecyHandler := lsp.NewSecrecyHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     secrecyHandler.Initialize,
		Initialized:                    secrecyHandler.Initialized,
		Shutdown:                       secrecyHandler.Shutdown,
		SetTrace:                       secrecyHandler.SetTrace,
		TextDocumentDidOpen:            secrecyHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           secrecyHandler.TextDocumentDidClose,
		TextDocumentDidChange:          secrecyHandler.TextDocumentDidChange,
		TextDocumentCompletion:         secrecyHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: secrecyHandler.TextDocumentSemanticTokensFull,
	}

	// Create a new GLSP (Go Language Server Protocol) server instance
	// Parameters:
	// - handler: the protocol handler struct
	// - name: the language server name (shown to clients)
	// - debug: whether to enable internal GLSP debug logs
	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting secrecy LSP server...")

	// Start the server over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting secrecy LSP server:", err)
		os.Exit(1)
	}
}
