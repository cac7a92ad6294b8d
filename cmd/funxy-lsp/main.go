// Command funxy-lsp is the stdio language server binary: a
// Content-Length-framed JSON-RPC transport wrapping internal/lsp.Server,
// grounded in the teacher's cmd/lsp/server.go read loop and protocol.go
// wire types.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/corelang/funl/internal/config"
	"github.com/corelang/funl/internal/frontend"
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/lsp"
	"github.com/corelang/funl/internal/prelude"
)

func main() {
	config.IsLSPMode = true

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "funxy-lsp: refusing to start on a terminal; launch it from an editor, not a shell")
		os.Exit(1)
	}

	cfg, err := config.LoadLSPConfig("funxy-lsp.yaml")
	if err != nil {
		log.Printf("funxy-lsp: ignoring unreadable funxy-lsp.yaml: %v", err)
		cfg = config.DefaultLSPConfig()
	}

	_, modules := prelude.Build()

	ls := newLanguageServer(os.Stdout, modules, cfg)
	go ls.server.Run(func(rec interface{}) {
		log.Printf("funxy-lsp: recovered panic in reactor: %v", rec)
	})
	defer ls.server.Stop()

	ls.start(os.Stdin)
}

// languageServer is the wire-level adapter: it owns the transport and
// the completion source, and handles per-request metadata such as
// request IDs (a wire concept); the open-document table lives in the LSP
// core's Server.
type languageServer struct {
	server           *lsp.Server
	writer           io.Writer
	completionSource moduleCompletionSource
}

func newLanguageServer(w io.Writer, modules prelude.ModuleMap, cfg config.LSPConfig) *languageServer {
	ls := &languageServer{writer: w, completionSource: moduleCompletionSource{modules: modules}}

	parseAndInfer := func(formals []string, src string) lsp.ParseResult {
		result, diags := frontend.ParseAndInfer(modules, formals, src, nil)
		if diags != nil {
			return lsp.ParseResult{Diagnostics: diags}
		}
		hovers := make([]lsp.HoverEntry, 0, len(result.HoverRanges))
		for _, h := range result.HoverRanges {
			hovers = append(hovers, lsp.HoverEntry{Range: h.Range, Label: h.Label})
		}
		return lsp.ParseResult{HoverRanges: hovers}
	}

	sink := lsp.NewTransportDiagnosticsSink(ls, "funxy", cfg.MaxDiagnosticsPerPublish)
	ls.server = lsp.NewServer(parseAndInfer, sink, nil, cfg.HoverIndexLRU)
	return ls
}

// SendNotification implements lsp.Transport.
func (s *languageServer) SendNotification(method string, params interface{}) error {
	return s.sendMessage(lsp.NotificationMessage{Jsonrpc: "2.0", Method: method, Params: params})
}

func (s *languageServer) sendResponse(id interface{}, result interface{}, rerr *lsp.Error) error {
	return s.sendMessage(lsp.ResponseMessage{Jsonrpc: "2.0", ID: id, Result: result, Error: rerr})
}

func (s *languageServer) sendMessage(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.writer, "Content-Length: %d\r\n\r\n%s", len(data), data)
	return err
}

// start runs the Content-Length-framed read loop against r, blocking
// until EOF or a fatal framing error.
func (s *languageServer) start(r io.Reader) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				log.Printf("funxy-lsp: error reading header: %v", err)
			}
			return
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "Content-Length: ") {
			continue
		}
		length, err := strconv.Atoi(strings.TrimPrefix(line, "Content-Length: "))
		if err != nil {
			log.Printf("funxy-lsp: bad Content-Length: %v", err)
			continue
		}
		for {
			sep, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			if strings.TrimRight(sep, "\r\n") == "" {
				break
			}
		}
		body := make([]byte, length)
		if _, err := io.ReadFull(reader, body); err != nil {
			log.Printf("funxy-lsp: error reading body: %v", err)
			return
		}
		if err := s.handleMessage(body); err != nil {
			log.Printf("funxy-lsp: error handling message: %v", err)
		}
	}
}

type baseMessage struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func decodeParams[T any](raw json.RawMessage) (T, error) {
	var p T
	if len(raw) == 0 {
		return p, nil
	}
	err := json.Unmarshal(raw, &p)
	return p, err
}

func (s *languageServer) handleMessage(content []byte) error {
	var msg baseMessage
	if err := json.Unmarshal(content, &msg); err != nil {
		return fmt.Errorf("unmarshal message: %w", err)
	}
	if msg.ID != nil {
		return s.handleRequest(msg)
	}
	return s.handleNotification(msg)
}

const methodNotFound = -32601

func (s *languageServer) handleRequest(msg baseMessage) error {
	switch msg.Method {
	case "initialize":
		return s.sendResponse(msg.ID, lsp.InitializeResult{
			Capabilities: lsp.ServerCapabilities{
				TextDocumentSync: 2, // Incremental, per SPEC_FULL.md's wire-capability note
				HoverProvider:    true,
				CompletionProvider: &lsp.CompletionOptions{
					TriggerCharacters: []string{".", "?"},
				},
			},
		}, nil)

	case "shutdown":
		return s.sendResponse(msg.ID, nil, nil)

	case "textDocument/hover":
		params, err := decodeParams[lsp.HoverParams](msg.Params)
		if err != nil {
			return err
		}
		return s.handleHover(msg.ID, params)

	case "textDocument/definition":
		params, err := decodeParams[lsp.DefinitionParams](msg.Params)
		if err != nil {
			return err
		}
		return s.handleDefinition(msg.ID, params)

	case "textDocument/completion":
		params, err := decodeParams[lsp.CompletionParams](msg.Params)
		if err != nil {
			return err
		}
		return s.handleCompletion(msg.ID, params)

	case "textDocument/formatting":
		// Declared unsupported per SPEC_FULL.md's definition/formatting
		// expansion, matching the teacher's own "currently disabled" stance.
		return s.sendResponse(msg.ID, nil, &lsp.Error{
			Code:    methodNotFound,
			Message: fmt.Sprintf("method not found: %s", msg.Method),
		})

	default:
		return s.sendResponse(msg.ID, nil, &lsp.Error{
			Code:    methodNotFound,
			Message: fmt.Sprintf("method not found: %s", msg.Method),
		})
	}
}

func (s *languageServer) handleNotification(msg baseMessage) error {
	switch msg.Method {
	case "initialized":
		return nil

	case "textDocument/didOpen":
		params, err := decodeParams[lsp.DidOpenTextDocumentParams](msg.Params)
		if err != nil {
			return err
		}
		s.server.DidOpen(params.TextDocument.URI, params.TextDocument.Text)
		return nil

	case "textDocument/didChange":
		params, err := decodeParams[lsp.DidChangeTextDocumentParams](msg.Params)
		if err != nil {
			return err
		}
		if len(params.ContentChanges) == 0 {
			return nil
		}
		text := params.ContentChanges[len(params.ContentChanges)-1].Text
		s.server.DidChange(params.TextDocument.URI, params.TextDocument.Version, text)
		return nil

	case "textDocument/didClose":
		params, err := decodeParams[lsp.DidCloseTextDocumentParams](msg.Params)
		if err != nil {
			return err
		}
		s.server.DidClose(params.TextDocument.URI)
		return nil

	case "exit":
		os.Exit(0)
		return nil

	default:
		return nil
	}
}

func (s *languageServer) handleHover(id interface{}, params lsp.HoverParams) error {
	pos := langerr.Position{Line: params.Position.Line, Character: params.Position.Character}
	entry, ok := s.server.HoverAt(params.TextDocument.URI, pos)
	if !ok {
		return s.sendResponse(id, nil, nil)
	}
	return s.sendResponse(id, lsp.Hover{
		Contents: lsp.MarkupContent{Kind: "plaintext", Value: entry.Label},
	}, nil)
}

func (s *languageServer) handleDefinition(id interface{}, params lsp.DefinitionParams) error {
	pos := langerr.Position{Line: params.Position.Line, Character: params.Position.Character}
	def, ok := s.server.DefinitionAt(params.TextDocument.URI, pos)
	if !ok {
		return s.sendResponse(id, nil, nil)
	}
	return s.sendResponse(id, lsp.Location{
		URI: def.URI,
		Range: lsp.Range{
			Start: lsp.Position{Line: def.Range.Start.Line, Character: def.Range.Start.Character},
			End:   lsp.Position{Line: def.Range.End.Line, Character: def.Range.End.Character},
		},
	}, nil)
}

func (s *languageServer) handleCompletion(id interface{}, params lsp.CompletionParams) error {
	text, ok := s.server.DocumentText(params.TextDocument.URI)
	prefix := ""
	if ok {
		lines := strings.Split(text, "\n")
		if params.Position.Line >= 0 && params.Position.Line < len(lines) {
			prefix = lsp.CompletionPrefix(lines[params.Position.Line], params.Position.Character)
		}
	}

	items := s.server.Complete(s.completionSource, prefix)
	wire := make([]lsp.CompletionItemWire, 0, len(items))
	for _, it := range items {
		wire = append(wire, lsp.CompletionItemWire{Label: it.Label, Kind: lsp.CompletionItemFunction})
	}
	return s.sendResponse(id, lsp.CompletionList{Items: wire}, nil)
}

// moduleCompletionSource implements lsp.CompletionSource over the
// prelude's reserved words and module map.
type moduleCompletionSource struct {
	modules prelude.ModuleMap
}

func (m moduleCompletionSource) ReservedWords() []string { return frontend.ReservedWords() }

func (m moduleCompletionSource) ModuleNames() []string {
	names := make([]string, 0, len(m.modules))
	for name := range m.modules {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (m moduleCompletionSource) PreludeIdents() []string {
	var idents []string
	for module, entries := range m.modules {
		for name := range entries {
			if module == "" {
				idents = append(idents, name)
			} else {
				idents = append(idents, module+"."+name)
			}
		}
	}
	return idents
}
