// Package lsp implements the editor-facing core of spec.md §4.5/§4.6:
// document lifecycle handlers, a single-consumer reactor, and a hover
// index keyed by (uri, version). Parsing, inference and the wire
// transport's JSON-RPC framing are supplied by the host (internal/frontend
// for tests, cmd/funxy-lsp for the real binary).
package lsp

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/corelang/funl/internal/langerr"
)

// ParseResult is what a parseAndInfer collaborator reports back to the
// core: the hover ranges for the just-parsed text and any diagnostics.
// The elaborated expression and scheme are opaque to the core
// (spec.md §4.5) and are not part of this type.
type ParseResult struct {
	HoverRanges []HoverEntry
	Diagnostics []langerr.Diagnostic
}

// ParseAndInfer is the external collaborator's contract, supplied by
// the host at Server construction time.
type ParseAndInfer func(formals []string, src string) ParseResult

// BeforeParseHook and AfterParseHook are invoked around every parse
// attempt with a freshly generated UUID and the current UTC instant
// (spec.md §4.5).
type BeforeParseHook func(id string, utc time.Time)
type AfterParseHook func(id string, utc time.Time, result ParseResult) ParseResult

// DiagnosticsSink publishes diagnostics for a (uri, version) pair.
type DiagnosticsSink interface {
	Publish(uri string, version int, diags []langerr.Diagnostic)
}

// GetIdents supplies externally provided identifier names, consulted
// once per parse+infer and during completion (spec.md §6).
type GetIdents func() []string

type documentState struct {
	content string
	version int
}

// Server is the LSP core: it owns the reactor, the hover index and the
// open-document table, and drives parseAndInfer through the document
// lifecycle handlers. All handler entry points enqueue their real work
// onto the reactor and return immediately; the reactor's single
// consumer performs the actual state mutation in enqueue order.
type Server struct {
	Parse       ParseAndInfer
	BeforeParse BeforeParseHook
	AfterParse  AfterParseHook
	GetIdents   GetIdents
	Diagnostics DiagnosticsSink

	Hover   *HoverIndex
	reactor *Reactor

	mu        sync.RWMutex
	documents map[string]*documentState
}

// NewServer wires a Server around the supplied collaborators. hoverLRU
// is forwarded to NewHoverIndex (<=0 means unbounded).
func NewServer(parse ParseAndInfer, diags DiagnosticsSink, getIdents GetIdents, hoverLRU int) *Server {
	return &Server{
		Parse:       parse,
		Diagnostics: diags,
		GetIdents:   getIdents,
		Hover:       NewHoverIndex(hoverLRU),
		reactor:     NewReactor(),
		documents:   make(map[string]*documentState),
	}
}

// Run starts the reactor's consumer loop; it blocks until Stop is called.
func (s *Server) Run(onPanic func(interface{})) { s.reactor.Run(onPanic) }

// Stop signals the reactor to drain and return from Run.
func (s *Server) Stop() { s.reactor.Close() }

// runParse executes the beforeParse/afterParse hook pair around a
// single parseAndInfer call.
func (s *Server) runParse(src string) ParseResult {
	id := uuid.NewString()
	now := time.Now().UTC()
	if s.BeforeParse != nil {
		s.BeforeParse(id, now)
	}

	var formals []string
	if s.GetIdents != nil {
		formals = s.GetIdents()
	}
	result := s.Parse(formals, src)

	if s.AfterParse != nil {
		result = s.AfterParse(id, now, result)
	}
	return result
}

func (s *Server) processText(uri string, version int, text string) {
	result := s.runParse(text)
	s.Hover.Replace(uri, version, result.HoverRanges)
	if s.Diagnostics != nil {
		s.Diagnostics.Publish(uri, version, result.Diagnostics)
	}
}

// DidOpen implements textDocument/didOpen: parse+infer the full text,
// publish diagnostics, replace hover entries for (uri, 0).
func (s *Server) DidOpen(uri, text string) {
	s.mu.Lock()
	s.documents[uri] = &documentState{content: text, version: 0}
	s.mu.Unlock()

	s.reactor.Enqueue(func() {
		s.processText(uri, 0, text)
	})
}

// DidChange implements textDocument/didChange for full-document sync:
// parse+infer the current text; publish diagnostics with the current
// version; replace hover entries for (uri, version).
func (s *Server) DidChange(uri string, version int, text string) {
	s.mu.Lock()
	s.documents[uri] = &documentState{content: text, version: version}
	s.mu.Unlock()

	s.reactor.Enqueue(func() {
		s.processText(uri, version, text)
	})
}

// DidClose implements textDocument/didClose.
func (s *Server) DidClose(uri string) {
	s.reactor.Enqueue(func() {
		s.mu.Lock()
		delete(s.documents, uri)
		s.mu.Unlock()
	})
}

// CurrentVersion returns the version of the last didOpen/didChange seen
// for uri, or (0, false) if the document is not open.
func (s *Server) CurrentVersion(uri string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.documents[uri]
	if !ok {
		return 0, false
	}
	return d.version, true
}

// DocumentText returns the last text seen via DidOpen/DidChange for uri,
// needed by completion to compute the in-progress identifier prefix at
// a cursor position.
func (s *Server) DocumentText(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.documents[uri]
	if !ok {
		return "", false
	}
	return d.content, true
}

// HoverAt implements textDocument/hover against the version recorded by
// the most recent DidOpen/DidChange for uri. Entries stored for earlier
// versions are not consulted: until that version's parse has run, or
// when its parse produced no hover ranges (as a failed parse does),
// HoverAt reports no entry.
func (s *Server) HoverAt(uri string, pos langerr.Position) (HoverEntry, bool) {
	version, ok := s.CurrentVersion(uri)
	if !ok {
		return HoverEntry{}, false
	}
	return s.Hover.Query(uri, version, pos)
}
