package lsp

import (
	"sync"
	"testing"

	"github.com/corelang/funl/internal/langerr"
)

type recordingTransport struct {
	mu     sync.Mutex
	method string
	params interface{}
}

func (t *recordingTransport) SendNotification(method string, params interface{}) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.method = method
	t.params = params
	return nil
}

func TestTransportDiagnosticsSinkPublishesNotification(t *testing.T) {
	tr := &recordingTransport{}
	sink := NewTransportDiagnosticsSink(tr, "funxy", 0)

	diags := []langerr.Diagnostic{
		{Range: langerr.Range{Start: langerr.Position{Line: 1, Character: 2}}, Severity: langerr.SeverityError, Code: "E1", Message: "bad"},
	}
	sink.Publish("file:///a.funxy", 3, diags)

	if tr.method != "textDocument/publishDiagnostics" {
		t.Fatalf("method = %q, want textDocument/publishDiagnostics", tr.method)
	}
	params, ok := tr.params.(PublishDiagnosticsParams)
	if !ok {
		t.Fatalf("params type = %T, want PublishDiagnosticsParams", tr.params)
	}
	if params.URI != "file:///a.funxy" {
		t.Errorf("URI = %q, want file:///a.funxy", params.URI)
	}
	if len(params.Diagnostics) != 1 || params.Diagnostics[0].Source != "funxy" {
		t.Errorf("Diagnostics = %+v, want one entry stamped with source funxy", params.Diagnostics)
	}
	if params.Diagnostics[0].Range.Start.Line != 1 {
		t.Errorf("wire Range.Start.Line = %d, want 1", params.Diagnostics[0].Range.Start.Line)
	}
}

func TestTransportDiagnosticsSinkTruncatesToMaxDiag(t *testing.T) {
	tr := &recordingTransport{}
	sink := NewTransportDiagnosticsSink(tr, "funxy", 2)

	diags := []langerr.Diagnostic{
		{Code: "E1", Message: "a"},
		{Code: "E2", Message: "b"},
		{Code: "E3", Message: "c"},
	}
	sink.Publish("file:///a.funxy", 0, diags)

	params := tr.params.(PublishDiagnosticsParams)
	if len(params.Diagnostics) != 2 {
		t.Fatalf("Diagnostics = %+v, want exactly 2 (capped by maxDiag)", params.Diagnostics)
	}
	if params.Diagnostics[0].Code != "E1" || params.Diagnostics[1].Code != "E2" {
		t.Errorf("Diagnostics = %+v, want the first 2 in order", params.Diagnostics)
	}
}

func TestTransportDiagnosticsSinkUnboundedWhenMaxDiagIsZero(t *testing.T) {
	tr := &recordingTransport{}
	sink := NewTransportDiagnosticsSink(tr, "funxy", 0)

	diags := make([]langerr.Diagnostic, 5)
	sink.Publish("file:///a.funxy", 0, diags)

	params := tr.params.(PublishDiagnosticsParams)
	if len(params.Diagnostics) != 5 {
		t.Fatalf("Diagnostics = %+v, want all 5 when maxDiag<=0 (unbounded)", params.Diagnostics)
	}
}

func TestDefinitionAtReusesHoverSmallestRange(t *testing.T) {
	parse := func(formals []string, src string) ParseResult {
		return ParseResult{HoverRanges: []HoverEntry{
			{
				Range:           langerr.Range{Start: langerr.Position{Line: 0, Character: 0}, End: langerr.Position{Line: 0, Character: 5}},
				Label:           "x",
				DefinitionURI:   "file:///def.funxy",
				DefinitionRange: langerr.Range{Start: langerr.Position{Line: 2, Character: 0}, End: langerr.Position{Line: 2, Character: 1}},
			},
		}}
	}
	s := newTestServer(parse, &recordingSink{})
	go s.Run(nil)
	defer s.Stop()

	done := make(chan struct{})
	s.DidOpen("file:///use.funxy", "x")
	s.reactor.Enqueue(func() { close(done) })
	<-done

	def, ok := s.DefinitionAt("file:///use.funxy", langerr.Position{Line: 0, Character: 2})
	if !ok {
		t.Fatal("DefinitionAt should resolve when the hover entry carries a DefinitionURI")
	}
	if def.URI != "file:///def.funxy" || def.Range.Start.Line != 2 {
		t.Errorf("Definition = %+v, want URI file:///def.funxy at line 2", def)
	}
}

func TestDefinitionAtWithNoDefinitionSite(t *testing.T) {
	parse := func(formals []string, src string) ParseResult {
		return ParseResult{HoverRanges: []HoverEntry{
			{Range: langerr.Range{Start: langerr.Position{Line: 0, Character: 0}, End: langerr.Position{Line: 0, Character: 5}}, Label: "x"},
		}}
	}
	s := newTestServer(parse, &recordingSink{})
	go s.Run(nil)
	defer s.Stop()

	done := make(chan struct{})
	s.DidOpen("file:///use.funxy", "x")
	s.reactor.Enqueue(func() { close(done) })
	<-done

	if _, ok := s.DefinitionAt("file:///use.funxy", langerr.Position{Line: 0, Character: 2}); ok {
		t.Error("DefinitionAt should report false when the hover entry has no DefinitionURI")
	}
}
