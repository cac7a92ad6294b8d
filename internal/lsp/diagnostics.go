package lsp

import "github.com/corelang/funl/internal/langerr"

// Transport is the wire-level send capability the LSP core depends on to
// publish notifications; cmd/funxy-lsp supplies the real JSON-RPC/stdio
// implementation, grounded in the teacher's sendMessage (cmd/lsp/server.go).
type Transport interface {
	SendNotification(method string, params interface{}) error
}

// transportSink is the DiagnosticsSink that publishes over a Transport,
// converting langerr's 0-based positions into the wire Diagnostic shape.
// Grounded in the teacher's cmd/lsp/diagnostics.go: publishDiagnostics +
// convertDiagnostics, including the constant Source tag.
type transportSink struct {
	t       Transport
	source  string
	maxDiag int // <=0 means unbounded, per config.LSPConfig.MaxDiagnosticsPerPublish
}

// NewTransportDiagnosticsSink builds a DiagnosticsSink that publishes
// textDocument/publishDiagnostics notifications over t. source is stamped
// onto every Diagnostic (the teacher uses "funxy"; callers pick their own).
// maxDiag caps how many diagnostics go out in a single notification;
// <=0 means unbounded.
func NewTransportDiagnosticsSink(t Transport, source string, maxDiag int) DiagnosticsSink {
	return &transportSink{t: t, source: source, maxDiag: maxDiag}
}

func (s *transportSink) Publish(uri string, version int, diags []langerr.Diagnostic) {
	_ = version // publishDiagnostics has no version field on the wire
	if s.maxDiag > 0 && len(diags) > s.maxDiag {
		diags = diags[:s.maxDiag]
	}
	_ = s.t.SendNotification("textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: convertDiagnostics(diags, s.source),
	})
}

func convertDiagnostics(diags []langerr.Diagnostic, source string) []Diagnostic {
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, Diagnostic{
			Range:    toWireRange(d.Range),
			Severity: DiagnosticSeverity(d.Severity),
			Code:     d.Code,
			Message:  d.Message,
			Source:   source,
		})
	}
	return out
}

func toWirePosition(p langerr.Position) Position {
	return Position{Line: p.Line, Character: p.Character}
}

func toWireRange(r langerr.Range) Range {
	return Range{Start: toWirePosition(r.Start), End: toWirePosition(r.End)}
}

func fromWirePosition(p Position) langerr.Position {
	return langerr.Position{Line: p.Line, Character: p.Character}
}
