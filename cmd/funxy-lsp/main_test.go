package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/corelang/funl/internal/config"
	"github.com/corelang/funl/internal/prelude"
)

func frame(t *testing.T, body string) string {
	t.Helper()
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
}

func newTestLanguageServer(t *testing.T, w *bytes.Buffer) *languageServer {
	t.Helper()
	_, modules := prelude.Build()
	ls := newLanguageServer(w, modules, config.DefaultLSPConfig())
	go ls.server.Run(nil)
	t.Cleanup(ls.server.Stop)
	return ls
}

func TestDecodeParamsEmptyRawIsZeroValue(t *testing.T) {
	p, err := decodeParams[struct{ X int }](nil)
	if err != nil {
		t.Fatalf("decodeParams(nil) failed: %v", err)
	}
	if p.X != 0 {
		t.Errorf("p = %+v, want zero value", p)
	}
}

func TestDecodeParamsUnmarshalsJSON(t *testing.T) {
	p, err := decodeParams[struct {
		X int `json:"x"`
	}](json.RawMessage(`{"x": 5}`))
	if err != nil {
		t.Fatalf("decodeParams failed: %v", err)
	}
	if p.X != 5 {
		t.Errorf("p.X = %d, want 5", p.X)
	}
}

func TestStartHandlesInitializeRequest(t *testing.T) {
	var out bytes.Buffer
	ls := newTestLanguageServer(t, &out)

	req := frame(t, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`)
	ls.start(strings.NewReader(req))

	if !strings.Contains(out.String(), "Content-Length:") {
		t.Fatalf("response = %q, want a Content-Length-framed message", out.String())
	}
	if !strings.Contains(out.String(), `"capabilities"`) {
		t.Errorf("response = %q, want an initialize result with capabilities", out.String())
	}
}

func TestStartRespondsMethodNotFoundForUnknownMethod(t *testing.T) {
	var out bytes.Buffer
	ls := newTestLanguageServer(t, &out)

	req := frame(t, `{"jsonrpc":"2.0","id":2,"method":"textDocument/formatting","params":{}}`)
	ls.start(strings.NewReader(req))

	if !strings.Contains(out.String(), "-32601") {
		t.Errorf("response = %q, want a methodNotFound (-32601) error", out.String())
	}
}

func TestStartProcessesDidOpenNotificationWithoutResponse(t *testing.T) {
	var out bytes.Buffer
	ls := newTestLanguageServer(t, &out)

	req := frame(t, `{"jsonrpc":"2.0","method":"textDocument/didOpen","params":{"textDocument":{"uri":"file:///a.funxy","text":"x"}}}`)
	ls.start(strings.NewReader(req))

	if strings.Contains(out.String(), `"result"`) {
		t.Errorf("a notification should never produce a response, got %q", out.String())
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := ls.server.CurrentVersion("file:///a.funxy"); ok {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Error("didOpen should register the document with the server")
}

func TestModuleCompletionSourceListsModuleNamesAndPreludeIdents(t *testing.T) {
	_, modules := prelude.Build()
	src := moduleCompletionSource{modules: modules}

	foundArrayModule := false
	for _, name := range src.ModuleNames() {
		if name == "Array" {
			foundArrayModule = true
		}
	}
	if !foundArrayModule {
		t.Errorf("ModuleNames() = %v, want it to include Array", src.ModuleNames())
	}

	foundReduce := false
	for _, ident := range src.PreludeIdents() {
		if ident == "Array.reduce" {
			foundReduce = true
		}
	}
	if !foundReduce {
		t.Errorf("PreludeIdents() = %v, want it to include Array.reduce", src.PreludeIdents())
	}

	if len(src.ReservedWords()) == 0 {
		t.Error("ReservedWords() should be non-empty")
	}
}
