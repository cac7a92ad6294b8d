package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLSPConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadLSPConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadLSPConfig on a missing file should not error, got %v", err)
	}
	if cfg != DefaultLSPConfig() {
		t.Errorf("cfg = %+v, want DefaultLSPConfig()", cfg)
	}
}

func TestLoadLSPConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funxy-lsp.yaml")
	writeFile(t, path, "hoverIndexLRU: 500\n")

	cfg, err := LoadLSPConfig(path)
	if err != nil {
		t.Fatalf("LoadLSPConfig failed: %v", err)
	}
	if cfg.HoverIndexLRU != 500 {
		t.Errorf("HoverIndexLRU = %d, want 500", cfg.HoverIndexLRU)
	}
	if cfg.MaxDiagnosticsPerPublish != 0 {
		t.Errorf("MaxDiagnosticsPerPublish = %d, want 0 (default, unset in yaml)", cfg.MaxDiagnosticsPerPublish)
	}
}

func TestLoadLSPConfigMalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funxy-lsp.yaml")
	writeFile(t, path, "hoverIndexLRU: [this is not an int\n")

	if _, err := LoadLSPConfig(path); err == nil {
		t.Fatal("malformed yaml should produce an error")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture file: %v", err)
	}
}
