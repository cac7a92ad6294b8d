package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LSPConfig carries the LSP server's non-functional tunables. It is loaded
// from an optional funxy-lsp.yaml in the workspace root; absence of the
// file is not an error and DefaultLSPConfig applies.
type LSPConfig struct {
	// HoverIndexLRU bounds the number of (uri, version) hover entries kept
	// in memory. Zero means unbounded, matching spec.md's "implementers
	// may bound memory ... not required for correctness".
	HoverIndexLRU int `yaml:"hoverIndexLRU"`

	// MaxDiagnosticsPerPublish caps the diagnostics array sent in a single
	// textDocument/publishDiagnostics notification. Zero means unbounded.
	MaxDiagnosticsPerPublish int `yaml:"maxDiagnosticsPerPublish"`
}

// DefaultLSPConfig is used when no funxy-lsp.yaml is present.
func DefaultLSPConfig() LSPConfig {
	return LSPConfig{HoverIndexLRU: 0, MaxDiagnosticsPerPublish: 0}
}

// LoadLSPConfig reads path (typically "funxy-lsp.yaml") and merges it over
// DefaultLSPConfig. A missing file returns the defaults, not an error.
func LoadLSPConfig(path string) (LSPConfig, error) {
	cfg := DefaultLSPConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
