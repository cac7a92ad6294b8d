package config

// Version is the current toolchain version.
// Set at build time via -ldflags, or by writing to this file.
var Version = "0.1.0"

// SourceFileExt is the recognized source extension for scripts evaluated
// by cmd/funxy-eval.
const SourceFileExt = ".l"

// IsTestMode indicates if the program is running in test mode.
// No command in this module sets it; it defaults to false.
var IsTestMode = false

// IsLSPMode indicates if the program is running in Language Server Protocol mode.
// This is set in cmd/funxy-lsp/main.go.
var IsLSPMode = false

// Built-in enum names recognized without a host-supplied type descriptor.
const (
	BoolTypeName  = "Bool"
	TrueCtorName  = "true"
	FalseCtorName = "false"
)
