// Package langerr collects the error and diagnostic types shared by the
// evaluator and the LSP core (spec.md §7): EvalError and its four kinds,
// plus the editor-facing Diagnostic/Range pair. Keeping both families in
// one package mirrors the teacher's cmd/lsp/diagnostics.go +
// internal/evaluator error-constructor split being two faces of the same
// "something went wrong, here is a human-readable message plus a
// machine-checkable tag" concern.
package langerr

import "fmt"

// EvalErrorKind tags the four evaluator failure modes of spec.md §4.1.
type EvalErrorKind int

const (
	RuntimeError EvalErrorKind = iota
	AssertionFailed
	CastErrorKind
	NotFoundInImplicitEnv
)

func (k EvalErrorKind) String() string {
	switch k {
	case RuntimeError:
		return "RuntimeError"
	case AssertionFailed:
		return "AssertionFailed"
	case CastErrorKind:
		return "CastError"
	case NotFoundInImplicitEnv:
		return "NotFoundInImplicitEnv"
	default:
		return "UnknownEvalError"
	}
}

// EvalError is the single error type eval returns. AssertionFailed and
// CastError are "structured" per spec.md §4.1/§7: Name carries the
// implicit-parameter name for NotFoundInImplicitEnv, and Msg carries the
// human-readable text for the rest.
type EvalError struct {
	Kind EvalErrorKind
	Msg  string
	Name string // only meaningful for NotFoundInImplicitEnv
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case NotFoundInImplicitEnv:
		return fmt.Sprintf("not found in implicit environment: ?%s", e.Name)
	case AssertionFailed:
		return "assertion failed"
	default:
		return e.Msg
	}
}

// NewRuntimeError builds a RuntimeError with a formatted message.
func NewRuntimeError(format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: RuntimeError, Msg: fmt.Sprintf(format, args...)}
}

// NewCastError builds a CastError naming the source value and target type,
// per spec.md §4.2 ("Failure of fromValue yields CastError naming the
// source value and target type").
func NewCastError(sourceDescr, targetType string) *EvalError {
	return &EvalError{Kind: CastErrorKind, Msg: fmt.Sprintf("cannot cast %s to %s", sourceDescr, targetType)}
}

// NewNotFoundInImplicitEnv builds a NotFoundInImplicitEnv error for the
// implicit parameter named name (without its leading '?').
func NewNotFoundInImplicitEnv(name string) *EvalError {
	return &EvalError{Kind: NotFoundInImplicitEnv, Name: name}
}

// ErrAssertionFailed is the sentinel for a failed `assert` (spec.md §4.1);
// it carries no message, matching "AssertionFailed" being an argument-less
// structured error.
var ErrAssertionFailed = &EvalError{Kind: AssertionFailed}

// Severity mirrors the LSP DiagnosticSeverity numbering (1=Error..4=Hint);
// only Error and Warning are produced by this module.
type Severity int

const (
	SeverityError   Severity = 1
	SeverityWarning Severity = 2
)

// Position is a 0-based line/column, matching the LSP wire convention.
type Position struct {
	Line      int
	Character int
}

// Range is a source range from Start to End; Contains treats both ends
// as inside the range.
type Range struct {
	Start Position
	End   Position
}

// Contains reports whether p falls within r, inclusive of both the start
// and end position's column (matching the LSP convention the hover
// "smallest containing range" search of spec.md §4.5 relies on).
func (r Range) Contains(p Position) bool {
	if p.Line < r.Start.Line || p.Line > r.End.Line {
		return false
	}
	if p.Line == r.Start.Line && p.Character < r.Start.Character {
		return false
	}
	if p.Line == r.End.Line && p.Character > r.End.Character {
		return false
	}
	return true
}

// ContainsRange reports whether r wholly contains other, the "dominates"
// relation findSmallest folds over in spec.md §4.5.
func (r Range) ContainsRange(other Range) bool {
	return r.Contains(other.Start) && r.Contains(other.End)
}

// Diagnostic is a single parseAndInfer failure, surfaced to the client via
// textDocument/publishDiagnostics.
type Diagnostic struct {
	Range    Range
	Severity Severity
	Code     string
	Message  string
}
