// Command funxy-eval evaluates a single script against the built-in
// prelude, following the teacher's own hand-rolled os.Args parsing style
// (cmd/funxy/main.go has no flag-package usage anywhere in the binary)
// rather than reaching for the pack's Cobra-based CLIs, which belong to
// unrelated teachers.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/corelang/funl/internal/cast"
	"github.com/corelang/funl/internal/config"
	"github.com/corelang/funl/internal/eval"
	"github.com/corelang/funl/internal/frontend"
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/prelude"
	"github.com/corelang/funl/internal/value"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: funxy-eval [-implicit name=value]... <script%s>\n", config.SourceFileExt)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 1
	}

	implicits := make(map[string]string)
	var scriptPath string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-implicit", "--implicit":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "funxy-eval: -implicit requires a name=value argument")
				return 1
			}
			i++
			name, val, ok := strings.Cut(args[i], "=")
			if !ok {
				fmt.Fprintf(os.Stderr, "funxy-eval: malformed -implicit argument %q, want name=value\n", args[i])
				return 1
			}
			implicits[name] = val
		case "-help", "--help", "help":
			usage()
			return 0
		default:
			if scriptPath != "" {
				fmt.Fprintf(os.Stderr, "funxy-eval: unexpected extra argument %q\n", args[i])
				return 1
			}
			scriptPath = args[i]
		}
	}

	if scriptPath == "" {
		usage()
		return 1
	}

	src, err := os.ReadFile(scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "funxy-eval: %v\n", err)
		return 1
	}

	pinned, modules := prelude.Build()

	formals := make([]string, 0, len(implicits))
	for name := range implicits {
		formals = append(formals, name)
	}

	result, diags := frontend.ParseAndInfer(modules, formals, string(src), nil)
	if diags != nil {
		printDiagnostics(scriptPath, diags)
		return 1
	}

	e := eval.New(pinned)
	for name, raw := range implicits {
		e.SeedImplicit(name, hostImplicitValue(raw))
	}

	v, err := e.Eval(value.NewScope(), result.Expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "funxy-eval: %v\n", err)
		return 1
	}

	fmt.Println(v.Pretty())
	return 0
}

// hostImplicitValue casts a CLI-supplied string into the narrowest value
// shape it parses as, per the Cast bridge's ToValue direction
// (spec.md §4.2): an integer literal becomes VInt, otherwise VText.
func hostImplicitValue(raw string) value.V {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return cast.Int.ToValue(n)
	}
	return cast.Text.ToValue(raw)
}

func printDiagnostics(path string, diags []langerr.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s: %s\n",
			path, d.Range.Start.Line+1, d.Range.Start.Character+1, d.Code, d.Message)
	}
}
