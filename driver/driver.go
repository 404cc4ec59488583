// Package driver runs the front end over source files: it reads and decodes
// them, scans and parses each one with its own compilation unit, and writes
// the requested outputs next to the sources or into an output directory.
package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/t14raptor/go-jack/ast"
	"github.com/t14raptor/go-jack/generator"
	"github.com/t14raptor/go-jack/parser"
	"github.com/t14raptor/go-jack/parser/scanner"
	"github.com/t14raptor/go-jack/unit"
)

// Suffixes of the per-file outputs.
const (
	TokensSuffix = "T.xml"
	ASTSuffix    = ".ast"
)

type Config struct {
	// Tokens writes the token markup to <Base>T.xml.
	Tokens bool
	// AST writes the tree dump to <Base>.ast.
	AST bool
	// Graph, if set, is the path of a DOT file describing which classes
	// refer to which.
	Graph string
	// OutDir receives the outputs instead of the source directories.
	OutDir string
	// Jobs bounds how many files are processed at once. Zero means one
	// per CPU.
	Jobs int

	// Log receives progress messages. Nil discards them.
	Log *log.Logger
}

// Result is the outcome for one source file.
type Result struct {
	Path  string
	Class *ast.Class // nil on a syntax error
	// Diag holds the file's diagnostics, lexical and syntactic, or nil.
	Diag    error
	Stats   generator.Stats
	Outputs []string
}

// Fatal reports whether the file had a syntax error.
func (r *Result) Fatal() bool {
	return parser.IsFatal(r.Diag)
}

// Run processes paths concurrently. Results are returned in the order of
// paths. The error is non-nil only for I/O failures; diagnostics are
// reported per file in Result.Diag.
func Run(ctx context.Context, paths []string, cfg Config) ([]Result, error) {
	logger := cfg.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := compileFile(path, cfg, logger)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cfg.Graph != "" {
		if err := os.WriteFile(cfg.Graph, []byte(ClassGraph(results)), 0o644); err != nil {
			return nil, err
		}
		logger.Printf("wrote %s", cfg.Graph)
	}
	return results, nil
}

func compileFile(path string, cfg Config, logger *log.Logger) (Result, error) {
	res := Result{Path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		return res, err
	}
	src, err := Decode(raw)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}

	u := unit.New()
	if cfg.Tokens {
		// Lexical errors are reported once, by the parse below.
		toks, _ := scanner.Tokenize(src, scanner.Config{File: path, Names: u.Names, Keywords: u.Keywords})
		if err := res.write(outputPath(path, cfg.OutDir, TokensSuffix), generator.Tokens(toks)); err != nil {
			return res, err
		}
		logger.Printf("%s: %d tokens", path, len(toks))
	}

	res.Class, res.Diag = parser.ParseFile(path, src, parser.WithUnit(u))
	if res.Class == nil {
		logger.Printf("%s: parse failed", path)
		return res, nil
	}
	res.Stats = generator.CountNodes(res.Class)
	logger.Printf("%s: class %s, %d subroutines, %d statements",
		path, res.Class.Name, res.Stats.Subroutines, res.Stats.Statements)

	if cfg.AST {
		if err := res.write(outputPath(path, cfg.OutDir, ASTSuffix), generator.Dump(res.Class)); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (r *Result) write(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return err
	}
	r.Outputs = append(r.Outputs, path)
	return nil
}

// Report prints every diagnostic to w, one per line, in file order. It
// returns true if any file had a syntax error.
func Report(w io.Writer, results []Result) (fatal bool) {
	for i := range results {
		r := &results[i]
		if r.Diag == nil {
			continue
		}
		fmt.Fprintln(w, r.Diag)
		fatal = fatal || r.Fatal()
	}
	return fatal
}
