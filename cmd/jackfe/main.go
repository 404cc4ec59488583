// Command jackfe scans and parses Jack sources. Given a .jack file or a
// directory of them, it prints diagnostics to stderr and can write the token
// markup, an AST dump and a class reference graph.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/t14raptor/go-jack/driver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("jackfe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tokens := fs.Bool("tokens", true, "write <Base>T.xml token markup")
	dumpAST := fs.Bool("ast", false, "write <Base>.ast tree dump")
	graph := fs.String("graph", "", "write a DOT class reference graph to `file`")
	outDir := fs.String("out", "", "write outputs into `dir` instead of next to the sources")
	jobs := fs.Int("j", 0, "files processed in parallel (0 = one per CPU)")
	verbose := fs.Bool("v", false, "log progress")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: jackfe [flags] <file.jack | dir>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(stderr, "jackfe: ", log.Lmsgprefix)
	}

	files, err := driver.Discover(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	results, err := driver.Run(context.Background(), files, driver.Config{
		Tokens: *tokens,
		AST:    *dumpAST,
		Graph:  *graph,
		OutDir: *outDir,
		Jobs:   *jobs,
		Log:    logger,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if driver.Report(stderr, results) {
		return 1
	}
	return 0
}
