// Command flux runs the Flux interpreter, either over a script file or
// as an interactive REPL. Grounded on the teacher's cmd/mindscript.go
// driver: positional-argument invocation, liner-backed line editing, and
// a persistent per-user history file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	flux "github.com/MikeHenker/Flux"
)

const historyFile = ".flux_history"

func main() {
	args := os.Args[1:]
	switch {
	case len(args) > 1:
		printUsage()
		os.Exit(1)
	case len(args) == 1:
		os.Exit(runFile(args[0]))
	default:
		os.Exit(runREPL())
	}
}

func printUsage() {
	fmt.Println("Usage: flux [script]")
	fmt.Println("  flux            start the interactive REPL")
	fmt.Println("  flux script.fx  run a Flux source file")
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flux: cannot read %s: %v\n", path, err)
		return 1
	}
	return runSource(string(src), path)
}

// runSource lexes, parses, and interprets src, printing any diagnostic to
// stderr using the caret-snippet renderer in errors.go. It returns the
// process exit status: 0 on success, 1 if any stage failed.
func runSource(src, name string) int {
	toks := flux.NewLexer(src).Scan()
	prog, parseErrs := flux.NewParser(toks).Parse()
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			fmt.Fprintln(os.Stderr, flux.WrapError(e, name, src))
		}
		return 1
	}

	ip := flux.NewInterpreter()
	if err := ip.Run(prog); err != nil {
		fmt.Fprintln(os.Stderr, flux.WrapError(err, name, src))
		return 1
	}
	return 0
}

func runREPL() int {
	fmt.Println("Flux Programming Language v1.0")
	fmt.Println("Type 'exit' to quit the REPL")
	fmt.Println()

	flux.EnableColor = true

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := flux.NewInterpreter()

	for {
		line, err := ln.Prompt("flux> ")
		if err != nil { // io.EOF (Ctrl+D) or liner.ErrPromptAborted
			break
		}
		if line == "exit" || line == "quit" {
			break
		}
		if line == "" {
			continue
		}

		ln.AppendHistory(line)

		toks := flux.NewLexer(line).Scan()
		prog, parseErrs := flux.NewParser(toks).Parse()
		if len(parseErrs) > 0 {
			for _, e := range parseErrs {
				fmt.Fprintln(os.Stderr, flux.WrapError(e, "<repl>", line))
			}
			continue
		}
		if err := ip.Run(prog); err != nil {
			fmt.Fprintln(os.Stderr, flux.WrapError(err, "<repl>", line))
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}

	fmt.Println("Goodbye!")
	return 0
}
