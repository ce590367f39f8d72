package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Flags holds the parsed command-line arguments for a single rating run.
type Flags struct {
	Puzzle    string // the 81-digit board to rate
	MaxSteps  int    // backstop on the human solver's step count
	ShowNotes bool   // dump the candidate grid after the human solve
}

// ParseArgs parses os.Args into Flags. On a malformed invocation it
// prints a diagnostic and returns ok=false; the caller is expected to
// return rather than proceed, but the process still exits 0 — rating a
// puzzle is a diagnostic, not a correctness check, and this command
// never fails loudly (matching the original rate.rs, which just prints
// and returns on a missing argument or the wrong length).
func ParseArgs() (flags Flags, ok bool) {
	fs := flag.NewFlagSet("sudoku", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Println("Rates a sudoku puzzle by solving it both the human way and by backtracking.")
		fmt.Printf("Usage: %s [FLAGS...] <81-digit puzzle>\n", filepath.Base(os.Args[0]))
		fmt.Println("Flags:")
		fs.PrintDefaults()
	}

	fs.IntVar(&flags.MaxSteps, "max-steps", 0, "cap on human-solver steps; 0 keeps the default cap of 500")
	fs.BoolVar(&flags.ShowNotes, "notes", false, "print the candidate grid left behind by the human solve")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return flags, false
	}

	if fs.NArg() != 1 {
		fmt.Printf("want exactly 1 argument, have %d\n", fs.NArg())
		fs.Usage()
		return flags, false
	}

	flags.Puzzle = fs.Arg(0)
	if len(flags.Puzzle) != 81 {
		fmt.Printf("puzzle must be exactly 81 characters, got %d\n", len(flags.Puzzle))
		fs.Usage()
		return flags, false
	}

	return flags, true
}
