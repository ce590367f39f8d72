// Command sudoku rates a single puzzle: it solves the board the human
// way, timing the attempt, then solves it again by backtracking for
// comparison. It always prints both timings and exits 0, even when the
// human solver stalls or the input is degenerate — rating a puzzle is a
// diagnostic, not a correctness check, and a stalled solve is itself a
// result worth reporting.
package main

import (
	"fmt"
	"time"

	"sudoku-api/internal/core"
	"sudoku-api/internal/sudoku"
)

func main() {
	flags, ok := ParseArgs()
	if !ok {
		return
	}

	human := sudoku.New()
	if err := human.Load(flags.Puzzle); err != nil {
		fmt.Printf("invalid puzzle: %v\n", err)
		return
	}

	start := time.Now()
	var humanSolved bool
	if flags.MaxSteps > 0 {
		humanSolved = human.SolveLikeHumanN(flags.MaxSteps)
	} else {
		humanSolved = human.SolveLikeHuman()
	}
	humanElapsed := time.Since(start)
	fmt.Printf("Time to solve: %.3f ms\n", float64(humanElapsed.Microseconds())/1000)

	backtrack := sudoku.New()
	_ = backtrack.Load(flags.Puzzle)

	start = time.Now()
	backtrackSolved := backtrack.SolveByBacktracking()
	backtrackElapsed := time.Since(start)
	fmt.Printf("For comparison: time to solve with backtracker: %.3f ms\n", float64(backtrackElapsed.Microseconds())/1000)

	fmt.Printf("\nDifficulty: %.2f (%s)\n", human.Difficulty(), core.ClassifyDifficulty(human.Difficulty(), humanSolved))
	fmt.Printf("Effort: %.2f\n", human.Effort())
	printRating(human.Rating())

	if !humanSolved {
		fmt.Printf("\nHuman-style solve did not complete (status: %s)\n", human.SolveStatus())
	}

	if humanSolved && backtrackSolved && human.Serialize() != backtrack.Serialize() {
		fmt.Println("\nSOLUTIONS DIFFER")
		fmt.Println("Human-like solver:")
		fmt.Println(human.Serialize())
		fmt.Println("Backtracking solver:")
		fmt.Println(backtrack.Serialize())
	}

	if flags.ShowNotes {
		printNotes(human)
	}
}

func printRating(rating map[core.Strategy]int) {
	fmt.Println("Rating:")
	strategies := []core.Strategy{
		core.StrategyLastDigit,
		core.StrategyObviousSingle,
		core.StrategyHiddenSingle,
		core.StrategyPointingPair,
		core.StrategyObviousPair,
		core.StrategyHiddenPair,
		core.StrategyXWing,
	}
	for _, s := range strategies {
		if count, ok := rating[s]; ok {
			fmt.Printf("  %-15s %d\n", s.String(), count)
		}
	}
}

func printNotes(s *sudoku.Sudoku) {
	fmt.Println("\nCandidate grid:")
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			digit := s.GetDigit(row, col)
			if digit != 0 {
				fmt.Printf("%d:{%d}       ", digit, digit)
				continue
			}
			fmt.Printf("0:%v ", s.GetCandidates(row, col))
		}
		fmt.Println()
	}
}
