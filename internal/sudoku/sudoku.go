// Package sudoku exposes the Sudoku facade: the single object a caller
// loads a puzzle into, solves (either the human way or by backtracking),
// and reads the solved board and rating back from.
package sudoku

import (
	"sudoku-api/internal/core"
	"sudoku-api/internal/sudoku/dp"
	"sudoku-api/internal/sudoku/human"
	"sudoku-api/internal/sudoku/human/techniques"
	"sudoku-api/pkg/constants"
)

// Sudoku combines the strategy-engine Board/Driver with the original
// snapshot needed for restore and for the difficulty denominator.
type Sudoku struct {
	board      *human.Board
	original   human.OriginalBoard
	driver     *human.Driver
	lastStatus string
}

// New returns an empty Sudoku instance.
func New() *Sudoku {
	board := human.NewBoard()
	return &Sudoku{
		board:  board,
		driver: human.NewDriver(board),
	}
}

// Load parses an 81-character puzzle string, populates the board and its
// original snapshot, and computes the initial candidate grid.
func (s *Sudoku) Load(puzzle string) error {
	if err := s.board.Load(puzzle); err != nil {
		return err
	}
	s.original = human.NewOriginalBoard(s.board)
	s.board.RecomputeAllCandidates()
	s.driver = human.NewDriver(s.board)
	return nil
}

// LoadStrict behaves like Load, but additionally rejects a board that
// already has a duplicate digit in some row, column, or box, returning
// core.ErrInconsistentBoard in that case instead of populating the
// instance.
func (s *Sudoku) LoadStrict(puzzle string) error {
	if err := human.NewBoard().LoadStrict(puzzle); err != nil {
		return err
	}
	return s.Load(puzzle)
}

// Restore reloads the board from its original snapshot, discarding every
// placement and elimination made since.
func (s *Sudoku) Restore() {
	s.original.Restore(s.board)
	s.driver = human.NewDriver(s.board)
}

// Clear resets the instance to a fresh, empty state.
func (s *Sudoku) Clear() {
	s.board = human.NewBoard()
	s.original = human.OriginalBoard{}
	s.driver = human.NewDriver(s.board)
}

// Serialize returns the current board as an 81-character digit string.
func (s *Sudoku) Serialize() string {
	return s.board.Serialize()
}

// Original returns the originally loaded board as an 81-character digit
// string.
func (s *Sudoku) Original() string {
	return s.original.Serialize()
}

// SolveLikeHuman drives the strategy engine until the board is solved or
// no detector fires. Returns true iff the board ends up solved.
func (s *Sudoku) SolveLikeHuman() bool {
	return s.SolveLikeHumanN(constants.MaxSolverSteps)
}

// SolveLikeHumanN behaves like SolveLikeHuman but caps the number of
// steps at maxSteps instead of the default backstop; maxSteps <= 0 means
// no cap.
func (s *Sudoku) SolveLikeHumanN(maxSteps int) bool {
	solved, status := s.driver.SolveLikeHuman(maxSteps)
	s.lastStatus = status
	return solved
}

// SolveStatus reports how the most recent SolveLikeHuman call ended:
// constants.StatusCompleted, StatusStalled, or StatusMaxStepsReached.
// Before any solve attempt it reports StatusStalled.
func (s *Sudoku) SolveStatus() string {
	if s.lastStatus == "" {
		return constants.StatusStalled
	}
	return s.lastStatus
}

// SolveByBacktracking runs the backtracking oracle against the currently
// loaded board and, if a solution exists, writes it into the board.
// Returns true iff a solution was found.
func (s *Sudoku) SolveByBacktracking() bool {
	grid := make([]int, 81)
	copy(grid, s.board.Cells[:])

	solution := dp.Solve(grid)
	if solution == nil {
		return false
	}
	for i, d := range solution {
		s.board.Cells[i] = d
	}
	for i := range s.board.Candidates {
		s.board.Candidates[i] = 0
	}
	return true
}

// NextStep exposes a single deduction without applying it, for
// interactive callers. If no detector fires, the returned result carries
// StrategyNone and an empty removal.
func (s *Sudoku) NextStep() core.StrategyResult {
	sr, fired := s.driver.NextStep()
	if !fired {
		return core.StrategyResult{Strategy: core.StrategyNone}
	}
	return sr
}

// Apply performs the mutation a StrategyResult describes and records it
// in the rating ledger.
func (s *Sudoku) Apply(sr core.StrategyResult) core.Resolution {
	return s.driver.Apply(sr)
}

// Rating returns a snapshot of how many times, and at what cost, each
// strategy has been used so far.
func (s *Sudoku) Rating() map[core.Strategy]int {
	return s.driver.Ledger.Snapshot()
}

// Difficulty returns the weighted-sum-over-originally-empty-cells score.
func (s *Sudoku) Difficulty() float64 {
	return s.driver.Ledger.Difficulty(s.original.EmptyCount())
}

// Effort returns the weighted-sum-over-total-candidate-removals score.
func (s *Sudoku) Effort() float64 {
	return s.driver.Ledger.Effort()
}

// IsSolved reports whether the board currently has no empty cells.
func (s *Sudoku) IsSolved() bool {
	return s.board.IsSolved()
}

// GetDigit returns the digit at (row, col), 0 if empty.
func (s *Sudoku) GetDigit(row, col int) int {
	return s.board.Cells[techniques.IndexOf(row, col)]
}

// GetCandidates returns the candidate digits at (row, col) in ascending
// order.
func (s *Sudoku) GetCandidates(row, col int) []int {
	return s.board.Candidates[techniques.IndexOf(row, col)].ToSlice()
}
