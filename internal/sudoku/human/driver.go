package human

import (
	"sudoku-api/internal/core"
	"sudoku-api/internal/sudoku/human/techniques"
	"sudoku-api/pkg/constants"
)

// techniqueEntry pairs a Strategy tag with the detector function that
// implements it. Keeping this as a plain ordered slice — rather than a
// registry with enable/disable bookkeeping — is what reduces the Driver
// to a single fold over detectors: no dynamic dispatch is needed because
// the strategy set and its priority are fixed by the domain, not runtime
// configuration.
type techniqueEntry struct {
	Strategy core.Strategy
	Detect   func(b techniques.BoardInterface) core.RemovalResult
}

// techniqueOrder is the fixed priority the Driver tries detectors in.
// This order, together with each detector's own scan order, is what
// makes a solve's trajectory — and therefore its rating — a pure
// function of the input puzzle.
var techniqueOrder = []techniqueEntry{
	{core.StrategyLastDigit, techniques.DetectLastDigit},
	{core.StrategyObviousSingle, techniques.DetectObviousSingle},
	{core.StrategyHiddenSingle, techniques.DetectHiddenSingle},
	{core.StrategyPointingPair, techniques.DetectPointingPair},
	{core.StrategyObviousPair, techniques.DetectObviousPair},
	{core.StrategyHiddenPair, techniques.DetectHiddenPair},
	{core.StrategyXWing, techniques.DetectXWing},
}

// Driver owns a Board and its RatingLedger, and walks the technique
// catalogue one firing detector at a time.
type Driver struct {
	Board  *Board
	Ledger core.RatingLedger
}

// NewDriver wraps board in a Driver with a fresh ledger.
func NewDriver(board *Board) *Driver {
	return &Driver{Board: board, Ledger: core.NewRatingLedger()}
}

// NextStep tries every detector, in priority order, against the current
// board and returns the first one that fires. The second return value is
// false when the board is already solved or no detector found anything —
// the human solver has nothing left to do.
func (d *Driver) NextStep() (core.StrategyResult, bool) {
	if d.Board.IsSolved() {
		return core.StrategyResult{}, false
	}
	for _, entry := range techniqueOrder {
		removal := entry.Detect(d.Board)
		if !removal.Empty() {
			return core.StrategyResult{Strategy: entry.Strategy, Removal: removal}, true
		}
	}
	return core.StrategyResult{}, false
}

// Apply performs the mutation a StrategyResult describes: every
// candidate in CandidatesToRemove is deleted, and if SetsCell is
// present, that digit is placed (which also triggers the peer-
// elimination update). It then records the strategy's use in the
// ledger and returns the Resolution describing what happened.
//
// Every candidate named in CandidatesToRemove must currently be present;
// that is the detector/driver invariant, and a violation means a
// detector produced a stale result against a board it no longer
// describes. That is a programmer bug, not a recoverable error.
func (d *Driver) Apply(sr core.StrategyResult) core.Resolution {
	for _, cand := range sr.Removal.CandidatesToRemove {
		idx := techniques.IndexOf(cand.Row, cand.Col)
		if !d.Board.RemoveCandidate(idx, cand.Digit) {
			panic("sudoku: apply asked to remove a candidate that was not present")
		}
	}
	if sr.Removal.SetsCell != nil {
		cell := sr.Removal.SetsCell
		idx := techniques.IndexOf(cell.Row, cell.Col)
		d.Board.SetCell(idx, cell.Digit)
	}

	removed := len(sr.Removal.CandidatesToRemove)
	d.Ledger.Add(sr.Strategy, removed)
	return core.Resolution{Strategy: sr.Strategy, CandidatesRemoved: removed}
}

// SolveLikeHuman repeatedly applies NextStep until the board is solved,
// no detector fires, or maxSteps is exhausted (a defensive backstop;
// termination is already guaranteed by the strictly-decreasing
// empty-cell/candidate-count invariant). The returned status is one of
// constants.StatusCompleted, StatusStalled, or StatusMaxStepsReached.
func (d *Driver) SolveLikeHuman(maxSteps int) (bool, string) {
	steps := 0
	for {
		if d.Board.IsSolved() {
			return true, constants.StatusCompleted
		}
		sr, fired := d.NextStep()
		if !fired {
			return false, constants.StatusStalled
		}
		d.Apply(sr)
		steps++
		if maxSteps > 0 && steps >= maxSteps {
			if d.Board.IsSolved() {
				return true, constants.StatusCompleted
			}
			return false, constants.StatusMaxStepsReached
		}
	}
}
