// Package human implements the human-style strategy engine: the Board
// and its candidate grid, and the fixed-priority Driver that walks the
// detector catalogue in pkg techniques and records each step in a
// core.RatingLedger, from which the difficulty number is computed.
package human

import (
	"sudoku-api/internal/core"
	"sudoku-api/internal/sudoku/dp"
	"sudoku-api/internal/sudoku/human/techniques"
)

// Board is a 9x9 grid of digits plus, for every empty cell, the set of
// digits still permitted by its row, column, and box. Cells are indexed
// row-major: idx = row*9 + col.
type Board struct {
	Cells      [81]int
	Candidates [81]techniques.Candidates
}

// NewBoard returns an all-empty board.
func NewBoard() *Board {
	return &Board{}
}

// Load fills the board from an 81-character digit string, after
// discarding any non-digit characters. It fails unless exactly 81 digit
// characters remain.
func (b *Board) Load(s string) error {
	digits := make([]int, 0, 81)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) != 81 {
		return core.ErrInvalidInput
	}
	for i, d := range digits {
		b.Cells[i] = d
		b.Candidates[i] = 0
	}
	return nil
}

// LoadStrict behaves like Load, but additionally rejects a board that
// already places the same digit twice in some row, column, or box,
// returning core.ErrInconsistentBoard in that case. The permissive Load
// above never performs this check; LoadStrict is the opt-in validation
// path for callers that need to refuse a malformed board up front.
func (b *Board) LoadStrict(s string) error {
	if err := b.Load(s); err != nil {
		return err
	}
	if !dp.IsValid(b.Cells[:]) {
		return core.ErrInconsistentBoard
	}
	return nil
}

// Serialize concatenates the board row-major as an 81-character digit
// string.
func (b *Board) Serialize() string {
	out := make([]byte, 81)
	for i, d := range b.Cells {
		out[i] = byte('0' + d)
	}
	return string(out)
}

// CanPlace reports whether digit may legally be placed at idx: the cell
// is empty and digit appears nowhere in its row, column, or box.
func (b *Board) CanPlace(idx, digit int) bool {
	if b.Cells[idx] != 0 {
		return false
	}
	row, col, box := techniques.RowOf(idx), techniques.ColOf(idx), techniques.BoxOf(idx)
	for _, i := range techniques.RowIndices[row] {
		if b.Cells[i] == digit {
			return false
		}
	}
	for _, i := range techniques.ColIndices[col] {
		if b.Cells[i] == digit {
			return false
		}
	}
	for _, i := range techniques.BoxIndices[box] {
		if b.Cells[i] == digit {
			return false
		}
	}
	return true
}

// RecomputeAllCandidates rebuilds the candidate grid from scratch: every
// empty cell gets {1..9} minus the digits already placed in its row,
// column, and box.
func (b *Board) RecomputeAllCandidates() {
	for idx := 0; idx < 81; idx++ {
		if b.Cells[idx] != 0 {
			b.Candidates[idx] = 0
			continue
		}
		used := techniques.Candidates(0)
		row, col, box := techniques.RowOf(idx), techniques.ColOf(idx), techniques.BoxOf(idx)
		for _, i := range techniques.RowIndices[row] {
			if b.Cells[i] != 0 {
				used = used.Set(b.Cells[i])
			}
		}
		for _, i := range techniques.ColIndices[col] {
			if b.Cells[i] != 0 {
				used = used.Set(b.Cells[i])
			}
		}
		for _, i := range techniques.BoxIndices[box] {
			if b.Cells[i] != 0 {
				used = used.Set(b.Cells[i])
			}
		}
		b.Candidates[idx] = techniques.AllCandidates().Subtract(used)
	}
}

// SetCell places digit at idx, empties its candidate set, and removes
// digit from the candidate sets of every peer.
func (b *Board) SetCell(idx, digit int) {
	b.Cells[idx] = digit
	b.Candidates[idx] = 0
	for _, peer := range techniques.PeersOf(idx) {
		b.Candidates[peer] = b.Candidates[peer].Clear(digit)
	}
}

// RemoveCandidate removes digit from idx's candidate set, reporting
// whether it had been present.
func (b *Board) RemoveCandidate(idx, digit int) bool {
	if !b.Candidates[idx].Has(digit) {
		return false
	}
	b.Candidates[idx] = b.Candidates[idx].Clear(digit)
	return true
}

// IsSolved reports whether every cell holds a nonzero digit.
func (b *Board) IsSolved() bool {
	for _, d := range b.Cells {
		if d == 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// GetCell, GetCandidatesAt, CloneBoard implement techniques.BoardInterface.
func (b *Board) GetCell(idx int) int                           { return b.Cells[idx] }
func (b *Board) GetCandidatesAt(idx int) techniques.Candidates { return b.Candidates[idx] }
func (b *Board) CloneBoard() techniques.BoardInterface          { return b.Clone() }
