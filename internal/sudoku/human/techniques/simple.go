package techniques

import (
	"sudoku-api/internal/core"
	"sudoku-api/pkg/constants"
)

// placementRemoval builds the RemovalResult for placing digit at idx: the
// target cell loses every other candidate it held, and every peer loses
// digit from its candidate set, if present. Folding both into one removal
// list is what lets the Driver treat placements and pure eliminations the
// same way.
func placementRemoval(b BoardInterface, idx, digit int) core.RemovalResult {
	var removed []core.Candidate
	row, col := RowOf(idx), ColOf(idx)

	for _, d := range b.GetCandidatesAt(idx).ToSlice() {
		if d != digit {
			removed = append(removed, core.Candidate{Row: row, Col: col, Digit: d})
		}
	}

	for _, peer := range PeersOf(idx) {
		if b.GetCandidatesAt(peer).Has(digit) {
			removed = append(removed, core.Candidate{Row: RowOf(peer), Col: ColOf(peer), Digit: digit})
		}
	}

	return core.RemovalResult{
		SetsCell:           &core.Cell{Row: row, Col: col, Digit: digit},
		CandidatesToRemove: removed,
	}
}

// DetectLastDigit finds a row, column, or box with exactly one empty
// cell and returns the placement of its forced digit. Scan order: all
// rows, then all columns, then all boxes; first match wins.
func DetectLastDigit(b BoardInterface) core.RemovalResult {
	for _, unit := range AllUnitsInOrder() {
		empties := 0
		lastEmpty := -1
		present := Candidates(0)
		for _, idx := range unit.Cells {
			if v := b.GetCell(idx); v == 0 {
				empties++
				lastEmpty = idx
			} else {
				present = present.Set(v)
			}
		}
		if empties != 1 {
			continue
		}
		missing, ok := AllCandidates().Subtract(present).Only()
		if !ok {
			continue
		}
		return placementRemoval(b, lastEmpty, missing)
	}
	return core.RemovalResult{}
}

// DetectObviousSingle finds a cell whose candidate set has cardinality
// one, scanning row-major.
func DetectObviousSingle(b BoardInterface) core.RemovalResult {
	for idx := 0; idx < constants.TotalCells; idx++ {
		if b.GetCell(idx) != 0 {
			continue
		}
		if digit, ok := b.GetCandidatesAt(idx).Only(); ok {
			return placementRemoval(b, idx, digit)
		}
	}
	return core.RemovalResult{}
}

// DetectHiddenSingle finds a digit that, within some group, is a
// candidate of exactly one cell. Scan order: boxes first, then rows,
// then columns; within a group, digits are tried in order 1..9.
func DetectHiddenSingle(b BoardInterface) core.RemovalResult {
	for _, unit := range AllUnitsBoxesFirst() {
		for digit := 1; digit <= constants.GridSize; digit++ {
			count := 0
			only := -1
			for _, idx := range unit.Cells {
				if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
					count++
					only = idx
				}
			}
			if count == 1 {
				return placementRemoval(b, only, digit)
			}
		}
	}
	return core.RemovalResult{}
}
