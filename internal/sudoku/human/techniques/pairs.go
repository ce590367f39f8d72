package techniques

import "sudoku-api/internal/core"

// eliminationResult is a thin convenience for building a pure-elimination
// RemovalResult (no SetsCell) from a list of candidates to drop.
func eliminationResult(removed []core.Candidate) core.RemovalResult {
	return core.RemovalResult{CandidatesToRemove: removed}
}

// DetectPointingPair finds a digit confined, within a single row or
// column, to exactly two cells that both fall in the same box, and
// eliminates that digit from the rest of the box. Scan order: rows
// first, then columns; first group+digit combination with an actual
// elimination fires.
func DetectPointingPair(b BoardInterface) core.RemovalResult {
	scanLine := func(lineIndices []int) core.RemovalResult {
		for digit := 1; digit <= 9; digit++ {
			var positions []int
			for _, idx := range lineIndices {
				if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
					positions = append(positions, idx)
				}
			}
			if len(positions) != 2 || BoxOf(positions[0]) != BoxOf(positions[1]) {
				continue
			}
			box := BoxOf(positions[0])
			var removed []core.Candidate
			for _, idx := range BoxIndices[box] {
				if idx == positions[0] || idx == positions[1] {
					continue
				}
				if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
					removed = append(removed, core.Candidate{Row: RowOf(idx), Col: ColOf(idx), Digit: digit})
				}
			}
			if len(removed) > 0 {
				return eliminationResult(removed)
			}
		}
		return core.RemovalResult{}
	}

	for r := 0; r < 9; r++ {
		if res := scanLine(RowIndices[r]); !res.Empty() {
			return res
		}
	}
	for c := 0; c < 9; c++ {
		if res := scanLine(ColIndices[c]); !res.Empty() {
			return res
		}
	}
	return core.RemovalResult{}
}

// DetectObviousPair finds two cells in a group with identical
// two-candidate sets and eliminates those two digits from the rest of
// the group. Scan order: rows first, columns next, boxes last.
func DetectObviousPair(b BoardInterface) core.RemovalResult {
	for _, unit := range AllUnitsInOrder() {
		var pairCells []int
		for _, idx := range unit.Cells {
			if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Count() == 2 {
				pairCells = append(pairCells, idx)
			}
		}
		for i := 0; i < len(pairCells); i++ {
			for j := i + 1; j < len(pairCells); j++ {
				idx1, idx2 := pairCells[i], pairCells[j]
				set := b.GetCandidatesAt(idx1)
				if !set.Equals(b.GetCandidatesAt(idx2)) {
					continue
				}
				digits := set.ToSlice()
				var removed []core.Candidate
				for _, idx := range unit.Cells {
					if idx == idx1 || idx == idx2 || b.GetCell(idx) != 0 {
						continue
					}
					for _, d := range digits {
						if b.GetCandidatesAt(idx).Has(d) {
							removed = append(removed, core.Candidate{Row: RowOf(idx), Col: ColOf(idx), Digit: d})
						}
					}
				}
				if len(removed) > 0 {
					return eliminationResult(removed)
				}
			}
		}
	}
	return core.RemovalResult{}
}

// DetectHiddenPair finds two digits confined, within a group, to the
// same two cells, and eliminates every other candidate from those two
// cells. Scan order: boxes first, then rows, then columns.
func DetectHiddenPair(b BoardInterface) core.RemovalResult {
	for _, unit := range AllUnitsBoxesFirst() {
		positions := make(map[int][]int, 9)
		for digit := 1; digit <= 9; digit++ {
			for _, idx := range unit.Cells {
				if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
					positions[digit] = append(positions[digit], idx)
				}
			}
		}

		var pairDigits []int
		for digit := 1; digit <= 9; digit++ {
			if len(positions[digit]) == 2 {
				pairDigits = append(pairDigits, digit)
			}
		}

		for i := 0; i < len(pairDigits); i++ {
			for j := i + 1; j < len(pairDigits); j++ {
				d1, d2 := pairDigits[i], pairDigits[j]
				p1, p2 := positions[d1], positions[d2]
				if p1[0] != p2[0] || p1[1] != p2[1] {
					continue
				}
				var removed []core.Candidate
				for _, idx := range p1 {
					for _, d := range b.GetCandidatesAt(idx).ToSlice() {
						if d != d1 && d != d2 {
							removed = append(removed, core.Candidate{Row: RowOf(idx), Col: ColOf(idx), Digit: d})
						}
					}
				}
				if len(removed) > 0 {
					return eliminationResult(removed)
				}
			}
		}
	}
	return core.RemovalResult{}
}
