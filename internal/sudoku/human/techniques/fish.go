package techniques

import "sudoku-api/internal/core"

// DetectXWing finds a digit that, across two rows, is a candidate in
// exactly the same pair of columns, and eliminates it from those columns
// in every other row (symmetrically for columns). Scan order:
// row-oriented search first, then column-oriented; digits scanned in
// order 1..9.
func DetectXWing(b BoardInterface) core.RemovalResult {
	if res := xwingOnLines(b, RowIndices[:], true); !res.Empty() {
		return res
	}
	return xwingOnLines(b, ColIndices[:], false)
}

// xwingOnLines looks for the pattern across the 9 given lines (rows or
// columns). rowOriented controls whether the eliminated cells are picked
// by column (true) or by row (false).
func xwingOnLines(b BoardInterface, lines [][]int, rowOriented bool) core.RemovalResult {
	for digit := 1; digit <= 9; digit++ {
		// crossPositions[i] holds, for line i, the cross-indices (columns if
		// rowOriented, rows otherwise) where digit is a candidate.
		var crossPositions [9][]int
		for i := 0; i < 9; i++ {
			for _, idx := range lines[i] {
				if b.GetCell(idx) != 0 || !b.GetCandidatesAt(idx).Has(digit) {
					continue
				}
				if rowOriented {
					crossPositions[i] = append(crossPositions[i], ColOf(idx))
				} else {
					crossPositions[i] = append(crossPositions[i], RowOf(idx))
				}
			}
		}

		for l1 := 0; l1 < 9; l1++ {
			if len(crossPositions[l1]) != 2 {
				continue
			}
			for l2 := l1 + 1; l2 < 9; l2++ {
				if len(crossPositions[l2]) != 2 {
					continue
				}
				if crossPositions[l1][0] != crossPositions[l2][0] || crossPositions[l1][1] != crossPositions[l2][1] {
					continue
				}

				cross1, cross2 := crossPositions[l1][0], crossPositions[l1][1]
				var removed []core.Candidate
				for other := 0; other < 9; other++ {
					if other == l1 || other == l2 {
						continue
					}
					for _, cross := range []int{cross1, cross2} {
						var idx int
						if rowOriented {
							idx = IndexOf(other, cross)
						} else {
							idx = IndexOf(cross, other)
						}
						if b.GetCell(idx) == 0 && b.GetCandidatesAt(idx).Has(digit) {
							removed = append(removed, core.Candidate{Row: RowOf(idx), Col: ColOf(idx), Digit: digit})
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
