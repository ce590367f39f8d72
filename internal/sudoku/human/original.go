package human

// OriginalBoard is an immutable snapshot of a Board as it was loaded,
// kept for restore and for counting originally-empty cells — the
// denominator of the difficulty score.
type OriginalBoard struct {
	cells [81]int
}

// NewOriginalBoard snapshots the given board's cells.
func NewOriginalBoard(b *Board) OriginalBoard {
	return OriginalBoard{cells: b.Cells}
}

// Serialize returns the original board as an 81-character digit string.
func (o OriginalBoard) Serialize() string {
	out := make([]byte, 81)
	for i, d := range o.cells {
		out[i] = byte('0' + d)
	}
	return string(out)
}

// Digit returns the original digit at idx.
func (o OriginalBoard) Digit(idx int) int {
	return o.cells[idx]
}

// EmptyCount returns how many cells were empty in the original load.
func (o OriginalBoard) EmptyCount() int {
	count := 0
	for _, d := range o.cells {
		if d == 0 {
			count++
		}
	}
	return count
}

// Restore copies the original cells back onto the given board and
// rebuilds its candidate grid.
func (o OriginalBoard) Restore(b *Board) {
	b.Cells = o.cells
	b.RecomputeAllCandidates()
}
