package techniques

import "sudoku-api/pkg/constants"

// Precomputed geometry, built once at package init instead of recomputed
// per detector call.
var (
	// RowIndices[r] / ColIndices[c] / BoxIndices[b] list the 9 cell
	// indices of that row/column/box, row-major.
	RowIndices [constants.GridSize][]int
	ColIndices [constants.GridSize][]int
	BoxIndices [constants.GridSize][]int
)

func init() {
	for r := 0; r < constants.GridSize; r++ {
		for c := 0; c < constants.GridSize; c++ {
			idx := r*constants.GridSize + c
			RowIndices[r] = append(RowIndices[r], idx)
			ColIndices[c] = append(ColIndices[c], idx)

			box := (r/constants.BoxSize)*constants.BoxSize + c/constants.BoxSize
			BoxIndices[box] = append(BoxIndices[box], idx)
		}
	}
}

// RowOf, ColOf, BoxOf return the row, column, and box number of a cell
// index.
func RowOf(idx int) int { return idx / constants.GridSize }
func ColOf(idx int) int { return idx % constants.GridSize }
func BoxOf(idx int) int {
	r, c := RowOf(idx), ColOf(idx)
	return (r/constants.BoxSize)*constants.BoxSize + c/constants.BoxSize
}

// IndexOf returns the cell index for a given row and column.
func IndexOf(row, col int) int {
	return row*constants.GridSize + col
}

// AllUnitsInOrder returns every row, then every column, then every box —
// the scan order several detectors (ObviousPair) require. Callers that
// need a different group ordering (boxes-first, for HiddenSingle and
// HiddenPair) build it themselves from RowIndices/ColIndices/BoxIndices
// rather than reordering this slice, since "rows, columns, boxes" is
// itself a scan-order contract, not an arbitrary default.
func AllUnitsInOrder() []Unit {
	units := make([]Unit, 0, constants.GridSize*3)
	for i := 0; i < constants.GridSize; i++ {
		units = append(units, Unit{Type: UnitRow, Index: i, Cells: RowIndices[i]})
	}
	for i := 0; i < constants.GridSize; i++ {
		units = append(units, Unit{Type: UnitCol, Index: i, Cells: ColIndices[i]})
	}
	for i := 0; i < constants.GridSize; i++ {
		units = append(units, Unit{Type: UnitBox, Index: i, Cells: BoxIndices[i]})
	}
	return units
}

// AllUnitsBoxesFirst returns every box, then every row, then every column
// — the scan order HiddenSingle and HiddenPair require.
func AllUnitsBoxesFirst() []Unit {
	units := make([]Unit, 0, constants.GridSize*3)
	for i := 0; i < constants.GridSize; i++ {
		units = append(units, Unit{Type: UnitBox, Index: i, Cells: BoxIndices[i]})
	}
	for i := 0; i < constants.GridSize; i++ {
		units = append(units, Unit{Type: UnitRow, Index: i, Cells: RowIndices[i]})
	}
	for i := 0; i < constants.GridSize; i++ {
		units = append(units, Unit{Type: UnitCol, Index: i, Cells: ColIndices[i]})
	}
	return units
}

// PeersOf returns every other cell sharing idx's row, column, or box,
// each listed once.
func PeersOf(idx int) []int {
	row, col, box := RowOf(idx), ColOf(idx), BoxOf(idx)
	seen := make(map[int]bool)
	var peers []int
	add := func(i int) {
		if i != idx && !seen[i] {
			seen[i] = true
			peers = append(peers, i)
		}
	}
	for _, i := range RowIndices[row] {
		add(i)
	}
	for _, i := range ColIndices[col] {
		add(i)
	}
	for _, i := range BoxIndices[box] {
		add(i)
	}
	return peers
}
