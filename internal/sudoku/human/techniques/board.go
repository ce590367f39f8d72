// Package techniques implements the individual deductive pattern
// detectors (last digit, singles, pairs, X-Wing). Each detector is a pure
// function of a BoardInterface snapshot; none of them mutate state. They
// are decoupled from the concrete board implementation so the driver
// package's Board can be swapped or cloned for chained detection without
// this package knowing about it.
package techniques

import "sudoku-api/pkg/constants"

// Candidates is a bitmask of possible digits 1-9 for a single cell. Bit 0
// is unused; bit i corresponds to digit i.
type Candidates uint16

// NewCandidates builds a bitmask from a slice of digits.
func NewCandidates(digits []int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d)
	}
	return c
}

// AllCandidates returns every digit 1..GridSize set.
func AllCandidates() Candidates {
	var c Candidates
	for i := 1; i <= constants.GridSize; i++ {
		c = c.Set(i)
	}
	return c
}

// Has reports whether digit is a candidate.
func (c Candidates) Has(digit int) bool {
	if digit < 1 || digit > constants.GridSize {
		return false
	}
	return c&(1<<uint(digit)) != 0
}

// Set adds digit and returns the new bitmask.
func (c Candidates) Set(digit int) Candidates {
	if digit < 1 || digit > constants.GridSize {
		return c
	}
	return c | (1 << uint(digit))
}

// Clear removes digit and returns the new bitmask.
func (c Candidates) Clear(digit int) Candidates {
	if digit < 1 || digit > constants.GridSize {
		return c
	}
	return c &^ (1 << uint(digit))
}

// Count returns the number of set digits.
func (c Candidates) Count() int {
	count := 0
	for i := 1; i <= constants.GridSize; i++ {
		if c.Has(i) {
			count++
		}
	}
	return count
}

// Only returns the sole candidate digit and true if Count() == 1,
// otherwise (0, false).
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	for i := 1; i <= constants.GridSize; i++ {
		if c.Has(i) {
			return i, true
		}
	}
	return 0, false
}

// ToSlice returns the candidate digits in ascending order.
func (c Candidates) ToSlice() []int {
	var result []int
	for i := 1; i <= constants.GridSize; i++ {
		if c.Has(i) {
			result = append(result, i)
		}
	}
	return result
}

// IsEmpty reports whether no digit is set.
func (c Candidates) IsEmpty() bool {
	return c == 0
}

// Intersect returns digits present in both bitmasks.
func (c Candidates) Intersect(other Candidates) Candidates {
	return c & other
}

// Subtract returns digits present in c but not in other.
func (c Candidates) Subtract(other Candidates) Candidates {
	return c &^ other
}

// Equals reports whether the two bitmasks hold the same digits.
func (c Candidates) Equals(other Candidates) bool {
	return c == other
}

func (c Candidates) String() string {
	if c == 0 {
		return "{}"
	}
	s := "{"
	for i, d := range c.ToSlice() {
		if i > 0 {
			s += ","
		}
		s += string(rune('0' + d))
	}
	return s + "}"
}

// UnitType names which of the three constraint groups a Unit represents.
type UnitType int

const (
	UnitRow UnitType = iota
	UnitCol
	UnitBox
)

func (u UnitType) String() string {
	switch u {
	case UnitRow:
		return "row"
	case UnitCol:
		return "column"
	case UnitBox:
		return "box"
	default:
		return ""
	}
}

// Unit is one row, column, or box: its type, its 0-based index, and the
// cell indices it contains, always in the fixed scan order detectors rely
// on for deterministic behavior.
type Unit struct {
	Type  UnitType
	Index int
	Cells []int
}

// BoardInterface is the slice of board behavior detectors need. Detectors
// only ever read through it except when the Driver itself calls SetCell/
// RemoveCandidate to apply a RemovalResult.
type BoardInterface interface {
	GetCell(idx int) int
	GetCandidatesAt(idx int) Candidates
	CloneBoard() BoardInterface
	SetCell(idx, digit int)
	RemoveCandidate(idx, digit int) bool
}
