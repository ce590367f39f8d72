package core

// Cell identifies both a position and the digit placed (or to be placed)
// there.
type Cell struct {
	Row   int
	Col   int
	Digit int
}

// Candidate identifies a single entry in the candidate grid: a digit that
// is, or was, still permitted at a given position.
type Candidate struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Digit int `json:"digit"`
}

// RemovalResult is the proposed mutation a detector returns from a single
// invocation. It is the uniform shape every strategy — placement or pure
// elimination — reports through, which is what lets the Driver stay a flat
// priority loop instead of branching per strategy kind.
type RemovalResult struct {
	// SetsCell is non-nil when this result implies a placement: the digit
	// is to be set at that position. Pure-elimination strategies leave
	// this nil.
	SetsCell *Cell

	// CandidatesToRemove must be nonempty for a pure elimination to count
	// as firing; a placement fires through SetsCell even when this list is
	// empty. For a placement, it lists every candidate the placement
	// itself invalidates (the placed digit in peer cells, and the other
	// candidates the target cell is losing).
	CandidatesToRemove []Candidate

	// Affected is diagnostic only: cells/candidates that justified the
	// deduction. Never consulted by the Driver or the Rater.
	Affected []Candidate
}

// Empty reports whether this result found nothing to do.
func (r RemovalResult) Empty() bool {
	return len(r.CandidatesToRemove) == 0 && r.SetsCell == nil
}

// StrategyResult pairs a detector's RemovalResult with the strategy that
// produced it.
type StrategyResult struct {
	Strategy Strategy
	Removal  RemovalResult
}

// Resolution is what applying a StrategyResult produced: which strategy
// ran, and how many candidates were actually removed from the grid.
type Resolution struct {
	Strategy          Strategy
	CandidatesRemoved int
}
