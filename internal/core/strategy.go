package core

// Strategy is the closed set of deductive techniques the solver knows
// about, ordered by the fixed priority the Driver applies them in. It is a
// sum type, not a hierarchy: every consumer (Driver, Rater, any future
// display layer) switches over this same enumeration rather than over
// concrete detector types.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyLastDigit
	StrategyObviousSingle
	StrategyHiddenSingle
	StrategyPointingPair
	StrategyObviousPair
	StrategyHiddenPair
	StrategyXWing
)

func (s Strategy) String() string {
	switch s {
	case StrategyLastDigit:
		return "last_digit"
	case StrategyObviousSingle:
		return "obvious_single"
	case StrategyHiddenSingle:
		return "hidden_single"
	case StrategyPointingPair:
		return "pointing_pair"
	case StrategyObviousPair:
		return "obvious_pair"
	case StrategyHiddenPair:
		return "hidden_pair"
	case StrategyXWing:
		return "x_wing"
	default:
		return "none"
	}
}

// strategyWeight is the single source of truth for how much each strategy
// contributes to the difficulty score. Both the Rater and any UI summary
// read from this table instead of keeping their own copy.
var strategyWeight = map[Strategy]int{
	StrategyNone:          0,
	StrategyLastDigit:     4,
	StrategyObviousSingle: 5,
	StrategyHiddenSingle:  14,
	StrategyPointingPair:  50,
	StrategyObviousPair:   60,
	StrategyHiddenPair:    70,
	StrategyXWing:         140,
}

// Weight returns the strategy's difficulty weight.
func (s Strategy) Weight() int {
	return strategyWeight[s]
}

// IsPlacement reports whether a firing of this strategy sets a digit
// (singles, last digit) as opposed to only eliminating candidates
// (pointing pair, the pair strategies, X-Wing). The Driver's ledger
// increment rule depends on this distinction.
func (s Strategy) IsPlacement() bool {
	switch s {
	case StrategyLastDigit, StrategyObviousSingle, StrategyHiddenSingle:
		return true
	default:
		return false
	}
}

// RatingLedger tracks how many times, and at what cost, each strategy was
// used over the course of a solve. Placement strategies are counted by
// number of placements; elimination-only strategies are counted by number
// of candidates removed in the firing step. This fixes the dual semantics
// the original source left ambiguous between its next_step and apply
// paths — see DESIGN.md.
type RatingLedger map[Strategy]int

// NewRatingLedger returns an empty ledger.
func NewRatingLedger() RatingLedger {
	return make(RatingLedger)
}

// Add records one application of strategy s that removed candidatesRemoved
// candidates, using the increment rule appropriate to the strategy kind.
func (l RatingLedger) Add(s Strategy, candidatesRemoved int) {
	if s.IsPlacement() {
		l[s]++
		return
	}
	l[s] += candidatesRemoved
}

// totalWeighted returns Σ W(s)·C(s) over the ledger.
func (l RatingLedger) totalWeighted() int {
	total := 0
	for s, count := range l {
		total += s.Weight() * count
	}
	return total
}

// totalCount returns Σ C(s) over the ledger.
func (l RatingLedger) totalCount() int {
	total := 0
	for _, count := range l {
		total += count
	}
	return total
}

// Difficulty computes Σ W(s)·C(s) / originallyEmpty. Returns 0 when there
// were no originally empty cells (a fully solved input).
func (l RatingLedger) Difficulty(originallyEmpty int) float64 {
	if originallyEmpty <= 0 {
		return 0
	}
	return float64(l.totalWeighted()) / float64(originallyEmpty)
}

// Effort computes Σ W(s)·C(s) / Σ C(s), the secondary statistic that uses
// the total candidate-removal count as denominator instead of the
// originally-empty-cell count. Returns 0 when the ledger is empty.
func (l RatingLedger) Effort() float64 {
	total := l.totalCount()
	if total == 0 {
		return 0
	}
	return float64(l.totalWeighted()) / float64(total)
}

// Snapshot returns a plain map copy, suitable for JSON encoding or for
// callers that should not be able to mutate the live ledger.
func (l RatingLedger) Snapshot() map[Strategy]int {
	out := make(map[Strategy]int, len(l))
	for s, c := range l {
		out[s] = c
	}
	return out
}
