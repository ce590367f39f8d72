package core

// Difficulty is the qualitative band a puzzle is placed in once solved,
// derived from the numeric difficulty() score.
type Difficulty string

const (
	DifficultyEasy       Difficulty = "easy"
	DifficultyMedium     Difficulty = "medium"
	DifficultyHard       Difficulty = "hard"
	DifficultyExtreme    Difficulty = "extreme"
	DifficultyImpossible Difficulty = "impossible"
)

// ClassifyDifficulty buckets a raw difficulty() score into a Difficulty
// band. solved should reflect whether solve_like_human actually
// completed the board: a puzzle the human strategies cannot finish is
// DifficultyImpossible regardless of how far the score got, since no
// score is meaningful for a board the catalogue never solves. The
// thresholds otherwise follow the weight table in strategy.go: puzzles
// solved by singles alone land far below puzzles that need a HiddenPair
// or XWing step.
func ClassifyDifficulty(score float64, solved bool) Difficulty {
	if !solved {
		return DifficultyImpossible
	}
	switch {
	case score < 6:
		return DifficultyEasy
	case score < 20:
		return DifficultyMedium
	case score < 60:
		return DifficultyHard
	default:
		return DifficultyExtreme
	}
}

// CellRef identifies a board position, independent of any digit.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
