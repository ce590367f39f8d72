package human

import (
	"testing"

	"sudoku-api/internal/core"
	"sudoku-api/internal/sudoku/human/techniques"
	"sudoku-api/pkg/constants"
)

func totalCandidates(b *Board) int {
	total := 0
	for _, c := range b.Candidates {
		total += c.Count()
	}
	return total
}

// TestDetectLastDigit_Row reproduces the last-digit row scenario: a board
// with row 0 filled except its last cell. One find/apply cycle places the
// missing digit and eliminates exactly 13 candidates system-wide (the
// placed cell's own last candidate plus every peer that held it).
func TestDetectLastDigit_Row(t *testing.T) {
	b := NewBoard()
	if err := b.Load("123456780" + zeros(72)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	b.RecomputeAllCandidates()

	before := totalCandidates(b)

	driver := NewDriver(b)
	sr, fired := driver.NextStep()
	if !fired {
		t.Fatal("expected LastDigit to fire")
	}
	if sr.Strategy != core.StrategyLastDigit {
		t.Fatalf("expected StrategyLastDigit, got %v", sr.Strategy)
	}
	driver.Apply(sr)

	if got := b.Cells[techniques.IndexOf(0, 8)]; got != 9 {
		t.Errorf("(0,8) = %d, want 9", got)
	}

	after := totalCandidates(b)
	if delta := before - after; delta != 13 {
		t.Errorf("eliminated %d candidates system-wide, want 13", delta)
	}
}

// TestDetectObviousSingle_ManualSetup reproduces the obvious-single
// scenario: a near-empty board where one cell's candidates are manually
// forced down to a single digit. Firing ObviousSingle places that digit
// and eliminates exactly 19 candidates system-wide.
func TestDetectObviousSingle_ManualSetup(t *testing.T) {
	b := NewBoard()
	if err := b.Load("120" + zeros(78)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	b.RecomputeAllCandidates()

	idx := techniques.IndexOf(0, 2)
	b.Candidates[idx] = techniques.NewCandidates([]int{3})

	before := totalCandidates(b)

	driver := NewDriver(b)
	sr, fired := driver.NextStep()
	if !fired {
		t.Fatal("expected ObviousSingle to fire")
	}
	if sr.Strategy != core.StrategyObviousSingle {
		t.Fatalf("expected StrategyObviousSingle, got %v", sr.Strategy)
	}
	driver.Apply(sr)

	if got := b.Cells[idx]; got != 3 {
		t.Errorf("(0,2) = %d, want 3", got)
	}

	after := totalCandidates(b)
	if delta := before - after; delta != 19 {
		t.Errorf("eliminated %d candidates system-wide, want 19", delta)
	}
}

// TestDetectHiddenSingle_ManualSetup reproduces the hidden-single scenario:
// an empty board where digit 1 is manually stripped from every candidate
// set in row 0 except (0,0). HiddenSingle must place 1 at (0,0).
func TestDetectHiddenSingle_ManualSetup(t *testing.T) {
	b := NewBoard()
	if err := b.Load(zeros(81)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	b.RecomputeAllCandidates()

	for col := 1; col <= 8; col++ {
		idx := techniques.IndexOf(0, col)
		b.Candidates[idx] = b.Candidates[idx].Clear(1)
	}

	removal := techniques.DetectHiddenSingle(b)
	if removal.Empty() && removal.SetsCell == nil {
		t.Fatal("expected HiddenSingle to fire")
	}
	if removal.SetsCell == nil {
		t.Fatal("expected a placement")
	}
	if removal.SetsCell.Row != 0 || removal.SetsCell.Col != 0 || removal.SetsCell.Digit != 1 {
		t.Errorf("placement = %+v, want (0,0)=1", removal.SetsCell)
	}
}

// TestSolveLikeHuman_OneEmptyCell exercises the one-empty-cell boundary:
// LastDigit must fire on the first pass and complete the board.
func TestSolveLikeHuman_OneEmptyCell(t *testing.T) {
	solved := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	input := solved[:80] + "0"

	b := NewBoard()
	if err := b.Load(input); err != nil {
		t.Fatalf("Load: %v", err)
	}
	b.RecomputeAllCandidates()

	driver := NewDriver(b)
	if ok, status := driver.SolveLikeHuman(100); !ok || status != constants.StatusCompleted {
		t.Fatalf("expected the board to solve, got ok=%v status=%s", ok, status)
	}
	if b.Serialize() != solved {
		t.Errorf("Serialize() = %s, want %s", b.Serialize(), solved)
	}
	if got := driver.Ledger.Snapshot()[core.StrategyLastDigit]; got != 1 {
		t.Errorf("LastDigit usage count = %d, want 1", got)
	}
}

// TestSolveLikeHuman_AllZero checks the all-zero boundary: the board is
// reported unsolved and recompute_all_candidates sets every cell's
// candidates to {1..9}.
func TestSolveLikeHuman_AllZero(t *testing.T) {
	b := NewBoard()
	if err := b.Load(zeros(81)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.IsSolved() {
		t.Fatal("all-zero board must report unsolved")
	}
	b.RecomputeAllCandidates()
	for idx := 0; idx < 81; idx++ {
		if b.Candidates[idx].Count() != 9 {
			t.Errorf("cell %d has %d candidates, want 9", idx, b.Candidates[idx].Count())
		}
	}
}

// TestSolveLikeHuman_AlreadySolved checks the fully-solved boundary: no
// detector fires and the rating ledger stays empty.
func TestSolveLikeHuman_AlreadySolved(t *testing.T) {
	solved := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

	b := NewBoard()
	if err := b.Load(solved); err != nil {
		t.Fatalf("Load: %v", err)
	}
	b.RecomputeAllCandidates()

	driver := NewDriver(b)
	if !b.IsSolved() {
		t.Fatal("expected the loaded board to already be solved")
	}
	if _, fired := driver.NextStep(); fired {
		t.Error("expected no detector to fire on a solved board")
	}
	if len(driver.Ledger.Snapshot()) != 0 {
		t.Error("expected an empty rating for a solved board")
	}
}

func zeros(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = '0'
	}
	return string(out)
}
