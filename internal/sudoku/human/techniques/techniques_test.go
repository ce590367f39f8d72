package techniques

import "testing"

// fakeBoard is a minimal BoardInterface over a flat array, letting
// detector tests set up exact candidate grids without going through the
// human package's Board.
type fakeBoard struct {
	cells [81]int
	cands [81]Candidates
}

func newFakeBoard() *fakeBoard {
	fb := &fakeBoard{}
	for i := range fb.cands {
		fb.cands[i] = AllCandidates()
	}
	return fb
}

func (f *fakeBoard) GetCell(idx int) int                { return f.cells[idx] }
func (f *fakeBoard) GetCandidatesAt(idx int) Candidates  { return f.cands[idx] }
func (f *fakeBoard) CloneBoard() BoardInterface {
	clone := *f
	return &clone
}
func (f *fakeBoard) SetCell(idx, digit int) {
	f.cells[idx] = digit
	f.cands[idx] = 0
	for _, peer := range PeersOf(idx) {
		f.cands[peer] = f.cands[peer].Clear(digit)
	}
}
func (f *fakeBoard) RemoveCandidate(idx, digit int) bool {
	if !f.cands[idx].Has(digit) {
		return false
	}
	f.cands[idx] = f.cands[idx].Clear(digit)
	return true
}

// TestDetectPointingPair sets up digit 5 confined, within row 0, to two
// cells that both fall in box 0, and checks it gets eliminated from the
// rest of box 0 outside row 0.
func TestDetectPointingPair(t *testing.T) {
	b := newFakeBoard()
	for _, idx := range RowIndices[0] {
		if BoxOf(idx) != 0 {
			b.cands[idx] = b.cands[idx].Clear(5)
		}
	}
	// Leave digit 5 as a candidate in exactly two row-0/box-0 cells.
	b.cands[IndexOf(0, 2)] = b.cands[IndexOf(0, 2)].Clear(5)

	removal := DetectPointingPair(b)
	if removal.Empty() {
		t.Fatal("expected PointingPair to fire")
	}
	for _, c := range removal.CandidatesToRemove {
		if c.Digit != 5 || c.Row == 0 {
			t.Errorf("unexpected removal %+v, want digit 5 outside row 0", c)
		}
		if BoxOf(IndexOf(c.Row, c.Col)) != 0 {
			t.Errorf("removal %+v should be inside box 0", c)
		}
	}
}

// TestDetectObviousPair sets up two cells in row 0 with identical
// {2,7} candidate sets and checks those digits are removed from the
// rest of the row.
func TestDetectObviousPair(t *testing.T) {
	b := newFakeBoard()
	pair := NewCandidates([]int{2, 7})
	b.cands[IndexOf(0, 0)] = pair
	b.cands[IndexOf(0, 1)] = pair

	removal := DetectObviousPair(b)
	if removal.Empty() {
		t.Fatal("expected ObviousPair to fire")
	}
	for _, c := range removal.CandidatesToRemove {
		if c.Row != 0 || (c.Digit != 2 && c.Digit != 7) {
			t.Errorf("unexpected removal %+v", c)
		}
		if c.Col == 0 || c.Col == 1 {
			t.Errorf("removal %+v should exclude the pair cells themselves", c)
		}
	}
}

// TestDetectHiddenPair sets up digits 3 and 8 confined to the same two
// cells of row 0, and checks every other candidate is stripped from
// those two cells.
func TestDetectHiddenPair(t *testing.T) {
	b := newFakeBoard()
	for _, idx := range RowIndices[0] {
		if idx == IndexOf(0, 0) || idx == IndexOf(0, 1) {
			continue
		}
		b.cands[idx] = b.cands[idx].Clear(3).Clear(8)
	}

	removal := DetectHiddenPair(b)
	if removal.Empty() {
		t.Fatal("expected HiddenPair to fire")
	}
	for _, c := range removal.CandidatesToRemove {
		if c.Row != 0 || (c.Col != 0 && c.Col != 1) {
			t.Errorf("unexpected removal %+v, want within (0,0)/(0,1)", c)
		}
		if c.Digit == 3 || c.Digit == 8 {
			t.Errorf("removal %+v should never target the hidden pair's own digits", c)
		}
	}
}

// TestDetectXWing sets up digit 4 confined to columns 2 and 6 in rows 0
// and 3, and checks it gets eliminated from those columns in every other
// row.
func TestDetectXWing(t *testing.T) {
	b := newFakeBoard()
	for _, r := range []int{0, 3} {
		for c := 0; c < 9; c++ {
			if c != 2 && c != 6 {
				b.cands[IndexOf(r, c)] = b.cands[IndexOf(r, c)].Clear(4)
			}
		}
	}

	removal := DetectXWing(b)
	if removal.Empty() {
		t.Fatal("expected XWing to fire")
	}
	for _, c := range removal.CandidatesToRemove {
		if c.Digit != 4 {
			t.Errorf("unexpected digit in removal %+v", c)
		}
		if c.Col != 2 && c.Col != 6 {
			t.Errorf("removal %+v should be in column 2 or 6", c)
		}
		if c.Row == 0 || c.Row == 3 {
			t.Errorf("removal %+v should exclude the defining rows", c)
		}
	}
}

// TestDetectLastDigit_NoFireOnOpenBoard checks that a fully open board
// (every unit has more than one empty cell) never fires LastDigit.
func TestDetectLastDigit_NoFireOnOpenBoard(t *testing.T) {
	b := newFakeBoard()
	if removal := DetectLastDigit(b); !removal.Empty() || removal.SetsCell != nil {
		t.Errorf("expected no firing on a fully open board, got %+v", removal)
	}
}
