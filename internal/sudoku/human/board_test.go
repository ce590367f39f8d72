package human

import (
	"testing"

	"sudoku-api/internal/core"
)

func TestBoardLoadSerializeRoundTrip(t *testing.T) {
	input := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

	b := NewBoard()
	if err := b.Load(input); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := b.Serialize(); got != input {
		t.Errorf("Serialize() = %s, want %s", got, input)
	}
}

func TestBoardLoadRejectsWrongLength(t *testing.T) {
	b := NewBoard()
	if err := b.Load("123"); err != core.ErrInvalidInput {
		t.Errorf("Load() error = %v, want core.ErrInvalidInput", err)
	}
}

// TestBoardLoadIsPermissive checks that the plain Load never rejects a
// board with a duplicate digit in a row, column, or box.
func TestBoardLoadIsPermissive(t *testing.T) {
	duplicateRow := "550070000600195000098000060800060003400803001700020006060000280000419005000080079"

	b := NewBoard()
	if err := b.Load(duplicateRow); err != nil {
		t.Errorf("Load() returned an error for a duplicate-digit board, want nil: %v", err)
	}
}

// TestBoardLoadStrictRejectsInconsistentBoard checks that LoadStrict
// refuses the same duplicate-digit board that Load accepts.
func TestBoardLoadStrictRejectsInconsistentBoard(t *testing.T) {
	duplicateRow := "550070000600195000098000060800060003400803001700020006060000280000419005000080079"

	b := NewBoard()
	if err := b.LoadStrict(duplicateRow); err != core.ErrInconsistentBoard {
		t.Errorf("LoadStrict() error = %v, want core.ErrInconsistentBoard", err)
	}
}

func TestBoardLoadStrictAcceptsConsistentBoard(t *testing.T) {
	input := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

	b := NewBoard()
	if err := b.LoadStrict(input); err != nil {
		t.Errorf("LoadStrict() returned an error for a consistent board: %v", err)
	}
}
