package core

import "errors"

// ErrInvalidInput is returned by Load when the puzzle string does not
// contain exactly 81 ASCII digit characters.
var ErrInvalidInput = errors.New("sudoku: input must contain exactly 81 digit characters")

// ErrInconsistentBoard is returned by strict loading when the same digit
// would appear twice in a row, column, or box. The permissive path (the
// one the original source takes) does not perform this check at all.
var ErrInconsistentBoard = errors.New("sudoku: board has a duplicate digit in a row, column, or box")
