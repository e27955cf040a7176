package entity

import (
	"fmt"
)

// Mark is the symbol held by a board cell.
type Mark string

const (
	Empty        Mark = ""
	PlayerMark   Mark = "X"
	OpponentMark Mark = "O"
)

// Rival returns the other side's mark.
func (that Mark) Rival() Mark {
	switch that {
	case PlayerMark:
		return OpponentMark
	case OpponentMark:
		return PlayerMark
	default:
		return Empty
	}
}

const BoardSize = 9

// WinLine is a fixed triple of cell indices.
type WinLine [3]int

// WinLines are scanned rows first, then columns, then diagonals.
// A single legal move can never complete two lines for different marks,
// so the order only decides which of two lines of the same mark is reported.
var WinLines = [8]WinLine{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid in row-major order.
type Board [BoardSize]Mark

// Winner returns the first completed line and its mark.
func (that Board) Winner() (Mark, WinLine, bool) {
	for _, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != Empty && a == b && b == c {
			return a, line, true
		}
	}

	return Empty, WinLine{}, false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// AvailableMoves returns the empty cell indices in ascending order.
func (that Board) AvailableMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			moves = append(moves, i)
		}
	}

	return moves
}

// IsOpen reports whether index is on the board and empty.
func (that Board) IsOpen(index int) bool {
	return index >= 0 && index < BoardSize && that[index] == Empty
}

// ApplyMove returns a copy of the board with mark placed at index.
// The caller guarantees the cell is open; anything else is a bug and panics.
func (that Board) ApplyMove(index int, mark Mark) Board {
	if !that.IsOpen(index) {
		panic(fmt.Errorf("apply move %s at %d: %w", mark, index, ErrCellUnavailable))
	}

	that[index] = mark

	return that
}

// String renders the board as three rows, "." for empty cells.
func (that Board) String() string {
	out := make([]byte, 0, 12)
	for i, cell := range that {
		if cell == Empty {
			out = append(out, '.')
		} else {
			out = append(out, cell[0])
		}
		if i%3 == 2 && i != BoardSize-1 {
			out = append(out, '/')
		}
	}

	return string(out)
}
