package game

import "fmt"

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// Board is the grid of cells, indexed [row][col]. The zero value is an empty board.
type Board [Size][Size]Cell

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) At(row, col int) Cell {
	return b[row][col]
}

// Set writes a cell without any bounds or occupancy check.
func (b *Board) Set(move Move, value Cell) {
	b[move.Row][move.Col] = value
}

func (b *Board) Reset() {
	*b = Board{}
}

// EmptyCells returns every empty cell scanning rows 0..Size-1, then columns 0..Size-1.
// The search relies on this order to break ties between equally scored moves.
func (b *Board) EmptyCells() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

func (b *Board) IsFull() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells hold the given value.
func (b *Board) Count(value Cell) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == value {
				count++
			}
		}
	}
	return count
}

// InBounds reports whether the move lies on the board.
func InBounds(move Move) bool {
	return move.Row >= 0 && move.Row < Size && move.Col >= 0 && move.Col < Size
}
