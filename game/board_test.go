package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// board builds a position from rows of 'X' (human), 'O' (computer) and '.' (empty)
func board(t *testing.T, rows ...string) *Board {
	t.Helper()
	require.Len(t, rows, Size, "Board needs one string per row")
	b := NewBoard()
	for r, row := range rows {
		require.Len(t, row, Size, "Row %d needs one rune per column", r)
		for c, ch := range row {
			switch ch {
			case 'X':
				b.Set(Move{Row: r, Col: c}, Human)
			case 'O':
				b.Set(Move{Row: r, Col: c}, Computer)
			case '.':
			default:
				t.Fatalf("unexpected cell %q", ch)
			}
		}
	}
	return b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Len(t, b.EmptyCells(), Size*Size, "New board should be all empty")
	require.False(t, b.IsFull(), "New board should not be full")
	require.Equal(t, Board{}, *b, "New board should equal the zero board")
}

func TestBoardSetAndAt(t *testing.T) {
	b := NewBoard()
	b.Set(Move{Row: 1, Col: 2}, Computer)
	b.Set(Move{Row: 3, Col: 0}, Human)

	require.Equal(t, Computer, b.At(1, 2))
	require.Equal(t, Human, b.At(3, 0))
	require.Equal(t, Empty, b.At(2, 1), "Untouched cells should stay empty")

	b.Set(Move{Row: 1, Col: 2}, Empty)
	require.Equal(t, Empty, b.At(1, 2), "Setting Empty should clear the cell")
}

func TestEmptyCells(t *testing.T) {
	t.Run("scans row-major", func(t *testing.T) {
		b := board(t,
			"XO.X",
			"....",
			"OXOX",
			".O..",
		)

		got := b.EmptyCells()

		require.Equal(t, []Move{
			{0, 2},
			{1, 0}, {1, 1}, {1, 2}, {1, 3},
			{3, 0}, {3, 2}, {3, 3},
		}, got)
	})

	t.Run("full board has no empty cells", func(t *testing.T) {
		b := board(t,
			"XOXO",
			"XOXO",
			"OXOX",
			"OXOX",
		)

		require.Empty(t, b.EmptyCells())
	})
}

func TestIsFull(t *testing.T) {
	positions := [][]string{
		{"....", "....", "....", "...."},
		{"XOXO", "XOXO", "OXOX", "OXO."},
		{"XOXO", "XOXO", "OXOX", "OXOX"},
		{"X...", ".O..", "..X.", "...O"},
	}
	for _, rows := range positions {
		b := board(t, rows...)
		require.Equal(t, len(b.EmptyCells()) == 0, b.IsFull(),
			"IsFull should hold exactly when there are no empty cells for %v", rows)
	}
}

func TestReset(t *testing.T) {
	b := board(t,
		"XOXO",
		"....",
		"..O.",
		"X...",
	)

	b.Reset()

	require.Equal(t, Board{}, *b, "Reset should clear every cell")
}

func TestCount(t *testing.T) {
	b := board(t,
		"XOXO",
		"....",
		"..O.",
		"X...",
	)

	require.Equal(t, 3, b.Count(Human))
	require.Equal(t, 3, b.Count(Computer))
	require.Equal(t, 10, b.Count(Empty))
}

func TestInBounds(t *testing.T) {
	require.True(t, InBounds(Move{Row: 0, Col: 0}))
	require.True(t, InBounds(Move{Row: 3, Col: 3}))
	require.False(t, InBounds(Move{Row: 4, Col: 0}))
	require.False(t, InBounds(Move{Row: 0, Col: -1}))
}

func TestCell(t *testing.T) {
	require.Equal(t, Computer, Human.Opponent())
	require.Equal(t, Human, Computer.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
	require.Equal(t, "X", Human.Mark())
	require.Equal(t, "O", Computer.Mark())
	require.Equal(t, " ", Empty.Mark())
	require.Equal(t, "(2, 3)", Move{Row: 2, Col: 3}.String())
}
