package game

// Size is the fixed width and height of the board.
const Size = 4

// Scores reported by Evaluate for a decided position
const (
	WinScore  = 10
	LossScore = -WinScore
)

type Cell int

const (
	Empty Cell = iota
	Human
	Computer
)

// Heuristic scores a position at the search cutoff, positive favoring the computer.
// Implementations must stay within [-MaxHeuristic, MaxHeuristic].
type Heuristic func(*Board) int

func (c Cell) Opponent() Cell {
	switch c {
	case Human:
		return Computer
	case Computer:
		return Human
	default:
		return Empty
	}
}

// Mark is the symbol drawn on the board for the cell.
func (c Cell) Mark() string {
	switch c {
	case Human:
		return "X"
	case Computer:
		return "O"
	default:
		return " "
	}
}

func (c Cell) String() string {
	switch c {
	case Human:
		return "Human"
	case Computer:
		return "Computer"
	default:
		return "Empty"
	}
}
