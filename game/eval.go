package game

// MaxHeuristic bounds cutoff evaluations below the smallest win score the search can
// report at its default cutoff (WinScore - 6).
const MaxHeuristic = 3

// lines holds every row, every column and both diagonals.
var lines = buildLines()

func buildLines() [][Size]Move {
	all := make([][Size]Move, 0, 2*Size+2)
	for row := 0; row < Size; row++ {
		var line [Size]Move
		for col := 0; col < Size; col++ {
			line[col] = Move{Row: row, Col: col}
		}
		all = append(all, line)
	}
	for col := 0; col < Size; col++ {
		var line [Size]Move
		for row := 0; row < Size; row++ {
			line[row] = Move{Row: row, Col: col}
		}
		all = append(all, line)
	}
	var diagonal, anti [Size]Move
	for i := 0; i < Size; i++ {
		diagonal[i] = Move{Row: i, Col: i}
		anti[i] = Move{Row: i, Col: Size - 1 - i}
	}
	return append(all, diagonal, anti)
}

// HasWon reports whether player owns every cell of some row, column or diagonal.
func HasWon(b *Board, player Cell) bool {
	for _, line := range lines {
		if owns(b, line, player) {
			return true
		}
	}
	return false
}

func owns(b *Board, line [Size]Move, player Cell) bool {
	for _, m := range line {
		if b[m.Row][m.Col] != player {
			return false
		}
	}
	return true
}

// Evaluate returns WinScore if the computer has won, LossScore if the human has won and 0 otherwise.
func Evaluate(b *Board) int {
	if HasWon(b, Computer) {
		return WinScore
	} else if HasWon(b, Human) {
		return LossScore
	}
	return 0
}

// Neutral treats every undecided position as even.
func Neutral(*Board) int {
	return 0
}

// lineWeights scores a line still open to a single side by how many marks that side has in it
var lineWeights = [Size]int{0, 0, 1, 3}

// OpenLines favors the side owning more lines that the opponent has not yet blocked,
// weighting lines closer to completion more heavily.
func OpenLines(b *Board) int {
	score := 0
	for _, line := range lines {
		computer, human := 0, 0
		for _, m := range line {
			switch b[m.Row][m.Col] {
			case Computer:
				computer++
			case Human:
				human++
			}
		}
		if computer >= Size || human >= Size {
			continue // Decided lines are handled by Evaluate
		}
		if human == 0 {
			score += lineWeights[computer]
		} else if computer == 0 {
			score -= lineWeights[human]
		}
	}
	return clamp(score, -MaxHeuristic, MaxHeuristic)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HeuristicByName resolves a configured heuristic name.
func HeuristicByName(name string) (Heuristic, bool) {
	switch name {
	case "", "neutral":
		return Neutral, true
	case "openlines":
		return OpenLines, true
	default:
		return nil, false
	}
}
