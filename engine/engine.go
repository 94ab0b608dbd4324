package engine

import "gato/game"

type Outcome int

const (
	InProgress Outcome = iota
	HumanWins
	ComputerWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case HumanWins:
		return "HumanWins"
	case ComputerWins:
		return "ComputerWins"
	case Draw:
		return "Draw"
	default:
		return "InProgress"
	}
}

// Winner is the side that won, or Empty for a draw or an unfinished game.
func (o Outcome) Winner() game.Cell {
	switch o {
	case HumanWins:
		return game.Human
	case ComputerWins:
		return game.Computer
	default:
		return game.Empty
	}
}

// OutcomeOf decides the game from the board. A full board without a line is a draw.
func OutcomeOf(b *game.Board) Outcome {
	if game.HasWon(b, game.Human) {
		return HumanWins
	} else if game.HasWon(b, game.Computer) {
		return ComputerWins
	} else if b.IsFull() {
		return Draw
	}
	return InProgress
}

// Observer is told about the progress of a game, e.g. to render it.
type Observer interface {
	Turn(board *game.Board, player game.Cell)
	Moved(player game.Cell, move game.Move, board *game.Board)
	Finished(outcome Outcome, board *game.Board)
}

type noObserver struct{}

func (noObserver) Turn(*game.Board, game.Cell)            {}
func (noObserver) Moved(game.Cell, game.Move, *game.Board) {}
func (noObserver) Finished(Outcome, *game.Board)           {}
