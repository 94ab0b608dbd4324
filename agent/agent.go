package agent

import (
	"gato/experiments/metrics"
	"gato/game"
)

type Agent interface {
	// FindMove picks the next move for the side to play. The board must be left as it was found.
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error)
}
