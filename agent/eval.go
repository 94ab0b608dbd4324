package agent

import (
	"gato/experiments/metrics"
	"gato/game"
	"gato/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent for the computer's seat backed by a minimax search.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	result, ok := a.minimax.BestMove(board)
	if !ok {
		panic("no empty cells left to move to")
	}
	return result.Move, result.Metric, nil
}
