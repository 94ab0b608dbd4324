package agent

import (
	"gato/experiments/metrics"
	"gato/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly random empty cells, reproducibly for a seed.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	moves := board.EmptyCells()
	if len(moves) == 0 {
		panic("no empty cells left to move to")
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
