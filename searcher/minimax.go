package searcher

import (
	"gato/experiments/metrics"
	"gato/game"
	"gato/meta"
	"math"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Result is the computer's chosen move and the score it achieves.
type Result struct {
	Move   game.Move
	Score  int
	Metric metrics.SearchMetric
}

// Minimax searches the game tree with the computer maximizing and the human minimizing.
// It mutates the board it is given during a search and restores it before returning,
// so a Minimax and its board must not be shared between goroutines.
type Minimax struct {
	cutoff        int
	heuristic     game.Heuristic
	heuristicName string
	pruning       bool
	metrics       metrics.Collector
}

// WithCutoff sets the depth at which the search stops and scores with the heuristic.
func WithCutoff(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithHeuristic(name string, heuristic game.Heuristic) Option {
	return func(m *Minimax) {
		if heuristic != nil {
			m.heuristic = heuristic
			m.heuristicName = name
		}
	}
}

// WithPruning toggles alpha-beta pruning. Disabling it visits every node of the tree.
func WithPruning(enabled bool) Option {
	return func(m *Minimax) {
		m.pruning = enabled
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		cutoff:        meta.CUTOFF,
		heuristic:     game.Neutral,
		heuristicName: "neutral",
		pruning:       true,
		metrics:       metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Cutoff() int {
	return m.cutoff
}

// BestMove tries every empty cell for the computer and keeps the first one with the highest score.
// ok is false when the board has no empty cell.
func (m *Minimax) BestMove(board *game.Board) (result Result, ok bool) {
	m.metrics.Start(m.cutoff, m.heuristicName, m.pruning)

	bestScore := math.MinInt
	for _, move := range board.EmptyCells() {
		board.Set(move, game.Computer)
		score := m.search(board, 0, false, math.MinInt, math.MaxInt)
		board.Set(move, game.Empty)

		if score > bestScore {
			bestScore = score
			result.Move = move
			ok = true
		}
	}

	result.Score = bestScore
	result.Metric = m.metrics.Complete(bestScore)
	if ok {
		log.Debug().
			Str("move", result.Move.String()).
			Int("score", result.Score).
			Int("cutoff", m.cutoff).
			Int("nodes", result.Metric.Nodes).
			Int("prunes", result.Metric.Prunes).
			Dur("duration", result.Metric.Duration).
			Msg("search complete")
	}
	return result, ok
}

// Score returns the value of the position with the given side to move.
func (m *Minimax) Score(board *game.Board, maximizing bool) (int, metrics.SearchMetric) {
	m.metrics.Start(m.cutoff, m.heuristicName, m.pruning)
	score := m.search(board, 0, maximizing, math.MinInt, math.MaxInt)
	return score, m.metrics.Complete(score)
}

func (m *Minimax) search(board *game.Board, depth int, maximizing bool, alpha, beta int) int {
	m.metrics.AddNode()

	// Prefer faster wins and slower losses
	switch game.Evaluate(board) {
	case game.WinScore:
		return game.WinScore - depth
	case game.LossScore:
		return game.LossScore + depth
	}
	if board.IsFull() {
		return 0
	}
	if depth >= m.cutoff {
		return m.heuristic(board)
	}

	if maximizing {
		best := math.MinInt
		for _, move := range board.EmptyCells() {
			board.Set(move, game.Computer)
			score := m.search(board, depth+1, false, alpha, beta)
			board.Set(move, game.Empty)

			best = max(best, score)
			alpha = max(alpha, best)
			if m.pruning && beta <= alpha {
				m.metrics.AddPrune()
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range board.EmptyCells() {
		board.Set(move, game.Human)
		score := m.search(board, depth+1, true, alpha, beta)
		board.Set(move, game.Empty)

		best = min(best, score)
		beta = min(beta, best)
		if m.pruning && beta <= alpha {
			m.metrics.AddPrune()
			break
		}
	}
	return best
}
