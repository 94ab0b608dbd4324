package engine

import (
	"errors"
	"fmt"
	"gato/agent"
	"gato/experiments/metrics"
	"gato/game"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrIllegalMove = errors.New("illegal move")

type Option func(e *Engine)

type Engine struct {
	Board    *game.Board
	agents   map[game.Cell]agent.Agent
	starter  game.Cell
	turn     game.Cell
	observer Observer
	id       string
}

// Result is the outcome of one game with its metrics.
type Result struct {
	Outcome Outcome
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}

func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		if observer != nil {
			e.observer = observer
		}
	}
}

// WithStarter sets who opens the first game. The human starts by default.
func WithStarter(starter game.Cell) Option {
	return func(e *Engine) {
		if starter == game.Human || starter == game.Computer {
			e.starter = starter
		}
	}
}

// LocalEngine seats the human and computer agents at an empty board.
func LocalEngine(human, computer agent.Agent, options ...Option) *Engine {
	if human == nil || computer == nil {
		panic("both seats need an agent")
	}

	e := &Engine{
		Board: game.NewBoard(),
		agents: map[game.Cell]agent.Agent{
			game.Human:    human,
			game.Computer: computer,
		},
		starter:  game.Human,
		observer: noObserver{},
	}
	for _, option := range options {
		option(e)
	}
	e.Reset(e.starter)
	return e
}

// Reset clears the board for a new game opened by starter.
func (e *Engine) Reset(starter game.Cell) {
	if starter != game.Human && starter != game.Computer {
		panic(fmt.Sprintf("invalid starter %v", starter))
	}
	e.Board.Reset()
	e.starter = starter
	e.turn = starter
	e.id = uuid.NewString()
}

func (e *Engine) ID() string {
	return e.id
}

// Turn is the side to move next.
func (e *Engine) Turn() game.Cell {
	return e.turn
}

// Run plays the current game until a side wins or the board is full.
func (e *Engine) Run() (Result, error) {
	logger := log.With().Str("game", e.id).Logger()
	logger.Info().Msgf("%v is starting", e.starter)

	gameMetric := metrics.GameMetric{
		ID:             e.id,
		StartingPlayer: e.starter.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	outcome := OutcomeOf(e.Board)
	for step := 1; outcome == InProgress; step++ {
		player := e.turn
		e.observer.Turn(e.Board, player)

		move, searchMetric, err := e.agents[player].FindMove(e.Board)
		if err != nil {
			return Result{}, fmt.Errorf("%v failed to move: %w", player, err)
		}
		if err := e.Play(move); err != nil {
			return Result{}, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		logger.Debug().Int("step", step).Stringer("player", player).Stringer("move", move).Msg("move played")

		outcome = OutcomeOf(e.Board)
	}

	e.observer.Finished(outcome, e.Board)

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner := outcome.Winner(); winner != game.Empty {
		gameMetric.Winner = winner.String()
	}
	logger.Info().Msgf("game over after %d moves: %v", gameMetric.TotalMoves, outcome)

	return Result{Outcome: outcome, Game: gameMetric, Moves: moveMetrics}, nil
}

// Play applies a move for the side to move and passes the turn.
func (e *Engine) Play(move game.Move) error {
	if OutcomeOf(e.Board) != InProgress {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if !game.InBounds(move) {
		return fmt.Errorf("%w: %v is off the board", ErrIllegalMove, move)
	}
	if e.Board.At(move.Row, move.Col) != game.Empty {
		return fmt.Errorf("%w: %v is occupied", ErrIllegalMove, move)
	}

	player := e.turn
	e.Board.Set(move, player)
	e.turn = player.Opponent()
	e.observer.Moved(player, move, e.Board)
	return nil
}
