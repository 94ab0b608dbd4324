package gamemaster

import (
	"gato/engine"
	"gato/experiments/metrics"
	"gato/game"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type rowAgent struct {
	row int
}

func (a rowAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	for col := 0; col < game.Size; col++ {
		if board.At(a.row, col) == game.Empty {
			return game.Move{Row: a.row, Col: col}, metrics.SearchMetric{}, nil
		}
	}
	panic("row is full")
}

type scriptedHost struct {
	starters []game.Cell
	answers  []bool
	banners  int
	goodbyes int
}

func (h *scriptedHost) Banner() { h.banners++ }

func (h *scriptedHost) Goodbye() { h.goodbyes++ }

func (h *scriptedHost) AskStarter() (game.Cell, error) {
	if len(h.starters) == 0 {
		return game.Empty, io.EOF
	}
	starter := h.starters[0]
	h.starters = h.starters[1:]
	return starter, nil
}

func (h *scriptedHost) AskPlayAgain() (bool, error) {
	if len(h.answers) == 0 {
		return false, io.EOF
	}
	again := h.answers[0]
	h.answers = h.answers[1:]
	return again, nil
}

func newEngine() *engine.Engine {
	return engine.LocalEngine(rowAgent{row: 0}, rowAgent{row: 2})
}

func TestRunSession(t *testing.T) {
	t.Run("asks who starts before each game", func(t *testing.T) {
		host := &scriptedHost{
			starters: []game.Cell{game.Human, game.Computer},
			answers:  []bool{true, false},
		}
		gm := NewGameMaster(newEngine(), host, game.Empty)

		err := gm.RunSession()

		require.NoError(t, err)
		require.Equal(t, Tally{engine.HumanWins: 1, engine.ComputerWins: 1}, gm.Tally(), "Whoever starts should win the race")
		require.Equal(t, 1, host.banners)
		require.Equal(t, 1, host.goodbyes)
		require.Empty(t, host.starters)
	})

	t.Run("configured starter skips the question", func(t *testing.T) {
		host := &scriptedHost{answers: []bool{true, true, false}}
		gm := NewGameMaster(newEngine(), host, game.Computer)

		err := gm.RunSession()

		require.NoError(t, err)
		require.Equal(t, Tally{engine.ComputerWins: 3}, gm.Tally())
	})

	t.Run("end of input ends the session", func(t *testing.T) {
		host := &scriptedHost{starters: []game.Cell{game.Human}}
		gm := NewGameMaster(newEngine(), host, game.Empty)

		err := gm.RunSession()

		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, 1, gm.Tally()[engine.HumanWins], "The finished game should still count")
		require.Zero(t, host.goodbyes)
	})
}
