package gamemaster

import (
	"fmt"
	"gato/engine"
	"gato/game"

	"github.com/rs/zerolog/log"
)

// Host talks to the human between games.
type Host interface {
	Banner()
	AskStarter() (game.Cell, error)
	AskPlayAgain() (bool, error)
	Goodbye()
}

// Tally counts finished games by outcome.
type Tally map[engine.Outcome]int

// GameMaster manages a play session: who starts each game, and whether another one follows.
type GameMaster struct {
	Engine  *engine.Engine
	host    Host
	starter game.Cell // Empty to ask before each game
	tally   Tally
}

// NewGameMaster hosts games on e. A starter of game.Empty means the human is asked before each game.
func NewGameMaster(e *engine.Engine, host Host, starter game.Cell) *GameMaster {
	return &GameMaster{
		Engine:  e,
		host:    host,
		starter: starter,
		tally:   Tally{},
	}
}

// RunSession plays games until the human declines another one.
// Input errors, io.EOF included, end the session and are returned.
func (gm *GameMaster) RunSession() error {
	gm.host.Banner()

	for {
		starter := gm.starter
		if starter == game.Empty {
			var err error
			if starter, err = gm.host.AskStarter(); err != nil {
				return err
			}
		}

		gm.Engine.Reset(starter)
		result, err := gm.Engine.Run()
		if err != nil {
			return fmt.Errorf("game %s aborted: %w", gm.Engine.ID(), err)
		}
		gm.tally[result.Outcome]++

		again, err := gm.host.AskPlayAgain()
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	log.Info().
		Int("human", gm.tally[engine.HumanWins]).
		Int("computer", gm.tally[engine.ComputerWins]).
		Int("draws", gm.tally[engine.Draw]).
		Msg("session over")
	gm.host.Goodbye()
	return nil
}

func (gm *GameMaster) Tally() Tally {
	return gm.tally
}
