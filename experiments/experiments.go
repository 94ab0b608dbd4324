package experiments

import (
	"fmt"
	"gato/agent"
	"gato/engine"
	"gato/experiments/metrics"
	"gato/game"
	"gato/searcher"

	"github.com/rs/zerolog/log"
)

// Options describes a cutoff experiment. Each cutoff gets its own agent, which plays Games games
// against a random opponent seeded from Seed.
type Options struct {
	Games     int
	Cutoffs   []int
	Heuristic string
	Pruning   bool
	Seed      uint64
	Dir       string // Root directory for results
}

// RunCutoffExperiment plays the minimax agent against a random agent at each cutoff, alternating
// who starts, and returns the directory holding the CSV results.
func RunCutoffExperiment(opts Options) (string, error) {
	if opts.Games <= 0 || len(opts.Cutoffs) == 0 {
		return "", fmt.Errorf("experiment needs games and cutoffs, got %d games and %d cutoffs", opts.Games, len(opts.Cutoffs))
	}
	heuristic, ok := game.HeuristicByName(opts.Heuristic)
	if !ok {
		return "", fmt.Errorf("unknown heuristic %q", opts.Heuristic)
	}

	configs := make([]metrics.AgentConfig, 0, len(opts.Cutoffs))
	for i, cutoff := range opts.Cutoffs {
		configs = append(configs, metrics.AgentConfig{
			ID:        i + 1,
			Cutoff:    cutoff,
			Heuristic: opts.Heuristic,
			Pruning:   opts.Pruning,
		})
	}

	return runExperiment("cutoff", configs, opts, heuristic)
}

func runExperiment(name string, configs []metrics.AgentConfig, opts Options, heuristic game.Heuristic) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	seed := opts.Seed

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting agent %d of %d with config=%+v...", ci+1, len(configs), config)

		minimax := searcher.NewMinimax(
			searcher.WithCutoff(config.Cutoff),
			searcher.WithHeuristic(config.Heuristic, heuristic),
			searcher.WithPruning(config.Pruning),
			searcher.WithMetrics(),
		)
		computer := agent.NewMinimaxAgent(minimax)

		for i := 0; i < opts.Games; i++ {
			starter := game.Human
			if i%2 == 1 {
				starter = game.Computer
			}

			result, err := runGame(computer, seed, starter)
			if err != nil {
				return "", fmt.Errorf("agent %d game %d failed: %w", config.ID, i+1, err)
			}
			seed++

			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent:      config.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       result.Game.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed agent %d game %d of %d: %v", config.ID, i+1, opts.Games, result.Outcome)
		}
		log.Info().Msgf("completed agent %d of %d", ci+1, len(configs))
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(name, opts.Dir, configs, gameRecords, moveRecords)
}

// runGame seats a random agent in the human's chair against the computer
func runGame(computer agent.Agent, seed uint64, starter game.Cell) (engine.Result, error) {
	e := engine.LocalEngine(agent.NewRandomAgent(seed), computer, engine.WithStarter(starter))
	return e.Run()
}

func store(name, root string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
