package main

import (
	"errors"
	"flag"
	"gato/agent"
	"gato/config"
	"gato/console"
	"gato/engine"
	"gato/experiments"
	"gato/gamemaster"
	"gato/searcher"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("config", "", "Path to a config file (yaml, toml or json)")
	mode := flag.String("mode", "play", "Either play or experiment")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*path)
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(cfg.Level())

	switch *mode {
	case "play":
		err = play(cfg)
	case "experiment":
		err = experiment(cfg)
	default:
		log.Error().Msgf("unknown mode %q", *mode)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msgf("%s failed", *mode)
		os.Exit(1)
	}
}

func play(cfg *config.Config) error {
	c := console.New(os.Stdin, os.Stdout)
	minimax := searcher.NewMinimax(
		searcher.WithCutoff(cfg.Search.Cutoff),
		searcher.WithHeuristic(cfg.Search.Heuristic, cfg.Heuristic()),
		searcher.WithPruning(cfg.Search.Pruning),
		searcher.WithMetrics(),
	)
	e := engine.LocalEngine(c, agent.NewMinimaxAgent(minimax), engine.WithObserver(c))

	starter, _ := cfg.Starter() // Empty means ask
	err := gamemaster.NewGameMaster(e, c, starter).RunSession()
	if errors.Is(err, io.EOF) {
		c.Goodbye()
		return nil
	}
	return err
}

func experiment(cfg *config.Config) error {
	dir, err := experiments.RunCutoffExperiment(experiments.Options{
		Games:     cfg.Experiment.Games,
		Cutoffs:   cfg.Experiment.Cutoffs,
		Heuristic: cfg.Search.Heuristic,
		Pruning:   cfg.Search.Pruning,
		Seed:      cfg.Experiment.Seed,
		Dir:       cfg.Experiment.Dir,
	})
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("experiment results stored")
	return nil
}
