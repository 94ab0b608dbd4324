package config

import (
	"fmt"
	"gato/game"
	"gato/meta"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	Search     SearchConfig     `mapstructure:"search"`
	Game       GameConfig       `mapstructure:"game"`
	Log        LogConfig        `mapstructure:"log"`
	Experiment ExperimentConfig `mapstructure:"experiment"`
}

type SearchConfig struct {
	Cutoff    int    `mapstructure:"cutoff"`
	Heuristic string `mapstructure:"heuristic"`
	Pruning   bool   `mapstructure:"pruning"`
}

type GameConfig struct {
	Starter string `mapstructure:"starter"` // "ask", "human" or "computer"
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ExperimentConfig struct {
	Games   int    `mapstructure:"games"`
	Cutoffs []int  `mapstructure:"cutoffs"`
	Seed    uint64 `mapstructure:"seed"`
	Dir     string `mapstructure:"dir"`
}

// Load reads settings from the optional config file at path, then GATO_* environment variables
// (GATO_SEARCH_CUTOFF for search.cutoff), over the defaults in meta.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("search.cutoff", meta.CUTOFF)
	v.SetDefault("search.heuristic", meta.HEURISTIC)
	v.SetDefault("search.pruning", true)
	v.SetDefault("game.starter", meta.STARTER)
	v.SetDefault("log.level", meta.LOG_LEVEL)
	v.SetDefault("experiment.games", meta.GAMES)
	v.SetDefault("experiment.cutoffs", meta.CUTOFFS)
	v.SetDefault("experiment.seed", meta.SEED)
	v.SetDefault("experiment.dir", meta.EXPERIMENTS_DIR)

	v.SetEnvPrefix("GATO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Search.Cutoff <= 0 {
		return fmt.Errorf("search.cutoff must be positive, got %d", c.Search.Cutoff)
	}
	if _, ok := game.HeuristicByName(c.Search.Heuristic); !ok {
		return fmt.Errorf("unknown search.heuristic %q", c.Search.Heuristic)
	}
	switch c.Game.Starter {
	case "ask", "human", "computer":
	default:
		return fmt.Errorf("game.starter must be ask, human or computer, got %q", c.Game.Starter)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	if c.Experiment.Games <= 0 {
		return fmt.Errorf("experiment.games must be positive, got %d", c.Experiment.Games)
	}
	if len(c.Experiment.Cutoffs) == 0 {
		return fmt.Errorf("experiment.cutoffs must not be empty")
	}
	for _, cutoff := range c.Experiment.Cutoffs {
		if cutoff <= 0 {
			return fmt.Errorf("experiment.cutoffs must be positive, got %d", cutoff)
		}
	}
	return nil
}

func (c *Config) Heuristic() game.Heuristic {
	h, _ := game.HeuristicByName(c.Search.Heuristic)
	return h
}

// Starter returns the configured opening side, or ok == false when the human should be asked.
func (c *Config) Starter() (starter game.Cell, ok bool) {
	switch c.Game.Starter {
	case "human":
		return game.Human, true
	case "computer":
		return game.Computer, true
	default:
		return game.Empty, false
	}
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
