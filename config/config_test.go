package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gato.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		require.Equal(t, 6, cfg.Search.Cutoff)
		require.Equal(t, "neutral", cfg.Search.Heuristic)
		require.True(t, cfg.Search.Pruning)
		require.Equal(t, "ask", cfg.Game.Starter)
		require.Equal(t, zerolog.InfoLevel, cfg.Level())
		require.Equal(t, 10, cfg.Experiment.Games)
		require.Equal(t, []int{2, 4, 6}, cfg.Experiment.Cutoffs)
		require.Equal(t, uint64(1), cfg.Experiment.Seed)

		_, ok := cfg.Starter()
		require.False(t, ok, "The human should be asked by default")
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
search:
  cutoff: 4
  heuristic: openlines
game:
  starter: computer
log:
  level: debug
experiment:
  games: 3
  cutoffs: [1, 3]
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 4, cfg.Search.Cutoff)
		require.Equal(t, "openlines", cfg.Search.Heuristic)
		require.NotNil(t, cfg.Heuristic())
		require.Equal(t, zerolog.DebugLevel, cfg.Level())
		require.Equal(t, 3, cfg.Experiment.Games)
		require.Equal(t, []int{1, 3}, cfg.Experiment.Cutoffs)
		require.Equal(t, "results", cfg.Experiment.Dir, "Unset keys should keep their defaults")

		starter, ok := cfg.Starter()
		require.True(t, ok)
		require.Equal(t, "Computer", starter.String())
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "search:\n  cutoff: 4\n")
		t.Setenv("GATO_SEARCH_CUTOFF", "5")
		t.Setenv("GATO_GAME_STARTER", "human")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 5, cfg.Search.Cutoff)
		require.Equal(t, "human", cfg.Game.Starter)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, content := range []string{
			"search:\n  cutoff: 0\n",
			"search:\n  heuristic: greedy\n",
			"game:\n  starter: nobody\n",
			"log:\n  level: loud\n",
			"experiment:\n  games: 0\n",
			"experiment:\n  cutoffs: [2, -1]\n",
		} {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err, "Config %q should be rejected", content)
		}
	})
}
