package experiments

import (
	"path/filepath"
	"reversi/config"
	"reversi/engine"
	"reversi/experiments/metrics"
	"testing"

	"github.com/stretchr/testify/require"
)

func smallConfig(presets ...string) config.Config {
	return config.Config{
		Topology:   config.TopologySquare,
		Size:       4,
		Games:      1,
		MaxTurns:   100,
		Presets:    presets,
		Seed:       7,
		Depth:      1,
		Goroutines: 2,
	}
}

func TestRunTournament(t *testing.T) {
	t.Run("round robin", func(t *testing.T) {
		cfg := smallConfig("maxcapture", "corner", "minimax")
		cfg.OutDir = t.TempDir()

		standings, result, err := RunTournament(cfg)
		require.NoError(t, err)
		require.Len(t, result.Games, 6, "Each pair should meet once with each color")
		require.Len(t, standings, 3)

		wins, losses, results := 0, 0, 0
		for i, s := range standings {
			wins += s.Wins
			losses += s.Losses
			results += s.Wins + s.Losses + s.Draws + s.Unfinished
			if i > 0 {
				require.GreaterOrEqual(t, standings[i-1].Wins, s.Wins, "Standings should be sorted by wins")
			}
		}
		require.Equal(t, wins, losses)
		require.Equal(t, 12, results)

		for _, g := range result.Games {
			require.NotEqual(t, engine.Unfinished, g.Winner)
			require.NotEqual(t, g.Black, g.White)
		}

		require.Equal(t, filepath.Join(cfg.OutDir, "tournament"), filepath.Dir(result.Dir))
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(result.Dir, name))
		}
	})

	t.Run("search settings only go to search strategies", func(t *testing.T) {
		_, result, err := RunTournament(smallConfig("maxcapture", "minimax", "mcts"))
		require.NoError(t, err)
		require.Empty(t, result.Dir)
		require.Equal(t, []metrics.AgentConfig{
			{ID: 1, Strategy: "maxcapture"},
			{ID: 2, Strategy: "minimax", Depth: 1, Goroutines: 2},
			{ID: 3, Strategy: "mcts", Goroutines: 2},
		}, result.Configs)
	})

	t.Run("training agents are reproducible", func(t *testing.T) {
		cfg := smallConfig("any", "maxcapture")
		cfg.Training = true
		cfg.Games = 3

		_, first, err := RunTournament(cfg)
		require.NoError(t, err)
		_, second, err := RunTournament(cfg)
		require.NoError(t, err)

		for i := range first.Games {
			require.Equal(t, first.Games[i].Winner, second.Games[i].Winner)
			require.Equal(t, first.Games[i].BlackScore, second.Games[i].BlackScore)
		}
	})

	t.Run("invalid configurations", func(t *testing.T) {
		for name, cfg := range map[string]config.Config{
			"single preset":    smallConfig("maxcapture"),
			"unknown preset":   smallConfig("maxcapture", "greedy"),
			"duplicate preset": smallConfig("corner", "corner"),
		} {
			_, _, err := RunTournament(cfg)
			require.Error(t, err, name)
		}

		cfg := smallConfig("maxcapture", "corner")
		cfg.Games = 0
		_, _, err := RunTournament(cfg)
		require.Error(t, err)

		cfg = smallConfig("maxcapture", "corner")
		cfg.Topology = "triangle"
		_, _, err = RunTournament(cfg)
		require.Error(t, err)
	})
}

func TestRank(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 1, Strategy: "a"}, {ID: 2, Strategy: "b"}}
	games := []metrics.GameRecord{
		{ID: 1, Black: 1, White: 2, GameMetric: metrics.GameMetric{Winner: "white", BlackScore: 6, WhiteScore: 10}},
		{ID: 2, Black: 2, White: 1, GameMetric: metrics.GameMetric{Winner: "draw", BlackScore: 8, WhiteScore: 8}},
		{ID: 3, Black: 1, White: 2, GameMetric: metrics.GameMetric{Winner: engine.Unfinished, BlackScore: 5, WhiteScore: 4}},
	}

	require.Equal(t, []Standing{
		{Strategy: "b", Wins: 1, Draws: 1, Unfinished: 1, DiscsFor: 22, DiscsAgainst: 19},
		{Strategy: "a", Losses: 1, Draws: 1, Unfinished: 1, DiscsFor: 19, DiscsAgainst: 22},
	}, rank(configs, games))
}

func TestRunSpeedupExperiment(t *testing.T) {
	cfg := smallConfig()
	cfg.Goroutines = 4

	throughputs, result, err := RunSpeedupExperiment(cfg)
	require.NoError(t, err)
	require.Len(t, result.Games, 3)
	require.Len(t, throughputs, 3)

	for i, want := range []int{1, 2, 4} {
		require.Equal(t, want, throughputs[i].Goroutines)
		require.Positive(t, throughputs[i].Moves)
	}
}
