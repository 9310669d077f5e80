package experiments

import (
	"fmt"
	"reversi/config"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/strategy"
	"reversi/utils"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Standing is a strategy's record over a tournament.
type Standing struct {
	Strategy     string
	Wins         int
	Losses       int
	Draws        int
	Unfinished   int
	DiscsFor     int
	DiscsAgainst int
}

func (s Standing) String() string {
	return fmt.Sprintf("%s: %d-%d-%d (discs %d:%d)", s.Strategy, s.Wins, s.Losses, s.Draws, s.DiscsFor, s.DiscsAgainst)
}

// RunTournament plays every preset against every other one, once with each
// color, and ranks them by wins and then draws.
func RunTournament(cfg config.Config) ([]Standing, Result, error) {
	if len(cfg.Presets) < 2 {
		return nil, Result{}, fmt.Errorf("need at least two strategy presets, got %d", len(cfg.Presets))
	}
	known := strategy.PresetNames()
	for i, name := range cfg.Presets {
		if utils.FindIndex(known, name) < 0 {
			return nil, Result{}, fmt.Errorf("unknown strategy preset %q, want one of %s", name, strings.Join(known, ", "))
		}
		if utils.FindIndex(cfg.Presets[:i], name) >= 0 {
			return nil, Result{}, fmt.Errorf("strategy preset %q listed twice", name)
		}
	}

	configs := make([]metrics.AgentConfig, len(cfg.Presets))
	for i, name := range cfg.Presets {
		configs[i] = metrics.AgentConfig{ID: i + 1, Strategy: name, Training: cfg.Training}
		switch name {
		case strategy.PresetMinimax:
			configs[i].Depth = cfg.Depth
			configs[i].Goroutines = cfg.Goroutines
		case strategy.PresetMCTS:
			configs[i].Goroutines = cfg.Goroutines
		}
	}

	// Each pair meets twice so that both get to start
	matchUps := [][]metrics.AgentConfig{}
	for _, black := range configs {
		for _, white := range configs {
			if black.ID != white.ID {
				matchUps = append(matchUps, []metrics.AgentConfig{black, white})
			}
		}
	}

	result, err := runExperiment("tournament", cfg, configs, matchUps)
	if err != nil {
		return nil, Result{}, err
	}

	standings := rank(configs, result.Games)
	for i, s := range standings {
		log.Info().Msgf("%d. %s", i+1, s)
	}
	return standings, result, nil
}

func rank(configs []metrics.AgentConfig, games []metrics.GameRecord) []Standing {
	byID := make(map[int]*Standing, len(configs))
	standings := make([]Standing, len(configs))
	for i, config := range configs {
		standings[i].Strategy = config.Strategy
		byID[config.ID] = &standings[i]
	}

	for _, g := range games {
		black, white := byID[g.Black], byID[g.White]
		black.DiscsFor += g.BlackScore
		black.DiscsAgainst += g.WhiteScore
		white.DiscsFor += g.WhiteScore
		white.DiscsAgainst += g.BlackScore

		switch g.Winner {
		case game.Black.String():
			black.Wins++
			white.Losses++
		case game.White.String():
			white.Wins++
			black.Losses++
		case engine.Draw:
			black.Draws++
			white.Draws++
		default:
			black.Unfinished++
			white.Unfinished++
		}
	}

	slices.SortStableFunc(standings, func(a, b Standing) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		return b.Draws - a.Draws
	})
	return standings
}
