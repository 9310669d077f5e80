package experiments

import (
	"reversi/config"
	"reversi/experiments/metrics"
	"reversi/strategy"
	"time"

	"github.com/rs/zerolog/log"
)

// Throughput is the average time a minimax agent needed per move.
type Throughput struct {
	Goroutines int
	Moves      int
	MeanMove   time.Duration
}

// RunSpeedupExperiment plays minimax against itself with a doubling number of
// goroutines, up to cfg.Goroutines, and reports the time spent per move.
func RunSpeedupExperiment(cfg config.Config) ([]Throughput, Result, error) {
	configs := []metrics.AgentConfig{}
	for goroutines, id := 1, 1; goroutines <= max(cfg.Goroutines, 1); goroutines, id = goroutines*2, id+1 {
		configs = append(configs, metrics.AgentConfig{
			ID:         id,
			Strategy:   strategy.PresetMinimax,
			Depth:      cfg.Depth,
			Goroutines: goroutines,
		})
	}

	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	result, err := runExperiment("speedup", cfg, configs, matchUps)
	if err != nil {
		return nil, Result{}, err
	}

	throughputs := measure(configs, result)
	for _, tp := range throughputs {
		log.Info().Msgf("%d goroutines: %v per move over %d moves", tp.Goroutines, tp.MeanMove, tp.Moves)
	}
	return throughputs, result, nil
}

func measure(configs []metrics.AgentConfig, result Result) []Throughput {
	// Both colors of a game share a config
	agentOf := make(map[int]int, len(result.Games))
	for _, g := range result.Games {
		agentOf[g.ID] = g.Black
	}

	totals := make(map[int]time.Duration, len(configs))
	counts := make(map[int]int, len(configs))
	for _, m := range result.Moves {
		if m.Passed {
			continue
		}
		id := agentOf[m.Game]
		totals[id] += m.Duration
		counts[id]++
	}

	throughputs := make([]Throughput, 0, len(configs))
	for _, config := range configs {
		tp := Throughput{Goroutines: config.Goroutines, Moves: counts[config.ID]}
		if tp.Moves > 0 {
			tp.MeanMove = totals[config.ID] / time.Duration(tp.Moves)
		}
		throughputs = append(throughputs, tp)
	}
	return throughputs
}
