package experiments

import (
	"fmt"
	"reversi/agent"
	"reversi/config"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/strategy"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Result holds the records of an experiment. Dir is where they were
// written, empty when the configuration has no output directory.
type Result struct {
	Dir     string
	Configs []metrics.AgentConfig
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

func runExperiment(name string, cfg config.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Result, error) {
	if cfg.Games < 1 {
		return Result{}, fmt.Errorf("need at least one game per matchup, got %d", cfg.Games)
	}
	topology, err := cfg.BoardTopology()
	if err != nil {
		return Result{}, err
	}

	// Run a number of games for each matchup
	rng := rand.New(rand.NewSource(cfg.Seed))
	result := Result{Configs: configs}
	count := 0

	log.Info().Msgf("starting %s experiment on %s...", name, topology)

	for mi, matchup := range matchUps {
		black := matchup[0]
		white := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between black=%+v and white=%+v...", mi+1, len(matchUps), black, white)

		for i := 0; i < cfg.Games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(topology, cfg.MaxTurns, black, white, rng)
			if err != nil {
				return Result{}, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	if cfg.OutDir == "" {
		return result, nil
	}
	result.Dir, err = store(cfg.OutDir, name, result)
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

func store(root, name string, result Result) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(result.Configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game between two agents on a fresh board
func runGame(topology game.Topology, maxTurns int, black, white metrics.AgentConfig, rng *rand.Rand) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	board, err := game.NewBoard(topology)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	blackAgent, err := createAgent(black, rng.Uint64())
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	whiteAgent, err := createAgent(white, rng.Uint64())
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(board, blackAgent, whiteAgent, engine.WithMaxTurns(maxTurns), engine.WithMetrics())
	winner, gameMetric, moveMetrics := e.Run()

	return winner, gameMetric, moveMetrics, nil
}

func createAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	s, err := createStrategy(config, seed)
	if err != nil {
		return nil, err
	}
	if config.Training {
		return agent.NewTrainingAgent(s, seed), nil
	}
	return agent.NewEvaluationAgent(s), nil
}

func createStrategy(config metrics.AgentConfig, seed uint64) (strategy.Strategy, error) {
	switch config.Strategy {
	case strategy.PresetMinimax:
		options := []strategy.Option{}

		if config.Depth > 0 {
			options = append(options, strategy.WithDepth(config.Depth))
		}
		if config.Goroutines > 0 {
			options = append(options, strategy.WithGoroutines(config.Goroutines))
		}

		return strategy.NewMinimax(strategy.Chain(strategy.MaxCapture{}, strategy.UpperLeft{}), options...), nil
	case strategy.PresetMCTS:
		return strategy.NewMCTS(config.Goroutines, strategy.WithSeed(seed)), nil
	default:
		return strategy.Preset(config.Strategy)
	}
}
