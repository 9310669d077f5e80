package main

import (
	"flag"
	"fmt"
	"os"
	"reversi/config"
	"reversi/experiments"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	err := godotenv.Load()
	if err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}
	cfg := config.Load()

	experiment := flag.String("experiment", "tournament", "Experiment to run: tournament or speedup")
	flag.StringVar(&cfg.Topology, "topology", cfg.Topology, "Board topology: square or hex")
	flag.IntVar(&cfg.Size, "size", cfg.Size, "Square side length or hex layers, 0 for the default")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Number of games per matchup")
	flag.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Maximum number of turns per game")
	presets := flag.String("presets", strings.Join(cfg.Presets, ","), "Comma separated strategy presets")
	flag.BoolVar(&cfg.Training, "training", cfg.Training, "Pick randomly among equally preferred moves")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for training agents")
	flag.IntVar(&cfg.Depth, "depth", cfg.Depth, "Minimax look-ahead in own moves")
	flag.IntVar(&cfg.Goroutines, "goroutines", cfg.Goroutines, "Minimax goroutines")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory for CSV results, empty to skip")
	flag.Parse()

	if list := config.SplitList(*presets); len(list) > 0 {
		cfg.Presets = list
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if err := run(*experiment, cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}
}

func run(experiment string, cfg config.Config) error {
	switch experiment {
	case "tournament":
		standings, result, err := experiments.RunTournament(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("Tournament over %d games:\n", len(result.Games))
		for i, s := range standings {
			fmt.Printf("%d. %s\n", i+1, s)
		}
	case "speedup":
		throughputs, _, err := experiments.RunSpeedupExperiment(cfg)
		if err != nil {
			return err
		}
		for _, tp := range throughputs {
			fmt.Printf("%3d goroutines: %v per move\n", tp.Goroutines, tp.MeanMove)
		}
	default:
		return fmt.Errorf("unknown experiment %q", experiment)
	}
	return nil
}
