package config

import (
	"fmt"
	"os"
	"reversi/game"
	"reversi/meta"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	TopologySquare = "square"
	TopologyHex    = "hex"
)

// Config holds the settings of an experiment run.
type Config struct {
	Topology   string // square or hex
	Size       int    // Side length or hex layers, 0 for the topology's default
	Games      int    // Per matchup
	MaxTurns   int
	Presets    []string // Strategy presets taking part
	Training   bool     // Random pick among equally preferred moves
	Seed       uint64
	Depth      int // Minimax look-ahead
	Goroutines int // Minimax workers
	LogLevel   string
	OutDir     string // CSV output root, empty to skip writing
}

// Load reads the configuration from the environment, falling back to the
// defaults in meta.
func Load() Config {
	return Config{
		Topology:   GetEnv("REVERSI_TOPOLOGY", TopologySquare),
		Size:       GetEnvAsInt("REVERSI_SIZE", 0),
		Games:      GetEnvAsInt("REVERSI_GAMES", meta.GAMES),
		MaxTurns:   GetEnvAsInt("REVERSI_MAX_TURNS", meta.MAX_TURNS),
		Presets:    GetEnvAsList("REVERSI_PRESETS", []string{"maxcapture", "avoidcorner", "corner", "minimax"}),
		Training:   GetEnvAsBool("REVERSI_TRAINING", false),
		Seed:       uint64(GetEnvAsInt("REVERSI_SEED", 1)),
		Depth:      GetEnvAsInt("REVERSI_DEPTH", meta.MINIMAX_DEPTH),
		Goroutines: GetEnvAsInt("REVERSI_GOROUTINES", meta.GO_ROUTINES),
		LogLevel:   GetEnv("REVERSI_LOG_LEVEL", "info"),
		OutDir:     GetEnv("REVERSI_OUT_DIR", "results"),
	}
}

// BoardTopology builds the topology the games are played on.
func (c Config) BoardTopology() (game.Topology, error) {
	switch c.Topology {
	case TopologySquare:
		size := c.Size
		if size == 0 {
			size = meta.SQUARE_SIZE
		}
		return game.Square(size)
	case TopologyHex:
		layers := c.Size
		if layers == 0 {
			layers = meta.HEX_LAYERS
		}
		return game.Hex(layers)
	default:
		return nil, fmt.Errorf("unknown topology %q, want %s or %s", c.Topology, TopologySquare, TopologyHex)
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsList reads a comma separated value, see SplitList.
func GetEnvAsList(key string, defaultValue []string) []string {
	values := SplitList(os.Getenv(key))
	if len(values) == 0 {
		return defaultValue
	}
	return values
}

// SplitList splits a comma separated value, dropping blank entries.
func SplitList(value string) []string {
	var values []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
