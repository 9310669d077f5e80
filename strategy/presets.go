package strategy

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Preset names for the strategies used by agents and experiments.
const (
	PresetMaxCapture  = "maxcapture"
	PresetAvoidCorner = "avoidcorner"
	PresetCorner      = "corner"
	PresetFull        = "full"
	PresetMinimax     = "minimax"
	PresetMCTS        = "mcts"
	PresetAny         = "any"
)

var presets = map[string]func() Strategy{
	PresetMaxCapture: func() Strategy {
		return Chain(MaxCapture{}, UpperLeft{})
	},
	PresetAvoidCorner: func() Strategy {
		return Chain(MaxCapture{}, AvoidCornerAdjacent{}, UpperLeft{})
	},
	PresetCorner: func() Strategy {
		return Chain(Corner{}, MaxCapture{}, UpperLeft{})
	},
	PresetFull: func() Strategy {
		return Chain(MaxCapture{}, AvoidCornerAdjacent{}, Corner{}, UpperLeft{})
	},
	PresetMinimax: func() Strategy {
		return NewMinimax(Chain(MaxCapture{}, UpperLeft{}))
	},
	PresetMCTS: func() Strategy {
		return NewMCTS(1)
	},
	PresetAny: func() Strategy {
		return AnyMove{}
	},
}

// Preset returns a freshly built strategy by name.
func Preset(name string) (Strategy, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy preset %q", name)
	}
	return build(), nil
}

// PresetNames lists the known presets in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
