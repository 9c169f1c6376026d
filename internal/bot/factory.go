package bot

import (
	"fmt"

	"broadside/internal/config"
)

// NewPlacer creates the planner for a configured strategy name.
func NewPlacer(strategy string, warmupRounds int) (Placer, error) {
	switch strategy {
	case config.PlacementRandom:
		return RandomPlacer{}, nil
	case config.PlacementLow:
		return LowPlacer{}, nil
	case config.PlacementEdge:
		return EdgePlacer{}, nil
	case config.PlacementLearning:
		return LearningPlacer{WarmupRounds: warmupRounds}, nil
	default:
		return nil, fmt.Errorf("unknown placement strategy: %s", strategy)
	}
}
