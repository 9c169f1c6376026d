package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Placement strategy names.
const (
	PlacementRandom   = "random"
	PlacementLow      = "low"
	PlacementEdge     = "edge"
	PlacementLearning = "learning"
)

// Scan strategy names.
const (
	ScanDensity = "density"
	ScanSweep   = "sweep"
)

// EngineConfig selects the behaviour of one engine instance.
type EngineConfig struct {
	BoardSize     int    `yaml:"board_size" json:"board_size"`
	MinShipLength int    `yaml:"min_ship_length" json:"min_ship_length"`
	Placement     string `yaml:"placement" json:"placement"`
	Scan          string `yaml:"scan" json:"scan"`
	// MiddleSweep starts the sweep scan from the middle row instead of the top.
	MiddleSweep   bool `yaml:"middle_sweep" json:"middle_sweep"`
	LearningShots bool `yaml:"learning_shots" json:"learning_shots"`
	// LearningWarmupRounds is how many rounds learning placement defers to edge placement.
	LearningWarmupRounds int `yaml:"learning_warmup_rounds" json:"learning_warmup_rounds"`
	// Seed fixes the random source; 0 means time seeded.
	Seed int64 `yaml:"seed" json:"seed"`
}

// Default returns the stock engine profile.
func Default() EngineConfig {
	return EngineConfig{
		BoardSize:            10,
		MinShipLength:        3,
		Placement:            PlacementEdge,
		Scan:                 ScanDensity,
		LearningShots:        true,
		LearningWarmupRounds: 1,
	}
}

// Validate checks the profile for values the engine cannot run with.
func (c EngineConfig) Validate() error {
	if c.MinShipLength <= 0 {
		return fmt.Errorf("min_ship_length must be positive, got %d", c.MinShipLength)
	}
	if c.BoardSize < c.MinShipLength {
		return fmt.Errorf("board_size %d is smaller than min_ship_length %d", c.BoardSize, c.MinShipLength)
	}
	switch c.Placement {
	case PlacementRandom, PlacementLow, PlacementEdge, PlacementLearning:
	default:
		return fmt.Errorf("unknown placement strategy: %q", c.Placement)
	}
	switch c.Scan {
	case ScanDensity, ScanSweep:
	default:
		return fmt.Errorf("unknown scan strategy: %q", c.Scan)
	}
	if c.LearningWarmupRounds < 0 {
		return fmt.Errorf("learning_warmup_rounds must not be negative, got %d", c.LearningWarmupRounds)
	}
	return nil
}

// ParseEngineConfig decodes a YAML profile over the defaults and validates it.
func ParseEngineConfig(data []byte) (EngineConfig, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return EngineConfig{}, fmt.Errorf("failed to unmarshal engine config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return EngineConfig{}, fmt.Errorf("invalid engine config: %w", err)
	}
	return c, nil
}

// ReadEngineConfig reads and parses a profile without touching the global.
func ReadEngineConfig(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("failed to read engine config: %w", err)
	}
	return ParseEngineConfig(data)
}

var (
	cfg      *EngineConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadEngineConfig loads the process-wide engine profile from the given path.
func LoadEngineConfig(path string) error {
	loadOnce.Do(func() {
		c, err := ReadEngineConfig(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetEngineConfig returns the global engine profile, or the defaults if none was loaded.
func GetEngineConfig() EngineConfig {
	if cfg == nil {
		return Default()
	}
	return *cfg
}
