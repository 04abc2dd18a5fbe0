package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when a setting is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Size           int           `json:"size" env:"GOL_SIZE"`
	InitialCells   int           `json:"initial_cells" env:"GOL_INITIAL_CELLS"`
	MaxGenerations int           `json:"max_generations" env:"GOL_MAX_GENERATIONS"`
	FrameRate      time.Duration `json:"frame_rate" env:"GOL_FRAME_RATE"`
	UseParallel    bool          `json:"use_parallel" env:"GOL_USE_PARALLEL"`
	UseMemoryPool  bool          `json:"use_memory_pool" env:"GOL_USE_MEMORY_POOL"`
	ClearScreen    bool          `json:"clear_screen" env:"GOL_CLEAR_SCREEN"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:           50,
		InitialCells:   20,
		MaxGenerations: 100,
		FrameRate:      100 * time.Millisecond,
		UseParallel:    false,
		UseMemoryPool:  true,
		ClearScreen:    true,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// LoadEnv overrides config with any GOL_* environment variables that are set
func LoadEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[LoadEnv] failed to parse environment")
	}
	return nil
}

// Validate checks the settings the engine cannot run with
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size must be positive, got %d", c.Size)
	case c.InitialCells < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] initial cells must not be negative, got %d", c.InitialCells)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must not be negative, got %v", c.FrameRate)
	}
	return nil
}
