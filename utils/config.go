package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	AliveThreshold      float64       `json:"alive_threshold"`
	FrameRate           time.Duration `json:"frame_rate"`
	CellSize            int           `json:"cell_size"`
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	HistorySize         int           `json:"history_size"`
	Seed                int64         `json:"seed"`
	StartRandom         bool          `json:"start_random"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                30,
		Cols:                50,
		AliveThreshold:      0.7,
		FrameRate:           100 * time.Millisecond,
		CellSize:            10,
		MaxGenerations:      1000,
		AutoRestart:         true,
		StagnationThreshold: 5,
		HistorySize:         5,
		Seed:                0, // 0 seeds from the clock
		StartRandom:         true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the engine or driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	case c.AliveThreshold < 0 || c.AliveThreshold >= 1:
		return errors.Wrapf(ErrInvalidConfig, "alive_threshold must be in [0, 1), got %v", c.AliveThreshold)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must be positive, got %v", c.FrameRate)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cell_size must be positive, got %d", c.CellSize)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	case c.HistorySize < 0:
		return errors.Wrapf(ErrInvalidConfig, "history_size must not be negative, got %d", c.HistorySize)
	}
	return nil
}
