package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for a simulation run
type Config struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Generations int           `json:"generations"` // 0 runs until interrupted
	FrameRate   time.Duration `json:"frame_rate"`
	Variant     string        `json:"variant"`
	Pattern     string        `json:"pattern"`
	ClearScreen bool          `json:"clear_screen"`
	ShowStats   bool          `json:"show_stats"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:       5,
		Height:      5,
		Generations: 10,
		FrameRate:   150 * time.Millisecond,
		Variant:     "graph",
		Pattern:     "blinker",
		ClearScreen: false,
		ShowStats:   true,
	}
}

var (
	knownVariants = map[string]bool{"value": true, "graph": true}
	knownPatterns = map[string]bool{"empty": true, "blinker": true, "block": true, "stripes": true}
)

// Validate rejects configurations the driver cannot run
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative, got %s", c.FrameRate)
	}
	if !knownVariants[c.Variant] {
		return errors.Errorf("[Validate] unknown variant: %q", c.Variant)
	}
	if !knownPatterns[c.Pattern] {
		return errors.Errorf("[Validate] unknown pattern: %q", c.Pattern)
	}
	return nil
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
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}
