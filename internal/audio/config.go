package audio

import (
	"errors"
	"fmt"
)

// Config controls the sound adapter.
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0 - 1.0
	SampleRate int
}

// DefaultConfig returns the default audio configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	var errs []error
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume must be within [0, 1], got %g", c.Volume))
	}
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate must be positive, got %d", c.SampleRate))
	}
	if len(errs) > 0 {
		return fmt.Errorf("audio: invalid config: %w", errors.Join(errs...))
	}
	return nil
}
