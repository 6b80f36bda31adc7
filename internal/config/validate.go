package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the whole configuration and reports every problem at once.
func (c *Config) Validate() error {
	var err error
	invalid := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if perr := c.OceanParams().Validate(); perr != nil {
		for _, e := range multierr.Errors(perr) {
			invalid("ocean: %v", e)
		}
	}
	if c.Simulation.TimeStep <= 0 {
		invalid("simulation.time_step %v must be positive", c.Simulation.TimeStep)
	}
	if c.Simulation.Duration < 0 {
		invalid("simulation.duration %v must not be negative", c.Simulation.Duration)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		invalid("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		invalid("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return err
}
