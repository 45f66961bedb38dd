package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrInvalidConfig = errors.New("config validation failed")
	ErrUnknownMode   = errors.New("unknown mode")
)

// ParseMode maps user input to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q; want one of %v", ErrUnknownMode, s, Modes)
}

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs error

	sim := cfg.Simulation
	if sim.Mode != "" {
		if _, err := ParseMode(sim.Mode); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("simulation.mode: %w", err))
		}
	}
	if sim.Target != nil && *sim.Target <= 0 {
		errs = multierr.Append(errs, errors.New("simulation.target must be >= 1"))
	}
	if sim.Trials != nil && *sim.Trials <= 0 {
		errs = multierr.Append(errs, errors.New("simulation.trials must be >= 1"))
	}
	if sim.ScanMax != nil && *sim.ScanMax < 0 {
		errs = multierr.Append(errs, errors.New("simulation.scan_max must be >= 0"))
	}

	if cfg.Run.Workers != nil && *cfg.Run.Workers < 0 {
		errs = multierr.Append(errs, errors.New("run.workers must be >= 0 (0 means one per CPU)"))
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}
	return nil
}
