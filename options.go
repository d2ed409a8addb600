package platforms

import (
	"errors"
	"log/slog"
)

// networkConfig holds mutable state during Network construction.
type networkConfig struct {
	schedules       []Schedule
	maxConcurrency  int
	logger          *slog.Logger
	resultCallbacks []func(StationResult)
}

// Option is a function that configures a [Network] during construction.
//
// Built-in options: [WithSchedule], [WithSchedules], [WithMaxConcurrency],
// [WithLogger], [WithResultCallback].
type Option func(*networkConfig) error

// WithSchedule adds a single [Schedule] to the network.
//
// Can be called multiple times. At least one schedule must be configured for
// [New] to succeed.
func WithSchedule(s Schedule) Option {
	return func(cfg *networkConfig) error {
		cfg.schedules = append(cfg.schedules, s)
		return nil
	}
}

// WithSchedules adds multiple [Schedule] values to the network.
//
// Equivalent to calling [WithSchedule] for each one.
func WithSchedules(schedules ...Schedule) Option {
	return func(cfg *networkConfig) error {
		cfg.schedules = append(cfg.schedules, schedules...)
		return nil
	}
}

// WithMaxConcurrency sets how many stations are planned at the same time.
// Defaults to 4 if not specified.
//
// Returns an error if the value is zero or negative.
func WithMaxConcurrency(n int) Option {
	return func(cfg *networkConfig) error {
		if n <= 0 {
			return errors.New("max concurrency must be positive")
		}
		cfg.maxConcurrency = n
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the Network.
//
// If not specified, [slog.Default] is used.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	n, err := platforms.New(
//	    platforms.WithSchedule(central),
//	    platforms.WithLogger(logger),
//	)
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *networkConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithResultCallback registers a function to be called for every planned station.
//
// Multiple callbacks execute in registration order, after the result has
// been stored. Callbacks run on a single goroutine and must not block.
// Panics within callbacks are recovered and logged.
//
// Example:
//
//	n, err := platforms.New(
//	    platforms.WithSchedules(stations...),
//	    platforms.WithResultCallback(func(r platforms.StationResult) {
//	        if r.Platforms > 4 {
//	            log.Printf("%s needs %d platforms", r.Station, r.Platforms)
//	        }
//	    }),
//	)
//
// Nil callbacks are silently ignored.
func WithResultCallback(cb func(StationResult)) Option {
	return func(cfg *networkConfig) error {
		if cb == nil {
			return nil
		}
		cfg.resultCallbacks = append(cfg.resultCallbacks, cb)
		return nil
	}
}
