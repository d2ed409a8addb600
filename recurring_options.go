package platforms

import "fmt"

// recurringConfig holds configuration during recurring service expansion.
type recurringConfig struct {
	first   int
	last    int
	hasLast bool
	headway int
	dwell   int
	labels  map[string]string
}

// RecurringOption configures recurring service expansion.
// RecurringOption implements the functional options pattern for [NewRecurringEvents].
type RecurringOption func(*recurringConfig) error

// WithFirstArrival sets the arrival time of the first generated event.
// Defaults to 0.
func WithFirstArrival(t int) RecurringOption {
	return func(cfg *recurringConfig) error {
		cfg.first = t
		return nil
	}
}

// WithLastArrival sets the latest arrival time a generated event may have.
// The last generated event arrives at or before t. Defaults to the first
// arrival, which yields a single event.
func WithLastArrival(t int) RecurringOption {
	return func(cfg *recurringConfig) error {
		cfg.last = t
		cfg.hasLast = true
		return nil
	}
}

// WithHeadway sets the gap between consecutive arrivals. Required.
//
// Returns an error if the headway is zero or negative.
func WithHeadway(n int) RecurringOption {
	return func(cfg *recurringConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: headway must be positive, got %d", ErrInvalidArgument, n)
		}
		cfg.headway = n
		return nil
	}
}

// WithDwell sets how long each generated event occupies its platform.
// Defaults to 0, meaning departure equals arrival.
//
// Returns an error if the dwell is negative.
func WithDwell(n int) RecurringOption {
	return func(cfg *recurringConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: dwell cannot be negative, got %d", ErrInvalidArgument, n)
		}
		cfg.dwell = n
		return nil
	}
}

// WithRecurringLabels adds static labels to all generated events.
// They take precedence over the automatic "service" label on collision.
//
// Returns an error if an odd number of arguments is provided.
func WithRecurringLabels(keyValues ...string) RecurringOption {
	return func(cfg *recurringConfig) error {
		return putLabels(cfg.labels, keyValues, "WithRecurringLabels")
	}
}
