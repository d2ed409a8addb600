package platforms

import "fmt"

// eventConfig holds mutable state during event construction.
type eventConfig struct {
	labels map[string]string
}

// EventOption configures an [Event] during construction with [NewEvent].
type EventOption func(*eventConfig) error

// WithLabels adds metadata labels to the event.
//
// Accepts variadic key-value pairs. The number of arguments must be even.
//
// Example:
//
//	ev, err := platforms.NewEvent("IC 101", 540, 550,
//	    platforms.WithLabels("operator", "intercity", "class", "express"),
//	)
func WithLabels(keyValues ...string) EventOption {
	return func(cfg *eventConfig) error {
		return putLabels(cfg.labels, keyValues, "WithLabels")
	}
}

// putLabels copies key-value pairs into dst.
func putLabels(dst map[string]string, keyValues []string, caller string) error {
	if len(keyValues)%2 != 0 {
		return fmt.Errorf("%w: %s requires an even number of arguments (key-value pairs)",
			ErrInvalidArgument, caller)
	}
	for i := 0; i < len(keyValues); i += 2 {
		dst[keyValues[i]] = keyValues[i+1]
	}
	return nil
}
