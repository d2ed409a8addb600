package platforms

import (
	"fmt"
	"sort"
	"strings"
)

// maxRecurringEvents caps the expansion of a single recurring service.
const maxRecurringEvents = 10000

// NewRecurringEvents expands a service that repeats at a fixed headway into
// individual events.
//
// Arrivals are generated at first, first+headway, first+2*headway and so on,
// up to and including the last arrival. Each event departs dwell units after
// it arrives and is named "<baseName> <HH:MM>". Every event carries a
// "service" label set to baseName, merged with [WithRecurringLabels].
//
// Example:
//
//	shuttles, err := platforms.NewRecurringEvents("Shuttle",
//	    platforms.WithFirstArrival(360), // 06:00
//	    platforms.WithLastArrival(480),  // 08:00
//	    platforms.WithHeadway(30),
//	    platforms.WithDwell(5),
//	)
//	// 5 events: 06:00, 06:30, 07:00, 07:30, 08:00
func NewRecurringEvents(baseName string, opts ...RecurringOption) ([]Event, error) {
	if strings.TrimSpace(baseName) == "" {
		return nil, fmt.Errorf("%w: base name cannot be empty", ErrInvalidArgument)
	}

	cfg := &recurringConfig{
		labels: make(map[string]string),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.headway == 0 {
		return nil, fmt.Errorf("%w: headway required", ErrInvalidArgument)
	}
	if !cfg.hasLast {
		cfg.last = cfg.first
	}

	count, err := CountRecurring(cfg.first, cfg.last, cfg.headway)
	if err != nil {
		return nil, fmt.Errorf("service %q: %w", baseName, err)
	}

	// static labels override the automatic service label
	labels := mergeMaps(map[string]string{"service": baseName}, cfg.labels)
	labelPairs := flattenMap(labels)

	events := make([]Event, 0, count)
	for k := 0; k < count; k++ {
		arrival := cfg.first + k*cfg.headway
		name := fmt.Sprintf("%s %s", baseName, FormatClock(arrival))

		ev, err := NewEvent(name, arrival, arrival+cfg.dwell, WithLabels(labelPairs...))
		if err != nil {
			return nil, fmt.Errorf("failed to create event %q: %w", name, err)
		}
		events = append(events, ev)
	}

	return events, nil
}

// CountRecurring returns how many arrivals a service produces when it runs
// from first to last, inclusive, every headway units.
//
// Returns an error wrapping [ErrInvalidArgument] if headway is not positive,
// last is before first, or the service would expand to more than 10 000
// events.
func CountRecurring(first, last, headway int) (int, error) {
	if headway <= 0 {
		return 0, fmt.Errorf("%w: headway must be positive, got %d", ErrInvalidArgument, headway)
	}
	if last < first {
		return 0, fmt.Errorf("%w: last arrival %s is before first arrival %s",
			ErrInvalidArgument, FormatClock(last), FormatClock(first))
	}

	// last-first can overflow int; the unsigned difference is exact.
	steps := (uint64(last) - uint64(first)) / uint64(headway)
	if steps >= maxRecurringEvents {
		return 0, fmt.Errorf("%w: %s to %s every %d exceeds the limit of %d events",
			ErrInvalidArgument, FormatClock(first), FormatClock(last), headway, maxRecurringEvents)
	}
	return int(steps) + 1, nil
}

// mergeMaps merges multiple maps, with later maps taking precedence.
func mergeMaps(maps ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// flattenMap converts a map to a slice of key-value pairs for variadic functions.
// Keys are sorted for deterministic output.
func flattenMap(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(m)*2)
	for _, k := range keys {
		result = append(result, k, m[k])
	}
	return result
}
