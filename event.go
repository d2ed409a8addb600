package platforms

import (
	"fmt"
	"strings"
)

// Event is a single occupation of a platform, from arrival to departure.
//
// Event is immutable after creation via [NewEvent]. Labels are copied on the
// way in and on the way out.
type Event struct {
	name      string
	arrival   int
	departure int
	labels    map[string]string
}

// Name returns the event's display name.
func (e Event) Name() string {
	return e.name
}

// Arrival returns the instant the event starts occupying a platform.
func (e Event) Arrival() int {
	return e.arrival
}

// Departure returns the instant the event releases its platform. The platform
// is still occupied at this instant.
func (e Event) Departure() int {
	return e.departure
}

// Labels returns a copy of the event's labels, or nil if none are set.
func (e Event) Labels() map[string]string {
	return copyMap(e.labels)
}

// String renders the event as "name (HH:MM-HH:MM)".
func (e Event) String() string {
	return fmt.Sprintf("%s (%s-%s)", e.name, FormatClock(e.arrival), FormatClock(e.departure))
}

// NewEvent creates an [Event] with the given name, arrival and departure.
//
// Returns an error wrapping [ErrInvalidArgument] if the name is blank or the
// departure is earlier than the arrival.
//
// Example:
//
//	ev, err := platforms.NewEvent("IC 101", 540, 550,
//	    platforms.WithLabels("operator", "intercity"),
//	)
func NewEvent(name string, arrival, departure int, opts ...EventOption) (Event, error) {
	if strings.TrimSpace(name) == "" {
		return Event{}, fmt.Errorf("%w: event name cannot be empty", ErrInvalidArgument)
	}
	if departure < arrival {
		return Event{}, fmt.Errorf("%w: event %q departs (%d) before it arrives (%d)",
			ErrInvalidArgument, name, departure, arrival)
	}

	cfg := &eventConfig{
		labels: make(map[string]string),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return Event{}, err
		}
	}

	return Event{
		name:      name,
		arrival:   arrival,
		departure: departure,
		labels:    cfg.labels,
	}, nil
}

// copyMap returns a shallow copy of the map.
func copyMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
