package platforms

import (
	"fmt"
	"strings"
)

// Schedule is the set of events handled by one station.
//
// Schedule is immutable after creation via [NewSchedule]. Event names are
// unique within a schedule so that assignments can be reported per event.
type Schedule struct {
	name   string
	events []Event
	labels map[string]string
}

// scheduleConfig holds mutable state during schedule construction.
type scheduleConfig struct {
	labels map[string]string
}

// ScheduleOption configures a [Schedule] during construction with [NewSchedule].
type ScheduleOption func(*scheduleConfig) error

// WithScheduleLabels adds metadata labels to the schedule.
//
// Returns an error if an odd number of arguments is provided.
func WithScheduleLabels(keyValues ...string) ScheduleOption {
	return func(cfg *scheduleConfig) error {
		return putLabels(cfg.labels, keyValues, "WithScheduleLabels")
	}
}

// NewSchedule creates a [Schedule] for the named station.
//
// A schedule with no events is valid and needs no platforms. Returns an error
// if the name is blank or two events share a name.
//
// Example:
//
//	ic, _ := platforms.NewEvent("IC 101", 540, 550)
//	rx, _ := platforms.NewEvent("RX 7", 545, 600)
//	s, err := platforms.NewSchedule("Central", []platforms.Event{ic, rx})
//	// s.MinPlatforms() == 2
func NewSchedule(name string, events []Event, opts ...ScheduleOption) (Schedule, error) {
	if strings.TrimSpace(name) == "" {
		return Schedule{}, fmt.Errorf("%w: schedule name cannot be empty", ErrInvalidArgument)
	}

	seen := make(map[string]bool, len(events))
	for _, ev := range events {
		if seen[ev.name] {
			return Schedule{}, fmt.Errorf("%w: duplicate event name: %q", ErrInvalidArgument, ev.name)
		}
		seen[ev.name] = true
	}

	cfg := &scheduleConfig{
		labels: make(map[string]string),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return Schedule{}, err
		}
	}

	cp := make([]Event, len(events))
	copy(cp, events)

	return Schedule{
		name:   name,
		events: cp,
		labels: cfg.labels,
	}, nil
}

// Name returns the station name.
func (s Schedule) Name() string {
	return s.name
}

// Labels returns a copy of the schedule's labels.
func (s Schedule) Labels() map[string]string {
	return copyMap(s.labels)
}

// Events returns a copy of the schedule's events in insertion order.
func (s Schedule) Events() []Event {
	cp := make([]Event, len(s.events))
	copy(cp, s.events)
	return cp
}

// Len returns the number of events in the schedule.
func (s Schedule) Len() int {
	return len(s.events)
}

// Arrivals returns the arrival times in event order.
func (s Schedule) Arrivals() []int {
	out := make([]int, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.arrival
	}
	return out
}

// Departures returns the departure times in event order.
func (s Schedule) Departures() []int {
	out := make([]int, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.departure
	}
	return out
}

// Occupancy returns the peak occupancy of the station.
func (s Schedule) Occupancy() Occupancy {
	// lengths always match, so Sweep cannot fail here
	occ, _ := Sweep(s.Arrivals(), s.Departures())
	return occ
}

// MinPlatforms returns the minimum number of platforms the station needs.
func (s Schedule) MinPlatforms() int {
	return s.Occupancy().Platforms
}
