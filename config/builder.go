package config

import (
	"fmt"
	"sort"

	"github.com/jpalmerr/platforms"
)

// BuildSchedules converts parsed configuration into SDK Schedule objects,
// one per station, in file order.
//
// Each station's events are its direct events followed by the expansion of
// its recurring services.
func BuildSchedules(cfg *Config) ([]platforms.Schedule, error) {
	schedules := make([]platforms.Schedule, 0, len(cfg.Stations))

	for _, sc := range cfg.Stations {
		s, err := buildSchedule(sc)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	return schedules, nil
}

// buildSchedule converts a single StationConfig to an SDK Schedule.
func buildSchedule(sc StationConfig) (platforms.Schedule, error) {
	var events []platforms.Event

	for _, ec := range sc.Events {
		ev, err := buildEvent(ec)
		if err != nil {
			return platforms.Schedule{}, fmt.Errorf("station (%s): %w", sc.Name, err)
		}
		events = append(events, ev)
	}

	for _, svc := range sc.Services {
		expanded, err := buildServiceEvents(svc)
		if err != nil {
			return platforms.Schedule{}, fmt.Errorf("station (%s): service (%s): %w", sc.Name, svc.Name, err)
		}
		events = append(events, expanded...)
	}

	var opts []platforms.ScheduleOption
	if len(sc.Labels) > 0 {
		opts = append(opts, platforms.WithScheduleLabels(mapToKeyValuePairs(sc.Labels)...))
	}

	s, err := platforms.NewSchedule(sc.Name, events, opts...)
	if err != nil {
		return platforms.Schedule{}, fmt.Errorf("station (%s): %w", sc.Name, err)
	}
	return s, nil
}

// buildEvent converts a single EventConfig to an SDK Event.
func buildEvent(ec EventConfig) (platforms.Event, error) {
	var opts []platforms.EventOption
	if len(ec.Labels) > 0 {
		opts = append(opts, platforms.WithLabels(mapToKeyValuePairs(ec.Labels)...))
	}
	return platforms.NewEvent(ec.Name, ec.Arrive.Minutes(), ec.Depart.Minutes(), opts...)
}

// buildServiceEvents expands a ServiceConfig into events.
func buildServiceEvents(svc ServiceConfig) ([]platforms.Event, error) {
	opts := []platforms.RecurringOption{
		platforms.WithFirstArrival(svc.First.Minutes()),
		platforms.WithLastArrival(svc.last().Minutes()),
		platforms.WithHeadway(svc.Every.Minutes()),
		platforms.WithDwell(svc.Dwell.Minutes()),
	}
	if len(svc.Labels) > 0 {
		opts = append(opts, platforms.WithRecurringLabels(mapToKeyValuePairs(svc.Labels)...))
	}
	return platforms.NewRecurringEvents(svc.Name, opts...)
}

// mapToKeyValuePairs converts a map to a sorted slice of key-value pairs.
func mapToKeyValuePairs(m map[string]string) []string {
	// sort keys for deterministic ordering
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(m)*2)
	for _, k := range keys {
		pairs = append(pairs, k, m[k])
	}
	return pairs
}
