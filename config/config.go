// Package config provides YAML timetable parsing for platforms.
//
// This package enables running platforms as a standalone binary with a
// timetable file, as an alternative to building schedules programmatically.
//
// Example timetable:
//
//	title: Northern network
//	max_concurrency: 4
//
//	stations:
//	  - name: Central
//	    labels:
//	      region: north
//	    events:
//	      - name: IC 101
//	        arrive: "09:00"
//	        depart: "09:10"
//	    services:
//	      - name: Shuttle
//	        first: "06:00"
//	        last: "08:00"
//	        every: 30m
//	        dwell: 5m
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jpalmerr/platforms"
)

// defaultMaxConcurrency matches the SDK default.
const defaultMaxConcurrency = 4

// Config is the root configuration structure for a timetable.
//
// It maps directly to the YAML file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Title is a free-form name for the network.
	Title string `yaml:"title"`

	// MaxConcurrency bounds how many stations are planned at once. Defaults to 4.
	MaxConcurrency int `yaml:"max_concurrency"`

	// Stations lists every station in the network.
	Stations []StationConfig `yaml:"stations"`
}

// StationConfig defines a single station and the events it handles.
type StationConfig struct {
	// Name is the station name. Must be unique within the file.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}
	Name string `yaml:"name"`

	// Labels are metadata key-value pairs. Values support env substitution.
	Labels map[string]string `yaml:"labels"`

	// Events are individual arrivals.
	Events []EventConfig `yaml:"events"`

	// Services are recurring patterns expanded into events.
	Services []ServiceConfig `yaml:"services"`
}

// EventConfig defines a single arrival/departure pair.
type EventConfig struct {
	// Name identifies the event within its station.
	Name string `yaml:"name"`

	// Arrive is when the event starts occupying a platform.
	Arrive Clock `yaml:"arrive"`

	// Depart is when the event releases its platform.
	Depart Clock `yaml:"depart"`

	// Labels are metadata key-value pairs.
	Labels map[string]string `yaml:"labels"`
}

// ServiceConfig defines a service that repeats at a fixed headway.
//
// For example, first 06:00, last 08:00, every 30m expands to arrivals at
// 06:00, 06:30, 07:00, 07:30 and 08:00.
type ServiceConfig struct {
	// Name is the base name for generated events.
	Name string `yaml:"name"`

	// First is the arrival time of the first generated event.
	First Clock `yaml:"first"`

	// Last is the latest permitted arrival. Defaults to First.
	Last *Clock `yaml:"last"`

	// Every is the headway between arrivals, in whole minutes (e.g. "15m").
	Every Duration `yaml:"every"`

	// Dwell is how long each generated event occupies its platform.
	Dwell Duration `yaml:"dwell"`

	// Labels are additional labels applied to all generated events.
	Labels map[string]string `yaml:"labels"`
}

// Clock is a time of day expressed as minutes since midnight.
//
// In YAML it accepts either an "HH:MM" string or a bare integer, which is
// taken as minutes since midnight.
type Clock int

// UnmarshalYAML implements yaml.Unmarshaler for Clock.
func (c *Clock) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("time must be a scalar, got %v", node.Kind)
	}

	if node.Tag == "!!int" {
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		*c = Clock(n)
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	minutes, err := platforms.ParseClock(s)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", s, err)
	}
	*c = Clock(minutes)
	return nil
}

// Minutes returns the value in minutes since midnight.
func (c Clock) Minutes() int {
	return int(c)
}

// String renders the clock as "HH:MM".
func (c Clock) String() string {
	return platforms.FormatClock(int(c))
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Minutes returns the duration in whole minutes.
func (d Duration) Minutes() int {
	return int(time.Duration(d) / time.Minute)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML timetable file.
//
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML timetable data.
//
// Environment variables are expanded in the title, station names and label
// values. MaxConcurrency defaults to 4.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = defaultMaxConcurrency
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// EventCount returns the number of events the timetable expands to,
// counting every occurrence of recurring services.
func (c *Config) EventCount() int {
	total := 0
	for _, st := range c.Stations {
		total += len(st.Events)
		for _, svc := range st.Services {
			total += svc.occurrences()
		}
	}
	return total
}

// occurrences returns how many events a validated service expands to.
func (s ServiceConfig) occurrences() int {
	n, err := platforms.CountRecurring(s.First.Minutes(), s.last().Minutes(), s.Every.Minutes())
	if err != nil {
		return 0
	}
	return n
}

// last returns the last arrival, defaulting to the first.
func (s ServiceConfig) last() Clock {
	if s.Last == nil {
		return s.First
	}
	return *s.Last
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be positive, got %d", c.MaxConcurrency)
	}

	title, err := expandEnvVars(c.Title)
	if err != nil {
		return fmt.Errorf("title: %w", err)
	}
	c.Title = title

	if len(c.Stations) == 0 {
		return errors.New("at least one station must be defined")
	}

	stationNames := make(map[string]struct{}, len(c.Stations))
	for i := range c.Stations {
		st := &c.Stations[i]

		name, err := expandEnvVars(st.Name)
		if err != nil {
			return fmt.Errorf("stations[%d]: name: %w", i, err)
		}
		st.Name = strings.TrimSpace(name)
		if st.Name == "" {
			return fmt.Errorf("stations[%d]: name is required", i)
		}
		if _, exists := stationNames[st.Name]; exists {
			return fmt.Errorf("stations[%d]: duplicate station name %q", i, st.Name)
		}
		stationNames[st.Name] = struct{}{}

		ctx := fmt.Sprintf("stations[%d] (%s)", i, st.Name)

		if err := expandLabels(st.Labels, ctx); err != nil {
			return err
		}

		eventNames := make(map[string]struct{}, len(st.Events))
		for j := range st.Events {
			ev := &st.Events[j]
			if strings.TrimSpace(ev.Name) == "" {
				return fmt.Errorf("%s: events[%d]: name is required", ctx, j)
			}
			if _, exists := eventNames[ev.Name]; exists {
				return fmt.Errorf("%s: events[%d]: duplicate event name %q", ctx, j, ev.Name)
			}
			eventNames[ev.Name] = struct{}{}

			if ev.Depart < ev.Arrive {
				return fmt.Errorf("%s: events[%d] (%s): depart %s is before arrive %s",
					ctx, j, ev.Name, ev.Depart, ev.Arrive)
			}
			if err := expandLabels(ev.Labels, fmt.Sprintf("%s: events[%d] (%s)", ctx, j, ev.Name)); err != nil {
				return err
			}
		}

		for j := range st.Services {
			svc := &st.Services[j]
			if err := validateService(svc, fmt.Sprintf("%s: services[%d]", ctx, j)); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateService validates a recurring service definition.
func validateService(svc *ServiceConfig, context string) error {
	if strings.TrimSpace(svc.Name) == "" {
		return fmt.Errorf("%s: name is required", context)
	}
	context = fmt.Sprintf("%s (%s)", context, svc.Name)

	every := svc.Every.Duration()
	if every < time.Minute {
		return fmt.Errorf("%s: every must be at least 1m, got %s", context, every)
	}
	if every%time.Minute != 0 {
		return fmt.Errorf("%s: every must be a whole number of minutes, got %s", context, every)
	}

	dwell := svc.Dwell.Duration()
	if dwell < 0 {
		return fmt.Errorf("%s: dwell cannot be negative, got %s", context, dwell)
	}
	if dwell%time.Minute != 0 {
		return fmt.Errorf("%s: dwell must be a whole number of minutes, got %s", context, dwell)
	}

	if svc.last() < svc.First {
		return fmt.Errorf("%s: last %s is before first %s", context, svc.last(), svc.First)
	}
	if _, err := platforms.CountRecurring(svc.First.Minutes(), svc.last().Minutes(), svc.Every.Minutes()); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}

	return expandLabels(svc.Labels, context)
}

// expandLabels expands environment variables in label values in place.
func expandLabels(labels map[string]string, context string) error {
	for k, v := range labels {
		expanded, err := expandEnvVars(v)
		if err != nil {
			return fmt.Errorf("%s: labels[%s]: %w", context, k, err)
		}
		labels[k] = expanded
	}
	return nil
}
