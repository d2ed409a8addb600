package store

import "time"

// PlanResult represents the latest plan of a station in storage.
//
// PlanResult is decoupled from the planner's internal types and from the
// public platforms types to allow independent evolution.
type PlanResult struct {
	// Station is the station name. Results are keyed by it.
	Station string

	// Labels contains key-value metadata for the station.
	Labels map[string]string

	// Events is the number of events planned.
	Events int

	// Platforms is the minimum number of platforms required.
	Platforms int

	// PeakAt is the arrival time at which the peak was first reached.
	PeakAt int

	// Duration is how long the sweep took.
	Duration time.Duration

	// ComputedAt is the timestamp of the plan.
	ComputedAt time.Time

	// Error contains the error message if planning failed.
	// nil indicates success.
	Error *string
}

// Store defines the interface for storing plan results.
//
// Store implementations must be safe for concurrent access.
type Store interface {
	// Update stores a plan result.
	// The result is keyed by Station, so subsequent updates replace previous values.
	Update(result PlanResult)

	// Get returns the stored result for a station, if any.
	Get(station string) (PlanResult, bool)

	// GetAll returns all currently stored results in first-insertion order.
	// The returned slice is a snapshot; modifications do not affect the store.
	GetAll() []PlanResult
}
