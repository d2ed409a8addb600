package platforms

import "time"

// StationResult holds the outcome of planning a single station.
//
// StationResult is immutable after creation and is what [Network.Plan]
// returns and what result callbacks receive.
type StationResult struct {
	// Station is the name of the planned station.
	Station string

	// Labels contains the key-value metadata associated with the schedule.
	Labels map[string]string

	// Events is the number of events in the schedule.
	Events int

	// Platforms is the minimum number of platforms required.
	Platforms int

	// PeakAt is the arrival time at which Platforms was first reached.
	PeakAt int

	// Duration is how long the sweep took.
	Duration time.Duration

	// ComputedAt is the timestamp when the plan was computed.
	ComputedAt time.Time

	// Err contains any error that occurred while planning.
	Err error
}
