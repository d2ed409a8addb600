package planner

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SweepFunc computes the peak occupancy of one station.
//
// This is the planner-internal form of platforms.Sweep, decoupled from the
// platforms package to avoid circular dependencies.
type SweepFunc func(arrivals, departures []int) (platforms int, peakAt int, err error)

// StationInfo contains everything needed to plan a single station.
type StationInfo struct {
	// Name is the station name.
	Name string

	// Labels contains key-value metadata for the station.
	Labels map[string]string

	// Arrivals and Departures hold one entry per event.
	Arrivals   []int
	Departures []int
}

// Result holds the outcome of planning a single station.
type Result struct {
	// Station is the name of the planned station.
	Station string

	// Labels contains the key-value metadata associated with the station.
	Labels map[string]string

	// Events is the number of events considered.
	Events int

	// Platforms is the minimum number of platforms required.
	Platforms int

	// PeakAt is the arrival time at which the peak was first reached.
	PeakAt int

	// Duration is how long the sweep took.
	Duration time.Duration

	// ComputedAt is the timestamp when the sweep finished.
	ComputedAt time.Time

	// Error contains any error returned by the sweep, or a recovered panic.
	Error error
}

// Planner fans station sweeps out over a bounded pool of workers.
type Planner struct {
	sweep          SweepFunc
	maxConcurrency int
	logger         *slog.Logger
}

// NewPlanner creates a [Planner].
//
// Parameters:
//   - sweep: The occupancy computation to run per station
//   - maxConcurrency: Maximum number of sweeps running at once (minimum 1)
//   - logger: Logger for planner events (panic recovery, etc.)
func NewPlanner(sweep SweepFunc, maxConcurrency int, logger *slog.Logger) *Planner {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		sweep:          sweep,
		maxConcurrency: maxConcurrency,
		logger:         logger,
	}
}

// Run plans every station and returns a channel of results.
//
// Run is non-blocking. Results arrive in completion order, not input order.
// The channel is closed once every worker has exited, either because all
// stations were planned or because ctx was cancelled.
func (p *Planner) Run(ctx context.Context, stations []StationInfo) <-chan Result {
	results := make(chan Result, len(stations))
	jobs := make(chan StationInfo, len(stations))

	workers := p.maxConcurrency
	if workers > len(stations) {
		workers = len(stations)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for st := range jobs {
				if ctx.Err() != nil {
					return
				}
				result := p.planStation(st)
				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(results)
		defer wg.Wait()
		defer close(jobs)

		for _, st := range stations {
			select {
			case jobs <- st:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}

// planStation runs the sweep for a single station.
func (p *Planner) planStation(st StationInfo) Result {
	start := time.Now()
	platforms, peakAt, err := p.safeSweep(st)

	return Result{
		Station:    st.Name,
		Labels:     st.Labels,
		Events:     len(st.Arrivals),
		Platforms:  platforms,
		PeakAt:     peakAt,
		Duration:   time.Since(start),
		ComputedAt: time.Now(),
		Error:      err,
	}
}

// safeSweep calls the sweep with panic recovery.
// If the sweep panics, it logs the full stack trace with a correlation ID
// and returns an error containing the ID.
func (p *Planner) safeSweep(st StationInfo) (platforms, peakAt int, err error) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			stack := debug.Stack()

			p.logger.Error("sweep panic",
				"correlation_id", correlationID,
				"station", st.Name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(stack),
			)

			platforms, peakAt = 0, 0
			err = fmt.Errorf("sweep panic (correlation_id: %s)", correlationID)
		}
	}()
	return p.sweep(st.Arrivals, st.Departures)
}
