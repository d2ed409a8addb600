package platforms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jpalmerr/platforms/internal/planner"
	"github.com/jpalmerr/platforms/internal/store"
)

const defaultMaxConcurrency = 4

// Network plans platform requirements for a set of stations.
//
// Network is created using [New] with functional options and planned with
// [Network.Plan]. Each station is independent; the network only bounds how
// many are computed at once and collects the results.
//
//	n, err := platforms.New(platforms.WithSchedules(central, harbour))
//	if err != nil {
//	    slog.Error("failed to create network", "error", err)
//	    os.Exit(1)
//	}
//	results, err := n.Plan(ctx)
type Network struct {
	schedules       []Schedule
	maxConcurrency  int
	logger          *slog.Logger
	resultCallbacks []func(StationResult)
	store           store.Store
}

// New creates a new [Network] with the given options.
//
// At least one schedule must be configured via [WithSchedule] or
// [WithSchedules], and schedule names must be unique. Max concurrency
// defaults to 4.
func New(opts ...Option) (*Network, error) {
	cfg := &networkConfig{
		schedules:      []Schedule{},
		maxConcurrency: defaultMaxConcurrency,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(cfg.schedules) == 0 {
		return nil, errors.New("at least one schedule is required")
	}

	// results are stored and reported per station name
	seen := make(map[string]bool, len(cfg.schedules))
	for _, s := range cfg.schedules {
		if seen[s.name] {
			return nil, fmt.Errorf("duplicate schedule name: %q", s.name)
		}
		seen[s.name] = true
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Network{
		schedules:       cfg.schedules,
		maxConcurrency:  cfg.maxConcurrency,
		logger:          logger,
		resultCallbacks: cfg.resultCallbacks,
		store:           store.NewMemoryStore(),
	}, nil
}

// Schedules returns a copy of the configured schedules.
func (n *Network) Schedules() []Schedule {
	cp := make([]Schedule, len(n.schedules))
	copy(cp, n.schedules)
	return cp
}

// MaxConcurrency returns how many stations are planned at the same time.
func (n *Network) MaxConcurrency() int {
	return n.maxConcurrency
}

// Plan computes the platform requirement of every station.
//
// Results are returned in schedule order. A station whose computation fails
// is reported with Err set; it does not stop the others. If ctx is cancelled
// before every station is planned, Plan returns the results gathered so far
// together with ctx.Err().
func (n *Network) Plan(ctx context.Context) ([]StationResult, error) {
	n.logger.Info("planning network",
		"stations", len(n.schedules),
		"max_concurrency", n.maxConcurrency,
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := planner.NewPlanner(sweepFunc, n.maxConcurrency, n.logger)

	byStation := make(map[string]StationResult, len(n.schedules))
	for result := range p.Run(ctx, n.toStationInfos()) {
		// store update first (callbacks fire after data is persisted)
		n.store.Update(plannerResultToStoreResult(result))

		public := plannerResultToPublicResult(result)
		for _, cb := range n.resultCallbacks {
			invokeCallbackSafe(cb, public, n.logger)
		}
		byStation[result.Station] = public

		logAttrs := []any{
			"station", result.Station,
			"events", result.Events,
			"platforms", result.Platforms,
			"peak_at", result.PeakAt,
		}
		if result.Error != nil {
			n.logger.Warn("station planned with error", append(logAttrs, "error", result.Error.Error())...)
		} else {
			n.logger.Debug("station planned", logAttrs...)
		}
	}

	results := make([]StationResult, 0, len(n.schedules))
	for _, s := range n.schedules {
		if r, ok := byStation[s.name]; ok {
			results = append(results, r)
		}
	}

	if len(results) < len(n.schedules) {
		if err := ctx.Err(); err != nil {
			return results, err
		}
	}
	return results, nil
}

// Results returns the latest stored result of every station planned so far,
// in the order stations were first planned.
func (n *Network) Results() []StationResult {
	stored := n.store.GetAll()
	out := make([]StationResult, len(stored))
	for i, r := range stored {
		out[i] = storeResultToPublicResult(r)
	}
	return out
}

// Result returns the latest stored result for a station, if it has been
// planned.
func (n *Network) Result(station string) (StationResult, bool) {
	r, ok := n.store.Get(station)
	if !ok {
		return StationResult{}, false
	}
	return storeResultToPublicResult(r), true
}

// toStationInfos converts schedules to the planner's input format.
func (n *Network) toStationInfos() []planner.StationInfo {
	infos := make([]planner.StationInfo, len(n.schedules))
	for i, s := range n.schedules {
		infos[i] = planner.StationInfo{
			Name:       s.name,
			Labels:     copyMap(s.labels),
			Arrivals:   s.Arrivals(),
			Departures: s.Departures(),
		}
	}
	return infos
}

// sweepFunc adapts Sweep to the planner's function type.
func sweepFunc(arrivals, departures []int) (int, int, error) {
	occ, err := Sweep(arrivals, departures)
	return occ.Platforms, occ.PeakAt, err
}

// plannerResultToStoreResult converts a planner result to a store result.
func plannerResultToStoreResult(pr planner.Result) store.PlanResult {
	var errStr *string
	if pr.Error != nil {
		s := pr.Error.Error()
		errStr = &s
	}

	return store.PlanResult{
		Station:    pr.Station,
		Labels:     pr.Labels,
		Events:     pr.Events,
		Platforms:  pr.Platforms,
		PeakAt:     pr.PeakAt,
		Duration:   pr.Duration,
		ComputedAt: pr.ComputedAt,
		Error:      errStr,
	}
}

// plannerResultToPublicResult converts an internal planner result to the public type.
// Labels are copied so callbacks cannot race with the store.
func plannerResultToPublicResult(pr planner.Result) StationResult {
	return StationResult{
		Station:    pr.Station,
		Labels:     copyMap(pr.Labels),
		Events:     pr.Events,
		Platforms:  pr.Platforms,
		PeakAt:     pr.PeakAt,
		Duration:   pr.Duration,
		ComputedAt: pr.ComputedAt,
		Err:        pr.Error,
	}
}

// storeResultToPublicResult converts a stored result back to the public type.
func storeResultToPublicResult(sr store.PlanResult) StationResult {
	var err error
	if sr.Error != nil {
		err = errors.New(*sr.Error)
	}
	return StationResult{
		Station:    sr.Station,
		Labels:     sr.Labels,
		Events:     sr.Events,
		Platforms:  sr.Platforms,
		PeakAt:     sr.PeakAt,
		Duration:   sr.Duration,
		ComputedAt: sr.ComputedAt,
		Err:        err,
	}
}

// invokeCallbackSafe calls a result callback with panic recovery.
// Panics are logged but do not propagate.
func invokeCallbackSafe(cb func(StationResult), result StationResult, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("result callback panicked",
				"panic", r,
				"station", result.Station,
			)
		}
	}()
	cb(result)
}
