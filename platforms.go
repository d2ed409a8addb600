package platforms

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidArgument is wrapped by every validation error returned from this
// package. Use [errors.Is] to detect it.
var ErrInvalidArgument = errors.New("invalid argument")

// Occupancy summarises the busiest instant of a set of intervals.
type Occupancy struct {
	// Platforms is the maximum number of intervals open at the same instant.
	Platforms int

	// PeakAt is the arrival time at which Platforms was first reached.
	// It is 0 when there are no intervals.
	PeakAt int
}

// MinPlatforms returns the minimum number of platforms needed so that no two
// overlapping events share one.
//
// arrivals[i] and departures[i] describe the same event, but only the two
// multisets of values matter: both slices are sorted independently, so the
// result does not depend on how either slice is ordered. An arrival at the
// same instant as a departure counts as overlapping.
//
// The caller's slices are never modified. An empty input yields 0. Slices of
// different lengths yield an error wrapping [ErrInvalidArgument].
//
// Example:
//
//	n, err := platforms.MinPlatforms(
//	    []int{900, 940, 950, 1100, 1500, 1800},
//	    []int{910, 1200, 1120, 1130, 1900, 2000},
//	)
//	// n == 3
func MinPlatforms(arrivals, departures []int) (int, error) {
	occ, err := Sweep(arrivals, departures)
	if err != nil {
		return 0, err
	}
	return occ.Platforms, nil
}

// Sweep runs the same two-pointer sweep as [MinPlatforms] and also reports
// when the peak was first reached.
func Sweep(arrivals, departures []int) (Occupancy, error) {
	if len(arrivals) != len(departures) {
		return Occupancy{}, fmt.Errorf("%w: %d arrivals but %d departures",
			ErrInvalidArgument, len(arrivals), len(departures))
	}

	n := len(arrivals)
	if n == 0 {
		return Occupancy{}, nil
	}

	arr := slices.Clone(arrivals)
	dep := slices.Clone(departures)
	slices.Sort(arr)
	slices.Sort(dep)

	// the first arrival is always open before any departure is considered
	current, peak, peakAt := 1, 1, arr[0]

	i, j := 1, 0
	for i < n && j < n {
		if arr[i] <= dep[j] {
			current++
			if current > peak {
				peak, peakAt = current, arr[i]
			}
			i++
		} else {
			current--
			j++
		}
	}

	return Occupancy{Platforms: peak, PeakAt: peakAt}, nil
}
