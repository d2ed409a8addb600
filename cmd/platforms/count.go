package main

import (
	"fmt"
	"strconv"

	"github.com/jpalmerr/platforms"
	"github.com/spf13/cobra"
)

// newCountCmd computes the platform count for ad-hoc input.
func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count platforms for a list of arrivals and departures",
		Long: `Compute the minimum number of platforms for the given arrivals and
departures. The i-th arrival and the i-th departure belong to the same event.

Values are plain integers unless --clock is set, in which case they are
HH:MM times.

Example:
  platforms count --arrivals 900,940,950,1100,1500,1800 \
                  --departures 910,1200,1120,1130,1900,2000
  platforms count --clock --arrivals 09:00,09:40 --departures 09:10,12:00`,
		Args: cobra.NoArgs,
		RunE: runCount,
	}

	cmd.Flags().StringSlice("arrivals", nil, "comma-separated arrival times")
	cmd.Flags().StringSlice("departures", nil, "comma-separated departure times")
	cmd.Flags().Bool("clock", false, "parse times as HH:MM")
	cmd.Flags().Bool("peak", false, "also print when the peak is first reached")
	return cmd
}

func runCount(cmd *cobra.Command, args []string) error {
	clock, _ := cmd.Flags().GetBool("clock")
	peak, _ := cmd.Flags().GetBool("peak")

	rawArrivals, _ := cmd.Flags().GetStringSlice("arrivals")
	rawDepartures, _ := cmd.Flags().GetStringSlice("departures")

	arrivals, err := parseTimes(rawArrivals, clock)
	if err != nil {
		return fmt.Errorf("arrivals: %w", err)
	}
	departures, err := parseTimes(rawDepartures, clock)
	if err != nil {
		return fmt.Errorf("departures: %w", err)
	}

	occ, err := platforms.Sweep(arrivals, departures)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !peak || occ.Platforms == 0 {
		fmt.Fprintln(out, occ.Platforms)
		return nil
	}

	at := strconv.Itoa(occ.PeakAt)
	if clock {
		at = platforms.FormatClock(occ.PeakAt)
	}
	fmt.Fprintf(out, "%d (peak at %s)\n", occ.Platforms, at)
	return nil
}

// parseTimes converts raw flag values to integers.
func parseTimes(raw []string, clock bool) ([]int, error) {
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		if clock {
			m, err := platforms.ParseClock(s)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
			continue
		}

		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", platforms.ErrInvalidArgument, s)
		}
		out = append(out, n)
	}
	return out, nil
}
