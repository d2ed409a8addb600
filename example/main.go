package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpalmerr/platforms"
)

func main() {
	// recurring API: one declaration expands into a morning of shuttles
	shuttles, err := platforms.NewRecurringEvents("Shuttle",
		platforms.WithFirstArrival(6*60),
		platforms.WithLastArrival(9*60),
		platforms.WithHeadway(20),
		platforms.WithDwell(20),
		platforms.WithRecurringLabels("operator", "metro"),
	)
	if err != nil {
		slog.Error("failed to create shuttles", "error", err)
		os.Exit(1)
	}

	express, _ := platforms.NewEvent("Express", 7*60, 7*60+45,
		platforms.WithLabels("operator", "intercity"),
	)

	central, err := platforms.NewSchedule("Central", append(shuttles, express),
		platforms.WithScheduleLabels("region", "north"),
	)
	if err != nil {
		slog.Error("failed to create schedule", "error", err)
		os.Exit(1)
	}

	var harbourEvents []platforms.Event
	arrivals := []int{900, 940, 950, 1100, 1500, 1800}
	departures := []int{910, 1200, 1120, 1130, 1900, 2000}
	for i := range arrivals {
		ev, _ := platforms.NewEvent(fmt.Sprintf("Train %d", i+1), arrivals[i], departures[i])
		harbourEvents = append(harbourEvents, ev)
	}
	harbour, _ := platforms.NewSchedule("Harbour", harbourEvents)

	network, err := platforms.New(
		platforms.WithSchedules(central, harbour),
		platforms.WithMaxConcurrency(2),
		platforms.WithResultCallback(func(r platforms.StationResult) {
			if r.Platforms > 2 {
				slog.Warn("busy station", "station", r.Station, "platforms", r.Platforms)
			}
		}),
	)
	if err != nil {
		slog.Error("failed to create network", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := network.Plan(ctx)
	if err != nil {
		slog.Error("planning failed", "error", err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Printf("%-8s %2d platforms, peak at %s\n", r.Station, r.Platforms, platforms.FormatClock(r.PeakAt))
	}

	fmt.Println()
	for _, a := range central.Assign() {
		fmt.Printf("  %-16s platform %d\n", a.Event, a.Platform)
	}
}
