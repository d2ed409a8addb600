// Package platforms computes how many platforms a station needs so that no
// two overlapping arrivals share one.
//
// The core is [MinPlatforms], a two-pointer sweep over the sorted arrival and
// departure times. Around it the package offers immutable [Event] and
// [Schedule] types built with functional options, per-event platform
// allocation via [Schedule.Assign], and a [Network] that plans many stations
// concurrently.
//
// # Quick Start
//
//	n, err := platforms.MinPlatforms(
//	    []int{900, 940, 950, 1100, 1500, 1800},
//	    []int{910, 1200, 1120, 1130, 1900, 2000},
//	)
//	// n == 3
//
// # Tie-break
//
// A platform is occupied up to and including its departure time. An arrival
// at the same instant as a departure therefore needs a second platform:
//
//	n, _ := platforms.MinPlatforms([]int{100, 200}, []int{200, 300})
//	// n == 2
//
// # Schedules
//
//	ic, _ := platforms.NewEvent("IC 101", 540, 550)
//	shuttles, _ := platforms.NewRecurringEvents("Shuttle",
//	    platforms.WithFirstArrival(360),
//	    platforms.WithLastArrival(480),
//	    platforms.WithHeadway(30),
//	    platforms.WithDwell(5),
//	)
//	central, _ := platforms.NewSchedule("Central", append(shuttles, ic))
//
//	central.MinPlatforms()
//	for _, a := range central.Assign() {
//	    fmt.Println(a.Event.Name(), a.Platform)
//	}
//
// # Errors
//
// Every validation error wraps [ErrInvalidArgument]. Mismatched arrival and
// departure counts are rejected; an empty input needs zero platforms.
//
// # Architecture
//
//   - internal/planner: Bounded worker pool running the sweep per station
//   - internal/store: Latest plan result per station
//   - config: YAML timetable files
//   - cmd/platforms: Command-line interface
package platforms
