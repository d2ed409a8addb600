// Package planner runs the platform sweep for many stations concurrently.
//
// This package is internal to platforms and implements a worker pool with a
// configurable concurrency limit. Each station is planned independently, so
// the pool only bounds how many sweeps run at once.
//
// The main components are:
//
//   - [Planner]: Bounded worker pool emitting one [Result] per station
//   - [StationInfo]: Input for a single station
//   - [SweepFunc]: The occupancy computation the workers run
//
// Users of the platforms library should not need to interact with this
// package directly. Planning is driven by platforms.Network.
package planner
