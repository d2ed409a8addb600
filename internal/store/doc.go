// Package store keeps the latest planning result for each station.
//
// This package is internal to platforms. A platforms.Network replans every station on
// each call, and the store holds the most recent outcome per station so it
// can be read back without replanning.
//
// The main components are:
//
//   - [Store]: Interface defining storage operations
//   - [MemoryStore]: In-memory implementation of Store
//   - [PlanResult]: Storage representation of a station's plan
//
// The store is designed for concurrent access with proper synchronization.
package store
