// Package astar provides a generic A* graph search over a caller-owned node collection.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Node types embed NodeBase and implement the Node contract (edge cost,
// heuristic, successor enumeration and an identity predicate). The engine
// never allocates or frees nodes; it only writes the search-scoped fields
// carried by NodeBase. A single search is synchronous and single-threaded;
// SearchBatch runs independent searches over independent collections on a
// bounded worker pool.
package astar
