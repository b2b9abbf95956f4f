package astar

import (
	"iter"
	"slices"

	"github.com/pdrpinto/astarkit/internal"
)

// Result is a read-only view over a finished search. The path it describes
// lives in the caller's nodes, so it stays valid only until those nodes are
// searched again.
type Result[NodeType Node[NodeType]] struct {
	searchID string
	goal     NodeType
	status   Status
	expanded int
}

// SearchID identifies the search in logs and traces.
func (result *Result[NodeType]) SearchID() string { return result.searchID }

// Status returns the final loop state.
func (result *Result[NodeType]) Status() Status { return result.status }

// Successful reports whether the finish node was reached.
func (result *Result[NodeType]) Successful() bool { return result.status == Found }

// Expanded returns how many nodes were moved to the closed set.
func (result *Result[NodeType]) Expanded() int { return result.expanded }

// Weight returns the accumulated cost of the path.
func (result *Result[NodeType]) Weight() (float64, error) {
	if !result.Successful() {
		return 0, ErrNoPath
	}
	return result.goal.searchState().g, nil
}

// Steps returns the number of edges on the path.
func (result *Result[NodeType]) Steps() (int, error) {
	if !result.Successful() {
		return 0, ErrNoPath
	}
	return result.goal.searchState().steps, nil
}

// Nodes yields the path from goal back to start by following predecessor
// links. The sequence is empty when the search was not successful and may
// be iterated any number of times.
func (result *Result[NodeType]) Nodes() iter.Seq[NodeType] {
	return func(yield func(NodeType) bool) {
		if !result.Successful() {
			return
		}
		for node, ok := result.goal, true; ok; node, ok = node.searchState().Prev() {
			if !yield(node) {
				return
			}
		}
	}
}

// Len returns the number of nodes on the path.
func (result *Result[NodeType]) Len() int {
	count := 0
	for range result.Nodes() {
		count++
	}
	return count
}

// Path returns the nodes in start-to-goal order.
func (result *Result[NodeType]) Path() []NodeType {
	return internal.Reverse(slices.Collect(result.Nodes()))
}
