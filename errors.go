package astar

import "errors"

var (
	// ErrNoPath is returned by Result accessors that are only defined when
	// the search reached the finish node.
	ErrNoPath = errors.New("astar: no path found")

	// ErrExpansionLimit is returned by Search when WithMaxExpansions stopped
	// the loop before it found the finish or exhausted the open set.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)
