package astar

import (
	"log/slog"
	"math"

	"github.com/google/uuid"
)

// Status is the state of the search loop.
type Status int

const (
	// Running means the open set still has candidates and the finish has
	// not been reached.
	Running Status = iota
	// Found means the finish node reached the front of the open set.
	Found
	// Exhausted means the open set emptied without reaching the finish.
	Exhausted
)

func (status Status) String() string {
	switch status {
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot[NodeType Node[NodeType]] struct {
	// Current is the node examined by this step. When Status is Found it is
	// the goal, which is not expanded.
	Current    NodeType
	HasCurrent bool
	Open       []NodeType
	Closed     []NodeType
	Status     Status
	StepIndex  int
}

// Stepper runs the search one node examination at a time.
type Stepper[NodeType Node[NodeType]] struct {
	id         string
	collection []NodeType
	start      NodeType
	finish     NodeType
	tolerance  float64
	logger     *slog.Logger

	open   openSet[NodeType]
	closed closedSet[NodeType]

	goal      NodeType
	status    Status
	stepCount int
	expanded  int
	relaxed   int
}

// NewStepper creates a stepper over collection. The start node's search
// state is reset and it is placed in the open set with g = 0.
func NewStepper[NodeType Node[NodeType]](
	collection []NodeType,
	startNode NodeType,
	goalNode NodeType,
	options ...Option,
) *Stepper[NodeType] {
	return newStepper(collection, startNode, goalNode, applyOptions(options))
}

func newStepper[NodeType Node[NodeType]](
	collection []NodeType,
	startNode NodeType,
	goalNode NodeType,
	searchOptions Options,
) *Stepper[NodeType] {
	s := &Stepper[NodeType]{
		id:         uuid.NewString(),
		collection: collection,
		start:      startNode,
		finish:     goalNode,
		tolerance:  searchOptions.Tolerance,
		logger:     searchOptions.Logger,
		status:     Running,
	}
	startNode.searchState().resetSearch()
	s.open.Push(startNode)
	return s
}

// ID identifies this search in logs and traces.
func (s *Stepper[NodeType]) ID() string { return s.id }

// Status returns the current loop state.
func (s *Stepper[NodeType]) Status() Status { return s.status }

// Expanded returns how many nodes have been moved to the closed set.
func (s *Stepper[NodeType]) Expanded() int { return s.expanded }

// Step advances the search by one node examination and returns a snapshot.
// Once the search is no longer Running, Step only reports the final state.
func (s *Stepper[NodeType]) Step() StepSnapshot[NodeType] {
	current, examined := s.advance()
	return StepSnapshot[NodeType]{
		Current:    current,
		HasCurrent: examined,
		Open:       s.open.Nodes(),
		Closed:     s.closed.Nodes(),
		Status:     s.status,
		StepIndex:  s.stepCount,
	}
}

// Result returns the view over the outcome so far. It is only meaningful
// once Status is Found or Exhausted.
func (s *Stepper[NodeType]) Result() *Result[NodeType] {
	return &Result[NodeType]{
		searchID: s.id,
		goal:     s.goal,
		status:   s.status,
		expanded: s.expanded,
	}
}

func (s *Stepper[NodeType]) advance() (NodeType, bool) {
	var none NodeType
	if s.status != Running {
		return none, false
	}
	front := s.open.Peek()
	if front == nil {
		s.status = Exhausted
		s.logger.Debug("open set exhausted",
			slog.String("search_id", s.id),
			slog.Int("expanded", s.expanded),
		)
		return none, false
	}

	s.stepCount++
	current := front.Node
	if current.Equal(s.finish) {
		s.goal = current
		s.status = Found
		return current, true
	}

	s.open.Pop()
	s.closed.Add(current)
	s.expanded++
	for _, successor := range current.Successors(s.collection) {
		if s.expand(current, successor) {
			s.relaxed++
		}
	}
	return current, true
}

// expand applies the relaxation rule to one successor of current and
// reports whether the successor was (re)inserted into the open set.
func (s *Stepper[NodeType]) expand(current NodeType, successor NodeType) bool {
	if s.closed.Contains(successor) {
		return false
	}
	successorState := successor.searchState()
	if successorState.blocked {
		return false
	}

	currentState := current.searchState()
	g := currentState.g + current.Distance(successor)

	if position := s.open.Find(successor); position >= 0 {
		recorded := s.open.queue[position].Node.searchState().g
		delta := g - recorded
		if delta > 0 || math.Abs(delta) <= s.tolerance {
			return false
		}
		s.open.Remove(position)
	}

	successorState.prev = current
	successorState.hasPrev = true
	successorState.g = g
	successorState.steps = currentState.steps + 1
	successorState.f = successor.Heuristic(s.finish) + g
	s.open.Push(successor)
	return true
}
