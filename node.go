package astar

// Node is the capability contract every node type must satisfy.
//
// NodeType is the concrete node reference type, usually a pointer such as
// *Tile, so the constraint reads Node[*Tile]. Implementations embed
// NodeBase[NodeType] to obtain the search-scoped state.
type Node[NodeType any] interface {
	// Distance returns the exact edge cost to an adjacent node. The engine
	// only calls it for nodes returned by Successors. Must be >= 0.
	Distance(to NodeType) float64

	// Heuristic estimates the remaining cost to the target. It must never
	// overestimate for the result to be optimal.
	Heuristic(to NodeType) float64

	// Successors returns every node this node has an edge to, drawn from
	// collection. It must not contain the node itself.
	Successors(collection []NodeType) []NodeType

	// Equal is the identity predicate used for every frontier lookup.
	Equal(other NodeType) bool

	searchState() *NodeBase[NodeType]
}

// NodeBase carries the fields the engine reads and writes during a search.
// The zero value is an available node with no search state.
type NodeBase[NodeType any] struct {
	g       float64
	f       float64
	steps   int
	blocked bool

	prev    NodeType
	hasPrev bool
}

func (base *NodeBase[NodeType]) searchState() *NodeBase[NodeType] { return base }

// G returns the cost of the cheapest known path from start.
func (base *NodeBase[NodeType]) G() float64 { return base.g }

// F returns the priority key g + h.
func (base *NodeBase[NodeType]) F() float64 { return base.f }

// Available reports whether the search may route through this node.
func (base *NodeBase[NodeType]) Available() bool { return !base.blocked }

// SetAvailable marks the node as passable or blocked.
func (base *NodeBase[NodeType]) SetAvailable(available bool) { base.blocked = !available }

// Prev returns the predecessor on the best known path, if any.
func (base *NodeBase[NodeType]) Prev() (NodeType, bool) { return base.prev, base.hasPrev }

// resetSearch clears the search-scoped fields. Availability is caller state
// and survives.
func (base *NodeBase[NodeType]) resetSearch() {
	var zero NodeType
	base.g = 0
	base.f = 0
	base.steps = 0
	base.prev = zero
	base.hasPrev = false
}

// Reset clears the search-scoped state of every node in collection so the
// same nodes can be searched again from a clean slate.
func Reset[NodeType Node[NodeType]](collection []NodeType) {
	for _, node := range collection {
		node.searchState().resetSearch()
	}
}
