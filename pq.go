package astar

import "container/heap"

// PriorityQueueItem is one open-set entry. FCost is captured at insertion so
// the heap order stays valid even if the node's fields change afterwards.
type PriorityQueueItem[NodeType Node[NodeType]] struct {
	Node         NodeType
	FCost        float64
	Sequence     uint64
	IndexInQueue int
}

// PriorityQueue orders entries by ascending FCost; equal costs leave in
// insertion order.
type PriorityQueue[NodeType Node[NodeType]] []*PriorityQueueItem[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }
func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue[NodeType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue[NodeType]) Push(x any) {
	item := x.(*PriorityQueueItem[NodeType])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// openSet holds the candidates awaiting expansion.
type openSet[NodeType Node[NodeType]] struct {
	queue    PriorityQueue[NodeType]
	sequence uint64
}

func (open *openSet[NodeType]) Len() int { return open.queue.Len() }

func (open *openSet[NodeType]) Push(node NodeType) {
	open.sequence++
	heap.Push(&open.queue, &PriorityQueueItem[NodeType]{
		Node:     node,
		FCost:    node.searchState().f,
		Sequence: open.sequence,
	})
}

// Peek returns the minimum entry without removing it.
func (open *openSet[NodeType]) Peek() *PriorityQueueItem[NodeType] {
	if open.queue.Len() == 0 {
		return nil
	}
	return open.queue[0]
}

func (open *openSet[NodeType]) Pop() *PriorityQueueItem[NodeType] {
	return heap.Pop(&open.queue).(*PriorityQueueItem[NodeType])
}

// Find returns the position of the entry identity-equal to node, or -1.
// Identity and ordering are independent keys, so this is a linear scan.
func (open *openSet[NodeType]) Find(node NodeType) int {
	for position, item := range open.queue {
		if node.Equal(item.Node) {
			return position
		}
	}
	return -1
}

func (open *openSet[NodeType]) Remove(position int) *PriorityQueueItem[NodeType] {
	return heap.Remove(&open.queue, position).(*PriorityQueueItem[NodeType])
}

// Nodes returns the open entries in pop order.
func (open *openSet[NodeType]) Nodes() []NodeType {
	ordered := make(PriorityQueue[NodeType], 0, len(open.queue))
	for _, item := range open.queue {
		copied := *item
		ordered = append(ordered, &copied)
	}
	heap.Init(&ordered)
	nodes := make([]NodeType, 0, len(ordered))
	for ordered.Len() > 0 {
		nodes = append(nodes, heap.Pop(&ordered).(*PriorityQueueItem[NodeType]).Node)
	}
	return nodes
}

// closedSet holds nodes whose cost is final for this search.
type closedSet[NodeType Node[NodeType]] struct {
	nodes []NodeType
}

func (closed *closedSet[NodeType]) Len() int { return len(closed.nodes) }

func (closed *closedSet[NodeType]) Add(node NodeType) {
	closed.nodes = append(closed.nodes, node)
}

func (closed *closedSet[NodeType]) Contains(node NodeType) bool {
	for _, member := range closed.nodes {
		if node.Equal(member) {
			return true
		}
	}
	return false
}

// Nodes returns the closed nodes in the order they were closed.
func (closed *closedSet[NodeType]) Nodes() []NodeType {
	nodes := make([]NodeType, len(closed.nodes))
	copy(nodes, closed.nodes)
	return nodes
}
