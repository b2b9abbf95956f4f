package astar

import (
	"math"
	"math/rand"
)

// testNode is an explicit adjacency-list node used by the package tests.
type testNode struct {
	NodeBase[*testNode]

	id    int
	x, y  float64
	edges []testEdge

	// successorCalls counts how often the node was expanded.
	successorCalls int
}

type testEdge struct {
	to   int
	cost float64
}

func (n *testNode) Distance(to *testNode) float64 {
	for _, edge := range n.edges {
		if edge.to == to.id {
			return edge.cost
		}
	}
	return math.Inf(1)
}

func (n *testNode) Heuristic(to *testNode) float64 {
	return math.Hypot(n.x-to.x, n.y-to.y)
}

func (n *testNode) Successors(collection []*testNode) []*testNode {
	n.successorCalls++
	successors := make([]*testNode, 0, len(n.edges))
	for _, edge := range n.edges {
		successors = append(successors, collection[edge.to])
	}
	return successors
}

func (n *testNode) Equal(other *testNode) bool { return n.id == other.id }

// testGraph builds collections of testNode with zero heuristic unless
// coordinates are set.
type testGraph []*testNode

func newTestGraph(size int) testGraph {
	graph := make(testGraph, size)
	for i := range graph {
		graph[i] = &testNode{id: i}
	}
	return graph
}

// arc adds a directed edge.
func (graph testGraph) arc(from, to int, cost float64) testGraph {
	graph[from].edges = append(graph[from].edges, testEdge{to: to, cost: cost})
	return graph
}

// link adds an undirected edge.
func (graph testGraph) link(a, b int, cost float64) testGraph {
	return graph.arc(a, b, cost).arc(b, a, cost)
}

func (graph testGraph) ids(nodes []*testNode) []int {
	ids := make([]int, 0, len(nodes))
	for _, node := range nodes {
		ids = append(ids, node.id)
	}
	return ids
}

// randomGeometricGraph places nodes in the unit square and links every pair
// closer than radius. Edge costs are at least the straight-line distance,
// so the Euclidean heuristic stays admissible and consistent.
func randomGeometricGraph(r *rand.Rand, size int, radius float64) testGraph {
	graph := newTestGraph(size)
	for _, node := range graph {
		node.x, node.y = r.Float64(), r.Float64()
	}
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			d := math.Hypot(graph[i].x-graph[j].x, graph[i].y-graph[j].y)
			if d < radius {
				graph.link(i, j, d*(1+r.Float64()))
			}
		}
	}
	return graph
}

// dijkstra is the reference shortest path cost. Unavailable nodes other
// than the start are never entered.
func dijkstra(graph testGraph, start, finish int) (float64, bool) {
	dist := make([]float64, len(graph))
	done := make([]bool, len(graph))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0
	for {
		u := -1
		for i := range graph {
			if !done[i] && !math.IsInf(dist[i], 1) && (u < 0 || dist[i] < dist[u]) {
				u = i
			}
		}
		if u < 0 {
			return 0, false
		}
		if u == finish {
			return dist[u], true
		}
		done[u] = true
		for _, edge := range graph[u].edges {
			if !graph[edge.to].Available() {
				continue
			}
			if alt := dist[u] + edge.cost; alt < dist[edge.to] {
				dist[edge.to] = alt
			}
		}
	}
}
