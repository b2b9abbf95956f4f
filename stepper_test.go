package astar

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_WalksStateMachine(t *testing.T) {
	graph := newTestGraph(3).link(0, 1, 1).link(1, 2, 1)
	stepper := NewStepper(graph, graph[0], graph[2])
	assert.Equal(t, Running, stepper.Status())
	assert.NotEmpty(t, stepper.ID())

	first := stepper.Step()
	assert.Equal(t, 0, first.Current.id)
	assert.True(t, first.HasCurrent)
	assert.Equal(t, Running, first.Status)
	assert.Equal(t, []int{1}, graph.ids(first.Open))
	assert.Equal(t, []int{0}, graph.ids(first.Closed))

	stepper.Step()
	last := stepper.Step()
	assert.Equal(t, Found, last.Status)
	assert.Equal(t, 2, last.Current.id)
	assert.Equal(t, 3, last.StepIndex)
	assert.Equal(t, []int{2}, graph.ids(last.Open), "goal stays in the open set")

	after := stepper.Step()
	assert.False(t, after.HasCurrent)
	assert.Equal(t, Found, after.Status)
	assert.Equal(t, 3, after.StepIndex)

	result := stepper.Result()
	assert.True(t, result.Successful())
	assert.Equal(t, stepper.ID(), result.SearchID())
	assert.Equal(t, []int{0, 1, 2}, graph.ids(result.Path()))
}

func TestStepper_Exhausts(t *testing.T) {
	graph := newTestGraph(2)
	stepper := NewStepper(graph, graph[0], graph[1])

	stepper.Step()
	final := stepper.Step()

	assert.Equal(t, Exhausted, final.Status)
	assert.False(t, final.HasCurrent)
	assert.False(t, stepper.Result().Successful())
}

func TestStepper_ClosedNodesAreNeverReopened(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		graph := randomGeometricGraph(r, 50, 0.3)
		stepper := NewStepper(graph, graph[0], graph[len(graph)-1])

		closed := map[int]bool{}
		for stepper.Status() == Running {
			snapshot := stepper.Step()
			if snapshot.HasCurrent {
				require.False(t, closed[snapshot.Current.id], "trial %d: node %d examined after closing", trial, snapshot.Current.id)
			}
			for _, node := range snapshot.Closed {
				closed[node.id] = true
			}
			for _, node := range snapshot.Open {
				require.False(t, closed[node.id], "trial %d: closed node %d re-entered open", trial, node.id)
			}
		}
		for _, node := range graph {
			assert.LessOrEqual(t, node.successorCalls, 1, "trial %d: node %d expanded twice", trial, node.id)
		}
	}
}
