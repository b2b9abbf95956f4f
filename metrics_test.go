package astar

import (
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsOutcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	logger := slog.New(slog.DiscardHandler)
	ctx := context.Background()

	found := chain(4)
	_, err := Search(ctx, found, found[0], found[3], WithMetrics(metrics), WithLogger(logger))
	require.NoError(t, err)

	exhausted := newTestGraph(2)
	_, err = Search(ctx, exhausted, exhausted[0], exhausted[1], WithMetrics(metrics), WithLogger(logger))
	require.NoError(t, err)

	limited := chain(6)
	_, err = Search(ctx, limited, limited[0], limited[5], WithMetrics(metrics), WithLogger(logger), WithMaxExpansions(1))
	require.ErrorIs(t, err, ErrExpansionLimit)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.searches.WithLabelValues(OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.searches.WithLabelValues(OutcomeExhausted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.searches.WithLabelValues(OutcomeLimit)))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.searches.WithLabelValues(OutcomeCancelled)))
	// 3 expansions on the chain, 1 on the isolated node, 1 before the limit.
	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.expansions))
	assert.Equal(t, uint64(3), histogramSamples(t, registry, "astar_search_duration_seconds"))
	assert.Equal(t, uint64(1), histogramSamples(t, registry, "astar_path_steps"))
}

func histogramSamples(t *testing.T, registry *prometheus.Registry, name string) uint64 {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			require.Len(t, family.GetMetric(), 1)
			return family.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("metric %s not registered", name)
	return 0
}

func TestMetrics_NilIsNoOp(t *testing.T) {
	var metrics *Metrics
	graph := chain(2)
	result, err := Search(context.Background(), graph, graph[0], graph[1],
		WithMetrics(metrics),
		WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, err)
	assert.True(t, result.Successful())
}
