package main

import (
	"fmt"
	"math/rand"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	astar "github.com/pdrpinto/astarkit"
	"github.com/pdrpinto/astarkit/grid"
)

type batchFlags struct {
	Worlds   int     `validate:"min=1"`
	Width    int     `validate:"min=1"`
	Height   int     `validate:"min=1"`
	Clusters int     `validate:"min=0"`
	Steps    int     `validate:"min=0"`
	Density  float64 `validate:"min=0,max=1"`
	Seed     int64
	Workers  int `validate:"min=1"`
}

func (a *app) newBatchCommand() *cobra.Command {
	flags := &batchFlags{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate random tile worlds and search them concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, flags)
		},
	}
	cmd.Flags().IntVar(&flags.Worlds, "worlds", 16, "Number of worlds to generate")
	cmd.Flags().IntVar(&flags.Width, "width", 40, "World width")
	cmd.Flags().IntVar(&flags.Height, "height", 24, "World height")
	cmd.Flags().IntVar(&flags.Clusters, "clusters", 8, "Wall clusters per world")
	cmd.Flags().IntVar(&flags.Steps, "steps", 200, "Random walk steps per wall cluster")
	cmd.Flags().Float64Var(&flags.Density, "density", 0.25, "Probability that a walk step leaves a wall")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 1, "Generation seed")
	cmd.Flags().IntVar(&flags.Workers, "workers", runtime.NumCPU(), "Concurrent searches")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, flags *batchFlags) error {
	if err := validator.New().Struct(flags); err != nil {
		return fmt.Errorf("invalid batch flags: %w", err)
	}

	r := rand.New(rand.NewSource(flags.Seed))
	generate := grid.GenerateConfig{
		Width:    flags.Width,
		Height:   flags.Height,
		Clusters: flags.Clusters,
		Steps:    flags.Steps,
		Density:  flags.Density,
	}
	queries := make([]astar.Query[*grid.Tile], 0, flags.Worlds)
	for i := 0; i < flags.Worlds; i++ {
		cfg := grid.Generate(generate, r)
		cfg.Heuristic = grid.HeuristicManhattan
		world, err := grid.New(cfg)
		if err != nil {
			return fmt.Errorf("world %d: %w", i, err)
		}
		queries = append(queries, astar.Query[*grid.Tile]{
			Collection: world.Tiles(),
			Start:      world.Start(),
			Finish:     world.Finish(),
		})
	}

	registry := prometheus.NewRegistry()
	results, err := astar.SearchBatch(cmd.Context(), queries,
		astar.WithWorkers(flags.Workers),
		astar.WithLogger(a.logger),
		astar.WithMetrics(astar.NewMetrics(registry)),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	found := 0
	for i, result := range results {
		if !result.Successful() {
			fmt.Fprintf(out, "world %d: No existing path.\n", i)
			continue
		}
		found++
		weight, _ := result.Weight()
		fmt.Fprintf(out, "world %d: %g weight, %d expanded\n", i, weight, result.Expanded())
	}

	expansions, err := counterValue(registry, "astar_expansions_total")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d of %d worlds solved, %.0f expansions in total.\n", found, len(results), expansions)
	return nil
}

func counterValue(registry *prometheus.Registry, name string) (float64, error) {
	families, err := registry.Gather()
	if err != nil {
		return 0, fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		total := 0.0
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		return total, nil
	}
	return 0, nil
}
