package main

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	astar "github.com/pdrpinto/astarkit"
	"github.com/pdrpinto/astarkit/roadmap"
)

type roadmapFlags struct {
	samples       int
	radius        float64
	seed          int64
	zones         string
	bound         []float64
	from          []float64
	to            []float64
	lonLat        bool
	maxExpansions int
}

func (a *app) newRoadmapCommand() *cobra.Command {
	flags := &roadmapFlags{}
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Sample a waypoint roadmap and search it around no-fly zones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoadmap(cmd, flags)
		},
	}
	cmd.Flags().IntVar(&flags.samples, "samples", roadmap.DefaultSamples, "Number of sampled waypoints")
	cmd.Flags().Float64Var(&flags.radius, "radius", roadmap.DefaultRadius, "Connection radius")
	cmd.Flags().Int64Var(&flags.seed, "seed", 1, "Sampling seed")
	cmd.Flags().StringVar(&flags.zones, "zones", "", "GeoJSON file with no-fly polygons")
	cmd.Flags().Float64SliceVar(&flags.bound, "bound", []float64{0, 0, 1, 1}, "Sampling box as minX,minY,maxX,maxY")
	cmd.Flags().Float64SliceVar(&flags.from, "from", []float64{0, 0}, "Start point as x,y")
	cmd.Flags().Float64SliceVar(&flags.to, "to", []float64{1, 1}, "Finish point as x,y")
	cmd.Flags().BoolVar(&flags.lonLat, "lonlat", false, "Treat coordinates as longitude,latitude and report the length in meters")
	cmd.Flags().IntVar(&flags.maxExpansions, "max-expansions", 0, "Stop after this many expansions (0 for no limit)")
	return cmd
}

func pointOf(name string, values []float64) (orb.Point, error) {
	if len(values) != 2 {
		return orb.Point{}, fmt.Errorf("--%s needs 2 values, got %d", name, len(values))
	}
	return orb.Point{values[0], values[1]}, nil
}

func (a *app) runRoadmap(cmd *cobra.Command, flags *roadmapFlags) error {
	if len(flags.bound) != 4 {
		return fmt.Errorf("--bound needs 4 values, got %d", len(flags.bound))
	}
	from, err := pointOf("from", flags.from)
	if err != nil {
		return err
	}
	to, err := pointOf("to", flags.to)
	if err != nil {
		return err
	}

	var zones []orb.Polygon
	if flags.zones != "" {
		if zones, err = roadmap.LoadZones(flags.zones); err != nil {
			return err
		}
	}

	bound := orb.Bound{
		Min: orb.Point{flags.bound[0], flags.bound[1]},
		Max: orb.Point{flags.bound[2], flags.bound[3]},
	}
	r := roadmap.Build(roadmap.Config{
		Bound:   bound,
		Samples: flags.samples,
		Radius:  flags.radius,
		Seed:    flags.seed,
	}, zones)

	start, ok := r.Nearest(from)
	if !ok {
		return errors.New("roadmap has no waypoints")
	}
	finish, _ := r.Nearest(to)

	result, err := astar.Search(cmd.Context(), r.Waypoints(), start, finish,
		astar.WithLogger(a.logger),
		astar.WithMaxExpansions(flags.maxExpansions),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Successful() {
		fmt.Fprintln(out, "No existing path.")
		return nil
	}
	path := result.Path()
	for _, waypoint := range path {
		fmt.Fprintf(out, "%d (%.5f, %.5f)\n", waypoint.ID, waypoint.Point[0], waypoint.Point[1])
	}
	weight, _ := result.Weight()
	fmt.Fprintf(out, "Shortest path found with %.5f weight.\n", weight)
	if flags.lonLat {
		fmt.Fprintf(out, "Length: %.0f m\n", roadmap.LengthMeters(path))
	}
	return nil
}
