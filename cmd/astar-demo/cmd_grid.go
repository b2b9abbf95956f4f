package main

import (
	"fmt"

	"github.com/spf13/cobra"

	astar "github.com/pdrpinto/astarkit"
	"github.com/pdrpinto/astarkit/grid"
)

const (
	orderGoal  = "goal"
	orderStart = "start"
)

type gridFlags struct {
	config string
	order  string
	render bool
}

func (a *app) newGridCommand() *cobra.Command {
	flags := &gridFlags{}
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Search a tile world (the built-in 5x10 reference world by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGrid(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.config, "config", "", "YAML world file")
	cmd.Flags().StringVar(&flags.order, "order", orderGoal, "Print the path from the goal or from the start (goal|start)")
	cmd.Flags().BoolVar(&flags.render, "render", false, "Draw the world with the path after the listing")
	return cmd
}

func (a *app) runGrid(cmd *cobra.Command, flags *gridFlags) error {
	if flags.order != orderGoal && flags.order != orderStart {
		return fmt.Errorf("invalid --order %q: want %s or %s", flags.order, orderGoal, orderStart)
	}

	cfg := grid.ReferenceConfig()
	if flags.config != "" {
		loaded, err := grid.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	world, err := grid.New(cfg)
	if err != nil {
		return err
	}

	result, err := astar.Search(cmd.Context(), world.Tiles(), world.Start(), world.Finish(), astar.WithLogger(a.logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Successful() {
		fmt.Fprintln(out, "No existing path.")
		return nil
	}
	if flags.order == orderGoal {
		for tile := range result.Nodes() {
			fmt.Fprintln(out, tile)
		}
	} else {
		for _, tile := range result.Path() {
			fmt.Fprintln(out, tile)
		}
	}
	weight, _ := result.Weight()
	fmt.Fprintf(out, "Shortest path found with %g weight.\n", weight)
	if flags.render {
		fmt.Fprint(out, world.Render(result.Path()))
	}
	return nil
}
