package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	logLevel string
	trace    bool
	logger   *slog.Logger
	provider *sdktrace.TracerProvider
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "astar-demo",
		Short: "Run A* searches over tile worlds and sampled roadmaps",
		Long: `astar-demo exercises the astarkit search engine on the reference
tile world, on YAML world files, on probabilistic roadmaps with
GeoJSON no-fly zones, and on batches of generated worlds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(a.logger)

			if a.trace {
				exporter, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()), stdouttrace.WithPrettyPrint())
				if err != nil {
					return fmt.Errorf("create exporter: %w", err)
				}
				a.provider = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
				otel.SetTracerProvider(a.provider)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.provider == nil {
				return nil
			}
			return a.provider.Shutdown(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.trace, "trace", false, "Print search spans to stderr")

	rootCmd.AddCommand(
		a.newGridCommand(),
		a.newRoadmapCommand(),
		a.newBatchCommand(),
	)
	return rootCmd
}
