package astar

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTolerance is the float64 machine epsilon. Relaxations whose cost
// differs from the recorded one by no more than this are treated as ties.
const DefaultTolerance = 0x1p-52

// Options defines parameters for the search.
type Options struct {
	// Tolerance up to which a cost difference counts as no improvement.
	Tolerance float64
	// MaxExpansions stops Search once this many nodes were closed. Zero means
	// no limit.
	MaxExpansions int
	// NumberOfWorkers bounds SearchBatch concurrency.
	NumberOfWorkers int

	Logger  *slog.Logger
	Metrics *Metrics
	Tracer  trace.Tracer
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithTolerance sets the tie tolerance used by the relaxation rule.
func WithTolerance(tolerance float64) Option {
	return func(options *Options) { options.Tolerance = tolerance }
}

// WithMaxExpansions stops the search with ErrExpansionLimit after n expansions.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithWorkers specifies how many searches SearchBatch runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithLogger sets the structured logger. Search events are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMetrics records search outcomes into metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(options *Options) { options.Metrics = metrics }
}

// WithTracer sets the tracer used for search spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(options *Options) { options.Tracer = tracer }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Tolerance:       DefaultTolerance,
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Tolerance < 0 {
		searchOptions.Tolerance = -searchOptions.Tolerance
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.Default()
	}
	if searchOptions.Tracer == nil {
		searchOptions.Tracer = otel.Tracer(tracerName)
	}
	return searchOptions
}

// Search runs A* from startNode to goalNode over collection until the goal
// is reached or the open set is exhausted.
//
// Not finding a path is not an error: the returned Result reports
// Successful() == false. An error is returned only when the context is
// cancelled or the expansion limit is hit, together with the partial Result.
func Search[NodeType Node[NodeType]](
	contextObject context.Context,
	collection []NodeType,
	startNode NodeType,
	goalNode NodeType,
	options ...Option,
) (*Result[NodeType], error) {

	// --- Apply options ---
	searchOptions := applyOptions(options)

	// --- Initialize state ---
	stepper := newStepper(collection, startNode, goalNode, searchOptions)
	logger := searchOptions.Logger.With(slog.String("search_id", stepper.ID()))
	contextObject, span := startSearchSpan(contextObject, searchOptions.Tracer, stepper.ID(), len(collection))
	defer span.End()

	logger.DebugContext(contextObject, "search started",
		slog.Int("collection_size", len(collection)),
		slog.Float64("tolerance", searchOptions.Tolerance),
	)
	began := time.Now()

	// --- Search loop ---
	var err error
	for stepper.Status() == Running {
		if contextErr := contextObject.Err(); contextErr != nil {
			err = fmt.Errorf("astar: search cancelled after %d expansions: %w", stepper.Expanded(), contextErr)
			break
		}
		if searchOptions.MaxExpansions > 0 && stepper.Expanded() >= searchOptions.MaxExpansions {
			err = fmt.Errorf("astar: stopped after %d expansions: %w", stepper.Expanded(), ErrExpansionLimit)
			break
		}
		stepper.advance()
	}

	result := stepper.Result()
	elapsed := time.Since(began)
	searchOptions.Metrics.observe(result, err, elapsed)
	endSearchSpan(span, result, err)

	if err != nil {
		logger.WarnContext(contextObject, "search stopped early",
			slog.Int("expanded", result.Expanded()),
			slog.String("error", err.Error()),
		)
		return result, err
	}

	attributes := []any{
		slog.String("status", result.Status().String()),
		slog.Int("expanded", result.Expanded()),
		slog.Int("relaxed", stepper.relaxed),
		slog.Duration("elapsed", elapsed),
	}
	if weight, weightErr := result.Weight(); weightErr == nil {
		attributes = append(attributes, slog.Float64("weight", weight))
	}
	logger.DebugContext(contextObject, "search finished", attributes...)
	return result, nil
}
