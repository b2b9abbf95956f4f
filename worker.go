package astar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Query is one independent search request for SearchBatch.
type Query[NodeType Node[NodeType]] struct {
	Collection []NodeType
	Start      NodeType
	Finish     NodeType
}

// SearchBatch runs every query with Search on a pool of WithWorkers
// goroutines. Results keep query order. The first error cancels the
// remaining queries.
//
// Node state is written during a search, so no two queries may share node
// objects.
func SearchBatch[NodeType Node[NodeType]](
	contextObject context.Context,
	queries []Query[NodeType],
	options ...Option,
) ([]*Result[NodeType], error) {
	searchOptions := applyOptions(options)
	results := make([]*Result[NodeType], len(queries))

	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for index, query := range queries {
		group.Go(func() error {
			result, err := Search(groupContext, query.Collection, query.Start, query.Finish, options...)
			results[index] = result
			if err != nil {
				return fmt.Errorf("query %d: %w", index, err)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
