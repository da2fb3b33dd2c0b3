// Package batch runs many queries through a ranker in parallel, the
// library's counterpart to the reference's ProcessQueries /
// ProcessQueriesJoined (spec.md §4.9). It is an external collaborator:
// batch.Driver only depends on a find function, not on any specific
// index or ranker type.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Driver fans a batch of queries out across a worker pool and collects
// their results back into input-position order.
type Driver[T any] struct {
	find func(query string) []T
}

// New creates a Driver backed by find (typically rank.Rank or
// rank.RankParallel bound to a particular store and predicate).
func New[T any](find func(query string) []T) *Driver[T] {
	return &Driver[T]{find: find}
}

// ProcessQueries runs every query in queries concurrently and returns one
// result list per query, preserving input-position correspondence. The
// queries themselves may complete in any order and interleaving.
func (d *Driver[T]) ProcessQueries(queries []string) [][]T {
	results := make([][]T, len(queries))

	g, _ := errgroup.WithContext(context.Background())
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			results[i] = d.find(q)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ProcessQueriesJoined is ProcessQueries flattened into a single list, in
// input-query order (all of query[0]'s results, then all of query[1]'s,
// and so on).
func (d *Driver[T]) ProcessQueriesJoined(queries []string) []T {
	nested := d.ProcessQueries(queries)

	total := 0
	for _, r := range nested {
		total += len(r)
	}

	out := make([]T, 0, total)
	for _, r := range nested {
		out = append(out, r...)
	}
	return out
}
