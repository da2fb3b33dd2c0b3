package rank

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mnohosten/docsearch/pkg/concurrent"
	"github.com/mnohosten/docsearch/pkg/index"
	"github.com/mnohosten/docsearch/pkg/query"
)

// AccumulatorShards is the reference shard count (spec.md §6:
// ACCUMULATOR_SHARDS = 100).
const AccumulatorShards = 100

// RankParallel has the same contract as Rank: identical result lists for
// the same (store, q, pred) triple. Plus-word posting-list scans run
// concurrently across an errgroup.Group, accumulating into a
// concurrent.ShardedAccumulator instead of a single relevance map, which
// is the only mutable structure shared across workers during the scan.
//
// Minus-words are checked per hit against each candidate document's own
// term-set rather than pre-scanned into a banned-id set, matching the
// reference algorithm (spec.md §4.6); implementations may pre-scan for a
// lower asymptotic cost without changing results, but this one doesn't
// need to at the corpus sizes it targets.
func RankParallel(store *index.Store, q *query.Query, pred Predicate) []Result {
	if pred == nil {
		pred = Any()
	}

	n := store.GetDocumentCount()
	minusWords := q.MinusWords()
	acc := concurrent.NewShardedAccumulator(AccumulatorShards)

	g, _ := errgroup.WithContext(context.Background())
	for w := range q.Plus {
		w := w
		g.Go(func() error {
			postings := store.Postings(w)
			if postings == nil {
				return nil
			}
			idf := idfOf(n, len(postings))
			for id, tf := range postings {
				meta, ok := store.Meta(id)
				if !ok || !pred(id, meta.Status, meta.Rating) {
					continue
				}
				if hitsAnyMinusWord(meta, minusWords) {
					continue
				}
				acc.Add(id, tf*idf)
			}
			return nil
		})
	}
	// errgroup.Group.Go never returns an error from the closures above, so
	// Wait's error is always nil; it's still the correct synchronization
	// primitive to quiesce every worker before Build.
	_ = g.Wait()
	acc.Quiesce()

	rel := acc.Build()
	return materialize(store, rel)
}

func hitsAnyMinusWord(meta index.DocMeta, minusWords []string) bool {
	for _, m := range minusWords {
		if _, hit := meta.Terms[m]; hit {
			return true
		}
	}
	return false
}
