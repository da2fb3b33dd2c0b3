// Package rank implements TF-IDF scoring and top-K selection over an
// index.Store, both sequentially and with a sharded concurrent
// accumulator.
package rank

import (
	"math"
	"sort"

	"github.com/mnohosten/docsearch/pkg/index"
	"github.com/mnohosten/docsearch/pkg/query"
)

// MaxResults caps the number of documents FindTopDocuments-style calls
// return.
const MaxResults = 5

// RelevanceEpsilon is the tie-break threshold: relevances within this
// distance of each other are treated as equal and broken by rating.
const RelevanceEpsilon = 1e-6

// Predicate filters candidate documents by id, status and rating.
type Predicate func(id int, status index.Status, rating int) bool

// StatusPredicate returns a Predicate that admits only documents with the
// given status, the default filter for FindTopDocuments.
func StatusPredicate(status index.Status) Predicate {
	return func(_ int, s index.Status, _ int) bool {
		return s == status
	}
}

// Any admits every document regardless of status or rating.
func Any() Predicate {
	return func(int, index.Status, int) bool { return true }
}

// Result is one ranked hit.
type Result struct {
	ID        int
	Relevance float64
	Rating    int
}

// Rank scores q against store using pred as the admission predicate,
// removes any document hit by a minus-word, sorts by (relevance desc,
// rating desc) with RelevanceEpsilon-width ties broken by rating, and
// truncates to MaxResults. pred == nil admits every document.
func Rank(store *index.Store, q *query.Query, pred Predicate) []Result {
	if pred == nil {
		pred = Any()
	}

	n := store.GetDocumentCount()
	rel := make(map[int]float64)

	for w := range q.Plus {
		postings := store.Postings(w)
		if postings == nil {
			continue
		}
		idf := idfOf(n, len(postings))
		for id, tf := range postings {
			meta, ok := store.Meta(id)
			if !ok || !pred(id, meta.Status, meta.Rating) {
				continue
			}
			rel[id] += tf * idf
		}
	}

	for w := range q.Minus {
		postings := store.Postings(w)
		for id := range postings {
			delete(rel, id)
		}
	}

	return materialize(store, rel)
}

// idfOf returns log(N / df), the natural-log inverse document frequency
// with no smoothing. A term present in every document scores exactly 0.
func idfOf(n, df int) float64 {
	if df == 0 {
		return 0
	}
	return math.Log(float64(n) / float64(df))
}

// materialize walks store's live ids in ascending order (not rel's own
// map-iteration order, which Go randomizes) so that residual ties --
// equal relevance within RelevanceEpsilon and equal rating -- break by
// ascending doc id, exactly as std::map<int,double>'s key order does for
// the reference's document_to_relevance. This is also what keeps Rank and
// RankParallel in agreement: both call materialize, but each builds rel
// from an unordered map (a plain map here, ShardedAccumulator.Build's
// output there), so without this ordering step the two could disagree on
// tie order even though their relevance values match exactly.
func materialize(store *index.Store, rel map[int]float64) []Result {
	results := make([]Result, 0, len(rel))
	for _, id := range store.Ids() {
		r, ok := rel[id]
		if !ok {
			continue
		}
		meta, ok := store.Meta(id)
		if !ok {
			continue
		}
		results = append(results, Result{ID: id, Relevance: r, Rating: meta.Rating})
	}
	sortResults(results)
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// sortResults is the shared comparator for both the sequential and
// parallel rankers: relevance descending, ties within RelevanceEpsilon
// broken by rating descending, remaining ties broken by ascending doc id
// via materialize's traversal order (sort.SliceStable).
func sortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if math.Abs(a.Relevance-b.Relevance) < RelevanceEpsilon {
			return a.Rating > b.Rating
		}
		return a.Relevance > b.Relevance
	})
}
