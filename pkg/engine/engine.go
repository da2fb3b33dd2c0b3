// Package engine wires the index store, query parser, rankers, deduper,
// rate tracker and batch driver into the public surface described by
// spec.md §6, the way pkg/database.Database wires the teacher's storage
// engine, transaction manager and audit logger behind one façade.
package engine

import (
	"github.com/rs/zerolog"

	"github.com/mnohosten/docsearch/internal/obslog"
	"github.com/mnohosten/docsearch/pkg/batch"
	"github.com/mnohosten/docsearch/pkg/dedup"
	"github.com/mnohosten/docsearch/pkg/index"
	"github.com/mnohosten/docsearch/pkg/query"
	"github.com/mnohosten/docsearch/pkg/rank"
	"github.com/mnohosten/docsearch/pkg/ratetracker"
	"github.com/mnohosten/docsearch/pkg/text"
)

// Hint selects the execution strategy for FindTopDocuments and
// RemoveDocument. Both strategies are contractually required to produce
// identical results; the hint only affects throughput (spec.md §4.9's
// "Execution-policy overloading" design note).
type Hint int

const (
	Sequential Hint = iota
	Parallel
)

// Config holds the engine's tunable constants. Because this engine has no
// CLI, no environment variables and no persisted state (spec.md §6), these
// are never sourced from a file or the environment — only ever from
// in-process defaults or values the embedding program sets directly,
// mirroring pkg/database.Config/DefaultConfig's shape without its
// file-system concerns. New reads only TrackerWindow and Logger;
// MaxResults, RelevanceEpsilon and AccumulatorShards report the package
// constants the rankers use, and setting them has no effect on ranking.
type Config struct {
	MaxResults        int
	RelevanceEpsilon  float64
	TrackerWindow     int
	AccumulatorShards int
	Logger            zerolog.Logger
}

// DefaultConfig returns the reference constants (spec.md §6).
func DefaultConfig() *Config {
	return &Config{
		MaxResults:        rank.MaxResults,
		RelevanceEpsilon:  rank.RelevanceEpsilon,
		TrackerWindow:     ratetracker.Window,
		AccumulatorShards: rank.AccumulatorShards,
		Logger:            obslog.New(zerolog.InfoLevel),
	}
}

// Engine is the public entry point: add documents, then query them.
type Engine struct {
	store     *index.Store
	stopWords *text.StopWords
	cfg       *Config
	log       zerolog.Logger

	tracker *ratetracker.Tracker[rank.Result]
	batch   *batch.Driver[rank.Result]
}

// New creates an Engine from an already-built stop-word set. stop may be
// nil for an engine with no stop-words.
func New(stop *text.StopWords, cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{
		store:     index.New(stop, cfg.Logger),
		stopWords: stop,
		cfg:       cfg,
		log:       cfg.Logger,
	}
	e.tracker = ratetracker.New(cfg.TrackerWindow, e.findDefault)
	e.batch = batch.New(e.findDefault)
	return e
}

// NewFromString creates an Engine whose stop-words come from a single
// space-separated string, e.g. "in the on a".
func NewFromString(stopWords string, cfg *Config) (*Engine, error) {
	sw, err := text.NewStopWords(stopWords)
	if err != nil {
		return nil, err
	}
	return New(sw, cfg), nil
}

// NewFromSlice creates an Engine whose stop-words come from an arbitrary
// slice of individual words.
func NewFromSlice(stopWords []string, cfg *Config) (*Engine, error) {
	sw, err := text.NewStopWordsFromSlice(stopWords)
	if err != nil {
		return nil, err
	}
	return New(sw, cfg), nil
}

// AddDocument indexes a document. See index.Store.AddDocument for the
// full contract and error taxonomy.
func (e *Engine) AddDocument(id int, text string, status index.Status, ratings []int) error {
	return e.store.AddDocument(id, text, status, ratings)
}

// RemoveDocument removes a document. hint is accepted for contract
// symmetry with FindTopDocuments but both execution strategies share the
// same (tolerant, no-op-on-unknown-id) implementation.
func (e *Engine) RemoveDocument(id int, _ Hint) {
	e.store.RemoveDocument(id)
}

// GetDocumentCount returns the number of live documents.
func (e *Engine) GetDocumentCount() int {
	return e.store.GetDocumentCount()
}

// GetWordFrequencies returns id's term-frequency map, or an empty map if
// id is not live.
func (e *Engine) GetWordFrequencies(id int) map[string]float64 {
	return e.store.GetWordFrequencies(id)
}

// Ids returns the live document ids in ascending order.
func (e *Engine) Ids() []int {
	return e.store.Ids()
}

// MatchDocument parses rawQuery and reports which of its plus-words occur
// in id's term-set (or an empty list if any minus-word does), and id's
// status.
func (e *Engine) MatchDocument(rawQuery string, id int) ([]string, index.Status, error) {
	return e.store.MatchDocument(rawQuery, id)
}

// FindTopDocuments parses rawQuery and ranks matching documents admitted
// by pred, using the execution strategy named by hint. A nil pred admits
// only index.StatusActual documents, the reference default.
func (e *Engine) FindTopDocuments(rawQuery string, pred rank.Predicate, hint Hint) ([]rank.Result, error) {
	parsed, err := query.Parse(rawQuery, e.stopWords)
	if err != nil {
		return nil, err
	}
	if pred == nil {
		pred = rank.StatusPredicate(index.StatusActual)
	}

	switch hint {
	case Parallel:
		return rank.RankParallel(e.store, &parsed.Query, pred), nil
	default:
		return rank.Rank(e.store, &parsed.Query, pred), nil
	}
}

// FindTopDocumentsByStatus is FindTopDocuments with a status-equality
// predicate, the second of the reference's three FindTopDocuments
// overloads.
func (e *Engine) FindTopDocumentsByStatus(rawQuery string, status index.Status, hint Hint) ([]rank.Result, error) {
	return e.FindTopDocuments(rawQuery, rank.StatusPredicate(status), hint)
}

// findDefault is the Finder bound into the rate tracker and batch driver:
// sequential execution, default Actual-status predicate, swallowing parse
// errors into an empty result set so a malformed batch entry can't abort
// its siblings.
func (e *Engine) findDefault(rawQuery string) []rank.Result {
	results, err := e.FindTopDocuments(rawQuery, nil, Sequential)
	if err != nil {
		e.log.Warn().Err(err).Str("query", rawQuery).Msg("query rejected by parser")
		return nil
	}
	return results
}

// Tracker returns the engine's query-rate tracker (spec.md §4.8), wired to
// this engine's default (sequential, Actual-status) search.
func (e *Engine) Tracker() *ratetracker.Tracker[rank.Result] {
	return e.tracker
}

// Batch returns the engine's batch driver (spec.md §4.9), wired to this
// engine's default (sequential, Actual-status) search.
func (e *Engine) Batch() *batch.Driver[rank.Result] {
	return e.batch
}

// Dedup runs the deduper over this engine's store, removing every
// document that shares a term-set with an earlier-added one, and reports
// each removal through sink (nil discards the output).
func (e *Engine) Dedup(sink dedup.Sink) []int {
	return dedup.Dedup(e.store, sink)
}
