// Package index holds the inverted-index data model: forward postings
// (term -> doc -> tf), inverse postings (doc -> term -> tf), per-document
// metadata, and the ordered set of live document ids.
package index

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mnohosten/docsearch/internal/obslog"
	"github.com/mnohosten/docsearch/pkg/text"
)

// DocMeta is the metadata installed for a document at AddDocument time.
// Terms is the canonical owner of the document's word strings; the forward
// and inverse postings only ever reference terms that appear here.
type DocMeta struct {
	Rating int
	Status Status
	Terms  map[string]struct{}
}

// Store is the inverted-index data store. Every method takes the store's
// read-write lock, so individual calls are safe to run concurrently. A
// query that spans several calls (as the rankers do) is not atomic with
// respect to a concurrent AddDocument or RemoveDocument.
type Store struct {
	mu sync.RWMutex

	stopWords *text.StopWords
	log       zerolog.Logger

	termToDocs map[string]map[int]float64
	docToTerms map[int]map[string]float64
	meta       map[int]*DocMeta
	ids        orderedIDs
}

// New creates an empty Store. stop may be nil. log may be the zero value
// (which behaves like obslog.Nop()).
func New(stop *text.StopWords, log zerolog.Logger) *Store {
	return &Store{
		stopWords:  stop,
		log:        log,
		termToDocs: make(map[string]map[int]float64),
		docToTerms: make(map[int]map[string]float64),
		meta:       make(map[int]*DocMeta),
	}
}

// NewDefault creates an empty Store with a discarding logger.
func NewDefault(stop *text.StopWords) *Store {
	return New(stop, obslog.Nop())
}

// AddDocument tokenizes text, drops stop-words, computes term-frequencies,
// and installs the document into all four index structures.
func (s *Store) AddDocument(id int, rawText string, status Status, ratings []int) error {
	if id < 0 {
		return fmt.Errorf("add document %d: %w", id, ErrNegativeID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids.Contains(id) {
		return fmt.Errorf("add document %d: %w", id, ErrDuplicateID)
	}

	tokens, err := text.SplitValidated(rawText)
	if err != nil {
		return fmt.Errorf("add document %d: %w", id, err)
	}

	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if s.stopWords.Contains(tok) {
			continue
		}
		words = append(words, tok)
	}

	termCounts := make(map[string]int, len(words))
	for _, w := range words {
		termCounts[w]++
	}

	termFreqs := make(map[string]float64, len(termCounts))
	if n := len(words); n > 0 {
		inv := 1.0 / float64(n)
		for term, count := range termCounts {
			termFreqs[term] = float64(count) * inv
		}
	}

	for term, tf := range termFreqs {
		postings, ok := s.termToDocs[term]
		if !ok {
			postings = make(map[int]float64)
			s.termToDocs[term] = postings
		}
		postings[id] = tf
	}
	s.docToTerms[id] = termFreqs

	terms := make(map[string]struct{}, len(termFreqs))
	for term := range termFreqs {
		terms[term] = struct{}{}
	}
	s.meta[id] = &DocMeta{
		Rating: averageRating(ratings),
		Status: status,
		Terms:  terms,
	}

	s.ids.Insert(id)

	s.log.Debug().Int("id", id).Int("terms", len(termFreqs)).Str("status", status.String()).Msg("document added")
	return nil
}

// averageRating truncates the integer average of ratings toward zero. An
// empty rating vector yields 0.
func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

// RemoveDocument erases every entry referencing id from all index
// structures. Removing an unknown id is a no-op, per spec.md §9's adoption
// of the tolerant (parallel-path) behavior.
func (s *Store) RemoveDocument(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ids.Contains(id) {
		return
	}

	for term := range s.docToTerms[id] {
		if postings, ok := s.termToDocs[term]; ok {
			delete(postings, id)
			if len(postings) == 0 {
				delete(s.termToDocs, term)
			}
		}
	}

	delete(s.docToTerms, id)
	delete(s.meta, id)
	s.ids.Remove(id)

	s.log.Debug().Int("id", id).Msg("document removed")
}

// GetWordFrequencies returns a snapshot of doc_to_terms[id], or an empty
// map if id is absent. The returned map is a copy and is safe to retain.
func (s *Store) GetWordFrequencies(id int) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	freqs, ok := s.docToTerms[id]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(freqs))
	for k, v := range freqs {
		out[k] = v
	}
	return out
}

// GetDocumentCount returns the number of live documents.
func (s *Store) GetDocumentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids.Len()
}

// Ids returns the live document ids in ascending order.
func (s *Store) Ids() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, s.ids.Len())
	copy(out, s.ids.Slice())
	return out
}

// Meta returns the metadata for id, or false if id is not live.
func (s *Store) Meta(id int) (DocMeta, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.meta[id]
	if !ok {
		return DocMeta{}, false
	}
	return *m, true
}

// Postings returns a snapshot of term_to_docs[term], or nil if the term
// has no postings. Treat "no postings" as "term absent" per spec.md §4.4.
func (s *Store) Postings(term string) map[int]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	postings, ok := s.termToDocs[term]
	if !ok || len(postings) == 0 {
		return nil
	}
	out := make(map[int]float64, len(postings))
	for k, v := range postings {
		out[k] = v
	}
	return out
}

// DocumentFrequency returns the number of live documents containing term.
func (s *Store) DocumentFrequency(term string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.termToDocs[term])
}
