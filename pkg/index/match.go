package index

import (
	"fmt"

	"github.com/mnohosten/docsearch/pkg/query"
)

// MatchDocument parses raw against the store's stop-word set and reports
// which plus-words of the query occur in id's term-set, along with id's
// status. If any minus-word of the query occurs in id's term-set, it
// returns an empty word list (but still the status) rather than an error.
// Fails with ErrDocumentNotFound if id is not live.
func (s *Store) MatchDocument(raw string, id int) ([]string, Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta, ok := s.meta[id]
	if !ok {
		return nil, 0, fmt.Errorf("match document %d: %w", id, ErrDocumentNotFound)
	}

	q, err := query.Parse(raw, s.stopWords)
	if err != nil {
		return nil, meta.Status, err
	}

	for minus := range q.Minus {
		if _, hit := meta.Terms[minus]; hit {
			return []string{}, meta.Status, nil
		}
	}

	matched := make([]string, 0, len(q.Plus))
	for plus := range q.Plus {
		if _, hit := meta.Terms[plus]; hit {
			matched = append(matched, plus)
		}
	}
	return matched, meta.Status, nil
}
