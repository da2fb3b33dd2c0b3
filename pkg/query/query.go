// Package query parses free-text search queries into plus/minus term sets.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mnohosten/docsearch/pkg/text"
)

// ErrEmptyTerm is returned when a query token is empty. A token made only
// of control whitespace such as tabs fails validation with
// text.ErrInvalidToken instead.
var ErrEmptyTerm = errors.New("empty query term")

// ErrMalformedMinus is returned for a double-dash ("--word") or a lone "-".
var ErrMalformedMinus = errors.New("malformed minus term")

// Query holds the plus-word and minus-word sets produced by Parse. The
// sets may overlap lexically only when the raw query negates
// and affirms the same word; Parse leaves them exactly as emitted and does
// not canonicalize duplicates between the two sets (spec.md §4.3
// postcondition).
type Query struct {
	Plus  map[string]struct{}
	Minus map[string]struct{}
}

// Parsed is a Query together with the raw text it was parsed from, so
// callers that need to report the original query text don't need to
// reconstruct it.
type Parsed struct {
	Query
	Raw string
}

// Parse tokenizes raw on ASCII spaces and classifies every non-stop-word
// token into the plus-word or minus-word set. stop may be nil, which is
// treated as an empty stop-word set.
func Parse(raw string, stop *text.StopWords) (*Parsed, error) {
	q := &Parsed{
		Query: Query{
			Plus:  make(map[string]struct{}),
			Minus: make(map[string]struct{}),
		},
		Raw: raw,
	}

	for _, tok := range text.Split(raw) {
		if tok == "" {
			return nil, fmt.Errorf("query %q: %w", raw, ErrEmptyTerm)
		}

		minus := false
		body := tok
		if strings.HasPrefix(tok, "-") {
			minus = true
			body = tok[1:]
		}

		if err := text.ValidateToken(body); err != nil {
			return nil, fmt.Errorf("query %q: term %q: %w", raw, tok, err)
		}
		if body == "" || strings.HasPrefix(body, "-") {
			return nil, fmt.Errorf("query %q: term %q: %w", raw, tok, ErrMalformedMinus)
		}

		if stop.Contains(body) {
			continue
		}

		if minus {
			q.Minus[body] = struct{}{}
		} else {
			q.Plus[body] = struct{}{}
		}
	}

	return q, nil
}

// PlusWords returns the plus-word set as a slice, in no particular order.
func (q *Query) PlusWords() []string {
	return keys(q.Plus)
}

// MinusWords returns the minus-word set as a slice, in no particular order.
func (q *Query) MinusWords() []string {
	return keys(q.Minus)
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
