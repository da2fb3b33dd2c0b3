package query

import (
	"errors"
	"testing"

	"github.com/mnohosten/docsearch/pkg/text"
)

func mustStopWords(t *testing.T, words string) *text.StopWords {
	t.Helper()
	sw, err := text.NewStopWords(words)
	if err != nil {
		t.Fatalf("NewStopWords: %v", err)
	}
	return sw
}

func TestParseBasic(t *testing.T) {
	sw := mustStopWords(t, "in the")
	q, err := Parse("cat in the city", sw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Plus) != 2 {
		t.Fatalf("Plus = %v, want 2 entries", q.Plus)
	}
	if _, ok := q.Plus["cat"]; !ok {
		t.Errorf("expected cat in plus words")
	}
	if _, ok := q.Plus["city"]; !ok {
		t.Errorf("expected city in plus words")
	}
	if len(q.Minus) != 0 {
		t.Errorf("Minus = %v, want empty", q.Minus)
	}
}

func TestParseMinusWords(t *testing.T) {
	q, err := Parse("found -hat", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := q.Plus["found"]; !ok {
		t.Errorf("expected found in plus words")
	}
	if _, ok := q.Minus["hat"]; !ok {
		t.Errorf("expected hat in minus words")
	}
}

func TestParseEmptyQuery(t *testing.T) {
	q, err := Parse("", nil)
	if err != nil {
		t.Fatalf("empty query should not error: %v", err)
	}
	if len(q.Plus) != 0 || len(q.Minus) != 0 {
		t.Errorf("expected no terms from empty query")
	}
}

func TestParseMalformedMinus(t *testing.T) {
	cases := []string{"--word", "-", "word --other"}
	for _, raw := range cases {
		_, err := Parse(raw, nil)
		if !errors.Is(err, ErrMalformedMinus) {
			t.Errorf("Parse(%q) = %v, want ErrMalformedMinus", raw, err)
		}
	}
}

func TestParseInvalidToken(t *testing.T) {
	_, err := Parse("good bad\x01word", nil)
	if !errors.Is(err, text.ErrInvalidToken) {
		t.Errorf("Parse() = %v, want ErrInvalidToken", err)
	}
}

func TestParseSameWordPlusAndMinus(t *testing.T) {
	q, err := Parse("word -word", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := q.Plus["word"]; !ok {
		t.Errorf("expected word in plus set")
	}
	if _, ok := q.Minus["word"]; !ok {
		t.Errorf("expected word in minus set")
	}
}

func TestParseDiscardsStopWords(t *testing.T) {
	sw := mustStopWords(t, "in the")
	q, err := Parse("in the -the", sw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Plus) != 0 || len(q.Minus) != 0 {
		t.Errorf("expected all stop-word terms to be discarded, got %+v", q.Query)
	}
}
