package rank

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/mnohosten/docsearch/internal/obslog"
	"github.com/mnohosten/docsearch/pkg/text"
)

func newStopWords(t *testing.T, words string) (*text.StopWords, error) {
	t.Helper()
	return text.NewStopWords(words)
}

func noopLogger() zerolog.Logger {
	return obslog.Nop()
}
