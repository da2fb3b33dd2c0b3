package dedup

import (
	"github.com/rs/zerolog"

	"github.com/mnohosten/docsearch/internal/obslog"
	"github.com/mnohosten/docsearch/pkg/text"
)

func newStopWords(words string) (*text.StopWords, error) {
	return text.NewStopWords(words)
}

func noopLoggerForTest() zerolog.Logger {
	return obslog.Nop()
}
