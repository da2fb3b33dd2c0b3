package text

// StopWords is an immutable set of terms filtered out before indexing and
// before query interpretation. Membership lookup is O(1); the set is never
// mutated after NewStopWords returns.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords builds a stop-word set from any number of string sources,
// where each source is itself a space-separated list of words (so both
// NewStopWords("in the") and NewStopWords("in", "the") are accepted).
// Empty strings are discarded. Every retained entry is validated with
// ValidateToken; the first invalid entry aborts construction.
func NewStopWords(sources ...string) (*StopWords, error) {
	sw := &StopWords{words: make(map[string]struct{})}
	for _, src := range sources {
		for _, tok := range Split(src) {
			if tok == "" {
				continue
			}
			if err := ValidateToken(tok); err != nil {
				return nil, err
			}
			sw.words[tok] = struct{}{}
		}
	}
	return sw, nil
}

// NewStopWordsFromSlice builds a stop-word set from an arbitrary iterable
// of individual words (as opposed to space-separated strings).
func NewStopWordsFromSlice(words []string) (*StopWords, error) {
	sw := &StopWords{words: make(map[string]struct{})}
	for _, word := range words {
		if word == "" {
			continue
		}
		if err := ValidateToken(word); err != nil {
			return nil, err
		}
		sw.words[word] = struct{}{}
	}
	return sw, nil
}

// Contains reports whether word is a stop-word. A nil *StopWords behaves
// like an empty set.
func (sw *StopWords) Contains(word string) bool {
	if sw == nil {
		return false
	}
	_, ok := sw.words[word]
	return ok
}

// Len returns the number of distinct stop-words.
func (sw *StopWords) Len() int {
	if sw == nil {
		return 0
	}
	return len(sw.words)
}
