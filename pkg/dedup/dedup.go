// Package dedup removes documents that share an identical term-set with
// an earlier-added document.
package dedup

import (
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/mnohosten/docsearch/pkg/index"
)

// Sink receives the side-effect output the deduper produces, one line per
// removed document, matching the reference's `cout << "Found duplicate
// document id " << id`. Taking a sink instead of writing to a process-wide
// stream keeps the behavior unit-testable (spec.md §9).
type Sink interface {
	Printf(format string, args ...any)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(format string, args ...any)

func (f SinkFunc) Printf(format string, args ...any) { f(format, args...) }

// fingerprint is a 256-bit digest of a document's term-set, used as the
// map key in place of a sorted-string-slice equality scan. The canonical
// byte representation is the sorted term list joined by a 0x00 separator,
// guaranteeing order-independence and no accidental collisions between
// e.g. {"ab","c"} and {"a","bc"}.
type fingerprint [blake2b.Size256]byte

func fingerprintOf(terms map[string]struct{}) fingerprint {
	sorted := make([]string, 0, len(terms))
	for t := range terms {
		sorted = append(sorted, t)
	}
	sortStrings(sorted)

	h, _ := blake2b.New256(nil)
	for _, t := range sorted {
		h.Write([]byte(t))
		h.Write([]byte{0})
	}
	var out fingerprint
	copy(out[:], h.Sum(nil))
	return out
}

func sortStrings(s []string) {
	// insertion sort is fine here: term-sets are short (a handful of
	// words per document) and this runs once per document per Dedup call.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Dedup walks store's live documents in ascending id order, groups them by
// term-set fingerprint, and removes every document sharing a fingerprint
// with an earlier (smaller-id) representative. The larger of the two ids
// in a collision is always the one removed. sink receives one line per
// removal; it may be nil to discard the output.
func Dedup(store *index.Store, sink Sink) []int {
	if sink == nil {
		sink = SinkFunc(func(string, ...any) {})
	}

	representative := make(map[fingerprint]int)
	var toRemove []int

	for _, id := range store.Ids() {
		meta, ok := store.Meta(id)
		if !ok {
			continue
		}
		fp := fingerprintOf(meta.Terms)

		rep, seen := representative[fp]
		if !seen {
			representative[fp] = id
			continue
		}

		larger, smaller := id, rep
		if rep > id {
			larger, smaller = rep, id
		}
		representative[fp] = smaller
		toRemove = append(toRemove, larger)
	}

	for _, id := range toRemove {
		store.RemoveDocument(id)
		sink.Printf("Found duplicate document id %d", id)
	}

	return toRemove
}

// NewWriterSink adapts an io.Writer-shaped target to Sink, writing each
// line with fmt.Fprintf followed by a newline.
func NewWriterSink(w interface {
	Write(p []byte) (n int, err error)
}) Sink {
	return SinkFunc(func(format string, args ...any) {
		fmt.Fprintf(w, format+"\n", args...)
	})
}
