package index

import "errors"

var (
	// ErrNegativeID is returned when AddDocument is called with id < 0.
	ErrNegativeID = errors.New("negative document id")

	// ErrDuplicateID is returned when AddDocument is called with an id
	// that is already live.
	ErrDuplicateID = errors.New("duplicate document id")

	// ErrDocumentNotFound is returned by MatchDocument when id is not live.
	ErrDocumentNotFound = errors.New("document not found")
)
