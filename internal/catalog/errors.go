package catalog

import "errors"

// Catalog lookup errors.
var (
	// ErrDeckNotFound is returned when a deck ID is not in the catalog.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrWordNotFound is returned when a word ID is not in the deck.
	ErrWordNotFound = errors.New("word not found")
)
