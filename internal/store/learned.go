package store

import "context"

// LearnedStore defines the interface for per-deck learned-word persistence.
// The learned set is a durable set of word IDs keyed by deck; the engine
// reads it to build the initial word pool and writes to it whenever a word
// becomes learned or unlearned. Writes are best-effort from the engine's
// perspective: in-memory session state stays authoritative for the remainder
// of a session even if persistence fails.
type LearnedStore interface {
	// IsLearned reports whether the word is in the deck's learned set.
	IsLearned(ctx context.Context, deckID, wordID string) (bool, error)

	// SetLearned inserts or removes the word from the deck's learned set.
	// Setting an already-learned word (or clearing an unknown one) is a no-op.
	SetLearned(ctx context.Context, deckID, wordID string, learned bool) error

	// GetLearned returns the full learned set for a deck.
	GetLearned(ctx context.Context, deckID string) (map[string]struct{}, error)

	// ResetLearned clears the deck's learned set.
	ResetLearned(ctx context.Context, deckID string) error
}
