package memory

import (
	"context"
	"sync"

	"vietger/internal/store"
)

// LearnedStore is an in-memory implementation of store.LearnedStore.
// It backs the server when no database is configured and the handler
// tests. All methods are safe for concurrent use.
type LearnedStore struct {
	mu    sync.RWMutex
	decks map[string]map[string]struct{}
}

// NewLearnedStore creates an empty in-memory learned-word store.
func NewLearnedStore() *LearnedStore {
	return &LearnedStore{decks: make(map[string]map[string]struct{})}
}

// Ensure LearnedStore implements store.LearnedStore interface
var _ store.LearnedStore = (*LearnedStore)(nil)

// IsLearned implements store.LearnedStore.IsLearned
func (s *LearnedStore) IsLearned(_ context.Context, deckID, wordID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.decks[deckID][wordID]
	return ok, nil
}

// SetLearned implements store.LearnedStore.SetLearned
func (s *LearnedStore) SetLearned(_ context.Context, deckID, wordID string, learned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if learned {
		deck, ok := s.decks[deckID]
		if !ok {
			deck = make(map[string]struct{})
			s.decks[deckID] = deck
		}
		deck[wordID] = struct{}{}
		return nil
	}

	delete(s.decks[deckID], wordID)
	return nil
}

// GetLearned implements store.LearnedStore.GetLearned
func (s *LearnedStore) GetLearned(_ context.Context, deckID string) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	learned := make(map[string]struct{}, len(s.decks[deckID]))
	for wordID := range s.decks[deckID] {
		learned[wordID] = struct{}{}
	}
	return learned, nil
}

// ResetLearned implements store.LearnedStore.ResetLearned
func (s *LearnedStore) ResetLearned(_ context.Context, deckID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.decks, deckID)
	return nil
}
