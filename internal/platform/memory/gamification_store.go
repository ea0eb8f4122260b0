package memory

import (
	"context"
	"sync"

	"vietger/internal/domain"
	"vietger/internal/store"
)

// GamificationStore is an in-memory implementation of store.GamificationStore.
// All methods are safe for concurrent use.
type GamificationStore struct {
	mu    sync.RWMutex
	state *domain.GamificationState
}

// NewGamificationStore creates an in-memory gamification store holding a
// zero-valued state.
func NewGamificationStore() *GamificationStore {
	return &GamificationStore{}
}

// Ensure GamificationStore implements store.GamificationStore interface
var _ store.GamificationStore = (*GamificationStore)(nil)

// Get implements store.GamificationStore.Get
func (s *GamificationStore) Get(_ context.Context) (*domain.GamificationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return &domain.GamificationState{}, nil
	}
	copied := *s.state
	if s.state.LastSessionDate != nil {
		t := *s.state.LastSessionDate
		copied.LastSessionDate = &t
	}
	return &copied, nil
}

// Save implements store.GamificationStore.Save
func (s *GamificationStore) Save(_ context.Context, state *domain.GamificationState) error {
	if err := state.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *state
	if state.LastSessionDate != nil {
		t := *state.LastSessionDate
		copied.LastSessionDate = &t
	}
	s.state = &copied
	return nil
}
