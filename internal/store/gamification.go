package store

import (
	"context"

	"vietger/internal/domain"
)

// GamificationStore defines the interface for reward-state persistence.
// Exactly one state exists; the engine reads and updates it around session
// completion but does not own the storage.
type GamificationStore interface {
	// Get returns the persisted state. Implementations return a zero-valued
	// state (not an error) when nothing has been persisted yet.
	Get(ctx context.Context) (*domain.GamificationState, error)

	// Save persists the state, replacing whatever was stored before.
	// Returns validation errors if the state is invalid.
	Save(ctx context.Context, state *domain.GamificationState) error
}
