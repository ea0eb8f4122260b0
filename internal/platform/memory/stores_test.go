package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietger/internal/domain"
)

func TestLearnedStoreRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewLearnedStore()
	ctx := context.Background()

	learned, err := s.IsLearned(ctx, "core", "w1")
	require.NoError(t, err)
	assert.False(t, learned)

	require.NoError(t, s.SetLearned(ctx, "core", "w1", true))
	require.NoError(t, s.SetLearned(ctx, "core", "w2", true))
	require.NoError(t, s.SetLearned(ctx, "other", "w1", true))

	learned, err = s.IsLearned(ctx, "core", "w1")
	require.NoError(t, err)
	assert.True(t, learned)

	set, err := s.GetLearned(ctx, "core")
	require.NoError(t, err)
	assert.Len(t, set, 2, "decks are independent")

	require.NoError(t, s.SetLearned(ctx, "core", "w1", false))
	learned, err = s.IsLearned(ctx, "core", "w1")
	require.NoError(t, err)
	assert.False(t, learned)

	// Clearing an unknown word is a no-op.
	require.NoError(t, s.SetLearned(ctx, "core", "ghost", false))
}

func TestLearnedStoreReset(t *testing.T) {
	t.Parallel()

	s := NewLearnedStore()
	ctx := context.Background()
	require.NoError(t, s.SetLearned(ctx, "core", "w1", true))
	require.NoError(t, s.SetLearned(ctx, "other", "w1", true))

	require.NoError(t, s.ResetLearned(ctx, "core"))

	set, err := s.GetLearned(ctx, "core")
	require.NoError(t, err)
	assert.Empty(t, set)

	set, err = s.GetLearned(ctx, "other")
	require.NoError(t, err)
	assert.Len(t, set, 1, "reset only touches the named deck")
}

func TestGamificationStoreZeroState(t *testing.T) {
	t.Parallel()

	s := NewGamificationStore()
	state, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.GamificationState{}, state)
}

func TestGamificationStoreSaveCopies(t *testing.T) {
	t.Parallel()

	s := NewGamificationStore()
	ctx := context.Background()

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	in := &domain.GamificationState{
		CurrentStreak:   2,
		LongestStreak:   5,
		TotalXP:         120,
		LastSessionDate: &now,
	}
	require.NoError(t, s.Save(ctx, in))

	// Mutating the saved value must not leak into the store.
	in.TotalXP = 0

	out, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, out.TotalXP)
	assert.Equal(t, now, out.LastSessionDate.UTC())

	// Mutating the returned value must not leak either.
	out.CurrentStreak = 99
	again, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, again.CurrentStreak)
}

func TestGamificationStoreRejectsInvalidState(t *testing.T) {
	t.Parallel()

	s := NewGamificationStore()
	err := s.Save(context.Background(), &domain.GamificationState{CurrentStreak: -1})
	assert.ErrorIs(t, err, domain.ErrNegativeStreak)
}
