package gamification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietger/internal/domain"
	"vietger/internal/platform/memory"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(t *testing.T, now time.Time) (*Service, *memory.GamificationStore) {
	t.Helper()
	gamStore := memory.NewGamificationStore()
	svc := NewService(gamStore, nil).WithClock(fixedClock(now))
	return svc, gamStore
}

func seedState(t *testing.T, gamStore *memory.GamificationStore, state domain.GamificationState) {
	t.Helper()
	require.NoError(t, gamStore.Save(context.Background(), &state))
}

var noon = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestCompleteSessionBaseXP(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, noon)
	rewards, err := svc.CompleteSession(context.Background(), 3, 4)
	require.NoError(t, err)

	assert.Equal(t, 30, rewards.BaseXP)
	assert.Equal(t, 0, rewards.BonusXP)
	assert.Equal(t, 30, rewards.TotalXP)
	assert.Equal(t, 1, rewards.NewStreak, "first session starts the streak")
}

func TestCompleteSessionPerfectWithWeekStreak(t *testing.T) {
	t.Parallel()

	svc, gamStore := newTestService(t, noon)
	yesterday := noon.AddDate(0, 0, -1)
	seedState(t, gamStore, domain.GamificationState{
		CurrentStreak:   8,
		LongestStreak:   8,
		TotalXP:         500,
		LastSessionDate: &yesterday,
	})

	rewards, err := svc.CompleteSession(context.Background(), 10, 10)
	require.NoError(t, err)

	assert.Equal(t, 100, rewards.BaseXP)
	assert.Equal(t, 70, rewards.BonusXP, "perfect (+50) and week streak (+20), not long (<20 words)")
	assert.Equal(t, 170, rewards.TotalXP)
	assert.Equal(t, 9, rewards.NewStreak)

	state, err := svc.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 670, state.TotalXP)
	assert.Equal(t, 9, state.LongestStreak)
}

func TestCompleteSessionLongSessionBonus(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, noon)
	rewards, err := svc.CompleteSession(context.Background(), 20, 20)
	require.NoError(t, err)

	// Perfect (+50) and long session (+30); streak was 0 before the update.
	assert.Equal(t, 200, rewards.BaseXP)
	assert.Equal(t, 80, rewards.BonusXP)
}

func TestCompleteSessionNoPerfectBonusBelowMinSize(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, noon)
	rewards, err := svc.CompleteSession(context.Background(), 4, 4)
	require.NoError(t, err)

	assert.Equal(t, 0, rewards.BonusXP, "perfect bonus needs at least 5 words")
}

func TestStreakIncrementsAcrossConsecutiveDays(t *testing.T) {
	t.Parallel()

	svc, gamStore := newTestService(t, noon)
	yesterday := noon.AddDate(0, 0, -1)
	seedState(t, gamStore, domain.GamificationState{
		CurrentStreak:   3,
		LongestStreak:   3,
		LastSessionDate: &yesterday,
	})

	rewards, err := svc.CompleteSession(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, rewards.NewStreak)

	state, err := svc.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, state.CurrentStreak)
	assert.Equal(t, 4, state.LongestStreak, "longest streak rises with the current one")
	assert.Equal(t, noon, state.LastSessionDate.UTC())
}

func TestStreakSameDayIdempotent(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, noon)
	ctx := context.Background()

	first, err := svc.CompleteSession(ctx, 2, 3)
	require.NoError(t, err)
	second, err := svc.CompleteSession(ctx, 3, 3)
	require.NoError(t, err)

	assert.Equal(t, first.NewStreak, second.NewStreak, "same-day sessions never advance the streak")

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 50, state.TotalXP, "XP accrues on every completion")
	assert.Equal(t, noon, state.LastSessionDate.UTC(), "same-day completion does not re-stamp")
}

func TestStreakResetsAfterGap(t *testing.T) {
	t.Parallel()

	svc, gamStore := newTestService(t, noon)
	threeDaysAgo := noon.AddDate(0, 0, -3)
	seedState(t, gamStore, domain.GamificationState{
		CurrentStreak:   9,
		LongestStreak:   9,
		LastSessionDate: &threeDaysAgo,
	})

	rewards, err := svc.CompleteSession(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rewards.NewStreak)

	state, err := svc.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 9, state.LongestStreak, "longest streak survives the reset")
}

func TestStreakCalendarDayNotElapsedHours(t *testing.T) {
	t.Parallel()

	// 23:30 yesterday to 00:30 today is one calendar day apart even though
	// only an hour elapsed.
	lateYesterday := time.Date(2025, time.March, 9, 23, 30, 0, 0, time.UTC)
	earlyToday := time.Date(2025, time.March, 10, 0, 30, 0, 0, time.UTC)

	svc, gamStore := newTestService(t, earlyToday)
	seedState(t, gamStore, domain.GamificationState{
		CurrentStreak:   2,
		LongestStreak:   2,
		LastSessionDate: &lateYesterday,
	})

	rewards, err := svc.CompleteSession(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, rewards.NewStreak)
}

// failingStore errors on every call.
type failingStore struct{}

func (failingStore) Get(context.Context) (*domain.GamificationState, error) {
	return nil, errors.New("boom")
}

func (failingStore) Save(context.Context, *domain.GamificationState) error {
	return errors.New("boom")
}

func TestCompleteSessionSurvivesStoreFailure(t *testing.T) {
	t.Parallel()

	svc := NewService(failingStore{}, nil).WithClock(fixedClock(noon))
	rewards, err := svc.CompleteSession(context.Background(), 5, 5)
	require.NoError(t, err, "persistence failures never block rewards")

	assert.Equal(t, 50, rewards.BaseXP)
	assert.Equal(t, 50, rewards.BonusXP)
	assert.Equal(t, 1, rewards.NewStreak)
}
