// Package gamification computes XP and streak rewards when a quiz session
// completes and keeps the cumulative state persisted through a
// store.GamificationStore.
package gamification

import (
	"context"
	"log/slog"
	"time"

	"vietger/internal/domain"
	"vietger/internal/platform/logger"
	"vietger/internal/store"
)

// XP rules. Bonuses are additive and evaluated independently.
const (
	xpPerCorrectWord = 10

	perfectSessionBonus   = 50
	perfectSessionMinSize = 5

	longSessionBonus   = 30
	longSessionMinSize = 20

	weekStreakBonus  = 20
	weekStreakLength = 7
)

// Service awards rewards for completed sessions. The clock is injected so
// streak transitions can be tested deterministically.
type Service struct {
	store  store.GamificationStore
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a gamification service backed by the given store.
// If logger is nil, a default logger will be used.
func NewService(gamStore store.GamificationStore, logger *slog.Logger) *Service {
	if gamStore == nil {
		panic("store cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		store:  gamStore,
		now:    time.Now,
		logger: logger.With(slog.String("component", "gamification")),
	}
}

// WithClock replaces the service clock. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// State returns the persisted reward state.
func (s *Service) State(ctx context.Context) (*domain.GamificationState, error) {
	return s.store.Get(ctx)
}

// CompleteSession awards XP for a finished session and advances the
// calendar-day streak. Persistence is best-effort: a failing store read
// starts from a zero state and a failing write is logged, the computed
// rewards are returned either way.
func (s *Service) CompleteSession(
	ctx context.Context,
	correctWords, totalWords int,
) (*domain.SessionRewards, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	state, err := s.store.Get(ctx)
	if err != nil {
		log.Warn("failed to load gamification state, starting from zero",
			slog.String("error", err.Error()))
		state = &domain.GamificationState{}
	}

	baseXP := correctWords * xpPerCorrectWord

	bonusXP := 0
	if totalWords >= perfectSessionMinSize && correctWords == totalWords {
		bonusXP += perfectSessionBonus
	}
	if totalWords >= longSessionMinSize {
		bonusXP += longSessionBonus
	}
	// Week-streak bonus looks at the streak as it stood before this session.
	if state.CurrentStreak >= weekStreakLength {
		bonusXP += weekStreakBonus
	}
	earnedXP := baseXP + bonusXP

	now := s.now().UTC()
	sameDay := s.updateStreak(state, now)
	if !sameDay {
		state.LastSessionDate = &now
	}
	state.TotalXP += earnedXP

	if err := s.store.Save(ctx, state); err != nil {
		log.Warn("failed to persist gamification state",
			slog.String("error", err.Error()))
	}

	rewards := &domain.SessionRewards{
		BaseXP:    baseXP,
		BonusXP:   bonusXP,
		TotalXP:   earnedXP,
		NewStreak: state.CurrentStreak,
	}
	log.Info("session rewards computed",
		slog.Int("correct_words", correctWords),
		slog.Int("total_words", totalWords),
		slog.Int("earned_xp", earnedXP),
		slog.Int("streak", state.CurrentStreak))
	return rewards, nil
}

// updateStreak advances the calendar-day streak in place and reports whether
// the session fell on the same day as the previous one. Same-day sessions
// leave the streak and the stamped date untouched.
func (s *Service) updateStreak(state *domain.GamificationState, now time.Time) bool {
	if state.LastSessionDate == nil {
		state.CurrentStreak = 1
	} else {
		days := daysBetween(*state.LastSessionDate, now)
		switch {
		case days == 0:
			return true
		case days == 1:
			state.CurrentStreak++
		default:
			state.CurrentStreak = 1
		}
	}

	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}
	return false
}

// daysBetween counts calendar days between two instants in UTC.
func daysBetween(from, to time.Time) int {
	return int(startOfDay(to).Sub(startOfDay(from)).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
