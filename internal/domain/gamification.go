package domain

import (
	"errors"
	"time"
)

// Gamification validation errors
var (
	// ErrNegativeStreak is returned when a streak value is negative.
	ErrNegativeStreak = errors.New("streak cannot be negative")

	// ErrNegativeXP is returned when a total XP value is negative.
	ErrNegativeXP = errors.New("total XP cannot be negative")
)

// GamificationState is the externally persisted reward state: streaks,
// cumulative XP and the date of the most recent session. A nil
// LastSessionDate means no session has ever completed.
type GamificationState struct {
	CurrentStreak   int        `json:"current_streak"`
	LongestStreak   int        `json:"longest_streak"`
	TotalXP         int        `json:"total_xp"`
	LastSessionDate *time.Time `json:"last_session_date,omitempty"`
}

// Validate checks if the GamificationState has valid data.
func (s *GamificationState) Validate() error {
	if s.CurrentStreak < 0 || s.LongestStreak < 0 {
		return ErrNegativeStreak
	}
	if s.TotalXP < 0 {
		return ErrNegativeXP
	}
	return nil
}

// SessionRewards is the XP/streak breakdown computed when a session
// completes, returned so the caller can render a reward summary.
type SessionRewards struct {
	BaseXP    int `json:"base_xp"`
	BonusXP   int `json:"bonus_xp"`
	TotalXP   int `json:"total_xp"`
	NewStreak int `json:"new_streak"`
}
