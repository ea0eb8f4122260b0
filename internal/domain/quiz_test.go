package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWords(t *testing.T, n int) []*Word {
	t.Helper()
	words := make([]*Word, 0, n)
	for i := 0; i < n; i++ {
		w := &Word{
			ID:     string(rune('a' + i)),
			Source: Translation{Canonical: "s"},
			Target: Translation{Canonical: "t"},
		}
		require.NoError(t, w.Validate())
		words = append(words, w)
	}
	return words
}

func TestDirection(t *testing.T) {
	t.Parallel()

	assert.True(t, DirectionSourceToTarget.IsSourceToTarget())
	assert.False(t, DirectionTargetToSource.IsSourceToTarget())
	assert.True(t, DirectionSourceToTarget.IsValid())
	assert.True(t, DirectionTargetToSource.IsValid())
	assert.False(t, Direction("sideways").IsValid())
}

func TestSessionCurrent(t *testing.T) {
	t.Parallel()

	s := NewSession(QuizConfig{}, sessionWords(t, 2))
	assert.Equal(t, "a", s.Current().ID)

	s.CurrentIndex = 1
	assert.Equal(t, "b", s.Current().ID)

	s.CurrentIndex = 2
	assert.Nil(t, s.Current(), "out of range yields nil")

	empty := NewSession(QuizConfig{}, nil)
	assert.Nil(t, empty.Current())
}

func TestSessionProgress(t *testing.T) {
	t.Parallel()

	s := NewSession(QuizConfig{}, sessionWords(t, 4))
	assert.InDelta(t, 0.0, s.Progress(), 1e-9)

	s.CurrentIndex = 2
	assert.InDelta(t, 0.5, s.Progress(), 1e-9)

	empty := NewSession(QuizConfig{}, nil)
	assert.InDelta(t, 0.0, empty.Progress(), 1e-9)
}

func TestSessionAccuracy(t *testing.T) {
	t.Parallel()

	s := NewSession(QuizConfig{}, sessionWords(t, 4))
	assert.InDelta(t, 0.0, s.Accuracy(), 1e-9, "no seen words yields zero")

	s.SeenIDs["a"] = struct{}{}
	s.SeenIDs["b"] = struct{}{}
	s.CorrectIDs["a"] = struct{}{}
	assert.InDelta(t, 0.5, s.Accuracy(), 1e-9)

	// Marking unseen words learned puts them in CorrectIDs only; accuracy
	// must stay capped at 1.
	s.CorrectIDs["b"] = struct{}{}
	s.CorrectIDs["c"] = struct{}{}
	assert.InDelta(t, 1.0, s.Accuracy(), 1e-9)
}

func TestGamificationStateValidate(t *testing.T) {
	t.Parallel()

	valid := GamificationState{CurrentStreak: 1, LongestStreak: 2, TotalXP: 30}
	assert.NoError(t, valid.Validate())

	negStreak := GamificationState{CurrentStreak: -1}
	assert.ErrorIs(t, negStreak.Validate(), ErrNegativeStreak)

	negXP := GamificationState{TotalXP: -1}
	assert.ErrorIs(t, negXP.Validate(), ErrNegativeXP)
}
