package domain

import "errors"

// Quiz-specific validation errors
var (
	// ErrInvalidDirection is returned when a quiz direction is not valid.
	ErrInvalidDirection = errors.New("invalid quiz direction")
)

// Direction determines which side of a word is shown as the prompt and
// which side holds the accepted answers.
type Direction string

// Possible quiz directions
const (
	DirectionSourceToTarget Direction = "source_to_target"
	DirectionTargetToSource Direction = "target_to_source"
)

// IsSourceToTarget reports whether the source language is the prompt side.
func (d Direction) IsSourceToTarget() bool { return d == DirectionSourceToTarget }

// IsValid reports whether d is one of the known directions.
func (d Direction) IsValid() bool {
	return d == DirectionSourceToTarget || d == DirectionTargetToSource
}

// Stage is the quiz lifecycle state.
type Stage string

// Possible quiz stages
const (
	StageSetup   Stage = "setup"
	StageInQuiz  Stage = "in_quiz"
	StageSummary Stage = "summary"
)

// QuizConfig is the immutable configuration of one quiz run, created once at
// session start from user input.
type QuizConfig struct {
	Deck        string    `json:"deck"`
	Direction   Direction `json:"direction"`
	Size        int       `json:"size"`
	UseAllWords bool      `json:"use_all_words"`
}

// Session is the mutable state of one quiz run. The word pool is fixed at
// creation; CorrectIDs holds ids answered correctly (or explicitly marked
// learned) at least once this session, SeenIDs holds ids displayed at least
// once. A word can enter CorrectIDs without ever entering SeenIDs through the
// mark-learned path, so CorrectIDs is deliberately not a subset of SeenIDs.
type Session struct {
	Config       QuizConfig
	Words        []*Word
	CurrentIndex int
	CorrectIDs   map[string]struct{}
	SeenIDs      map[string]struct{}
}

// NewSession creates a session over the given fixed word pool.
func NewSession(config QuizConfig, words []*Word) *Session {
	return &Session{
		Config:     config,
		Words:      words,
		CorrectIDs: make(map[string]struct{}),
		SeenIDs:    make(map[string]struct{}),
	}
}

// Current returns the word at the current index, or nil when the pool is
// empty or the index is out of range.
func (s *Session) Current() *Word {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Words) {
		return nil
	}
	return s.Words[s.CurrentIndex]
}

// Progress is the fraction of the pool walked so far, 0 for an empty pool.
func (s *Session) Progress() float64 {
	if len(s.Words) == 0 {
		return 0
	}
	return float64(s.CurrentIndex) / float64(len(s.Words))
}

// Accuracy is correct-over-seen, 0 while nothing has been seen. The
// mark-learned path can grow CorrectIDs past SeenIDs, so the ratio is
// clamped to keep accuracy within [0, 1].
func (s *Session) Accuracy() float64 {
	if len(s.SeenIDs) == 0 {
		return 0
	}
	accuracy := float64(len(s.CorrectIDs)) / float64(len(s.SeenIDs))
	if accuracy > 1 {
		return 1
	}
	return accuracy
}
