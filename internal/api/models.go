package api

import (
	"vietger/internal/domain"
	"vietger/internal/quiz"
)

// Request models

// StartSessionRequest starts a quiz session over a deck.
type StartSessionRequest struct {
	Deck        string `json:"deck" validate:"required"`
	Direction   string `json:"direction" validate:"required,oneof=source_to_target target_to_source"`
	Size        int    `json:"size" validate:"omitempty,gt=0"`
	UseAllWords bool   `json:"use_all_words"`
}

// ReviewSessionRequest replays a finished session's mistakes.
type ReviewSessionRequest struct {
	Direction string `json:"direction" validate:"omitempty,oneof=source_to_target target_to_source"`
}

// AnswerRequest submits an answer for the current word.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// MarkLearnedRequest flags a session word as already known.
type MarkLearnedRequest struct {
	WordID string `json:"word_id" validate:"required"`
}

// SetLearnedRequest toggles a word's learned flag outside a session.
type SetLearnedRequest struct {
	Learned bool `json:"learned"`
}

// SpeakRequest pronounces the current word's prompt or answer side.
type SpeakRequest struct {
	PromptSide bool `json:"prompt_side"`
}

// Response models

// DeckResponse summarizes one deck.
type DeckResponse struct {
	ID        string `json:"id"`
	WordCount int    `json:"word_count"`
}

// WordResponse is a word with its learned flag.
type WordResponse struct {
	ID       string                  `json:"id"`
	Source   domain.Translation      `json:"source"`
	Target   domain.Translation      `json:"target"`
	Category domain.Category         `json:"category"`
	Learned  bool                    `json:"learned"`
	Example  *domain.ExampleSentence `json:"example,omitempty"`
}

// SentenceResponse carries an example-sentence lookup result. A miss is an
// explicit absent state, not an error.
type SentenceResponse struct {
	Found    bool                    `json:"found"`
	Sentence *domain.ExampleSentence `json:"sentence,omitempty"`
}

// SessionResponse is the engine state snapshot plus the session ID.
type SessionResponse struct {
	SessionID    string                 `json:"session_id"`
	Stage        domain.Stage           `json:"stage"`
	Config       *domain.QuizConfig     `json:"config,omitempty"`
	CurrentIndex int                    `json:"current_index"`
	TotalWords   int                    `json:"total_words"`
	Current      *WordCardResponse      `json:"current,omitempty"`
	Revealed     bool                   `json:"revealed"`
	LastCorrect  *bool                  `json:"last_correct,omitempty"`
	Progress     float64                `json:"progress"`
	Accuracy     float64                `json:"accuracy"`
	CorrectCount int                    `json:"correct_count"`
	SeenCount    int                    `json:"seen_count"`
	Rewards      *domain.SessionRewards `json:"rewards,omitempty"`
	MistakeIDs   []string               `json:"mistake_ids,omitempty"`
}

// WordCardResponse is the current word as shown mid-quiz: the prompt always,
// the accepted answers only once revealed.
type WordCardResponse struct {
	WordID   string   `json:"word_id"`
	Prompt   string   `json:"prompt"`
	Answers  []string `json:"answers,omitempty"`
	Category string   `json:"category"`
}

// AnswerResponse reports one evaluation result.
type AnswerResponse struct {
	Correct bool             `json:"correct"`
	Session *SessionResponse `json:"session"`
}

// StatsResponse is the persisted gamification state.
type StatsResponse struct {
	CurrentStreak   int     `json:"current_streak"`
	LongestStreak   int     `json:"longest_streak"`
	TotalXP         int     `json:"total_xp"`
	LastSessionDate *string `json:"last_session_date,omitempty"`
}

// newSessionResponse converts an engine snapshot for the wire.
func newSessionResponse(sessionID string, snap quiz.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		SessionID:    sessionID,
		Stage:        snap.Stage,
		Config:       snap.Config,
		CurrentIndex: snap.CurrentIndex,
		TotalWords:   snap.TotalWords,
		Revealed:     snap.Revealed,
		LastCorrect:  snap.LastCorrect,
		Progress:     snap.Progress,
		Accuracy:     snap.Accuracy,
		CorrectCount: snap.CorrectCount,
		SeenCount:    snap.SeenCount,
		Rewards:      snap.Rewards,
	}

	if snap.Current != nil && snap.Config != nil {
		card := &WordCardResponse{
			WordID:   snap.Current.ID,
			Prompt:   quiz.PromptText(snap.Current, snap.Config.Direction),
			Category: string(snap.Current.Category),
		}
		if snap.Revealed {
			card.Answers = quiz.ExpectedAnswers(snap.Current, snap.Config.Direction)
		}
		resp.Current = card
	}

	if snap.Stage == domain.StageSummary {
		for _, w := range snap.Mistakes {
			resp.MistakeIDs = append(resp.MistakeIDs, w.ID)
		}
	}
	return resp
}
