// Package speech defines the pronunciation hook the quiz engine calls when
// a learner asks to hear a word. Speaking is best-effort; failures never
// affect session state.
package speech

import (
	"context"
	"log/slog"
)

// Speaker pronounces a piece of text in the given language.
type Speaker interface {
	// Speak pronounces text. Implementations must be non-blocking or fast;
	// the engine ignores errors beyond logging them.
	Speak(ctx context.Context, text, language string) error
}

// LogSpeaker is a Speaker that records utterances to the log instead of
// producing audio. It stands in until a real synthesis backend is wired.
type LogSpeaker struct {
	logger *slog.Logger
	rate   float64
}

// NewLogSpeaker creates a LogSpeaker. If logger is nil, a default logger
// will be used. Rate is the utterance rate a synthesis backend would use.
func NewLogSpeaker(logger *slog.Logger, rate float64) *LogSpeaker {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSpeaker{
		logger: logger.With(slog.String("component", "speech")),
		rate:   rate,
	}
}

// Ensure LogSpeaker implements Speaker interface
var _ Speaker = (*LogSpeaker)(nil)

// Speak implements Speaker.Speak
func (s *LogSpeaker) Speak(_ context.Context, text, language string) error {
	s.logger.Info("speaking",
		slog.String("text", text),
		slog.String("language", language),
		slog.Float64("rate", s.rate))
	return nil
}
