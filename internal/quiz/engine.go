// Package quiz implements the session state machine and the answer matcher.
// An Engine owns one learner's quiz lifecycle (Setup, InQuiz, Summary) and
// talks to its collaborators through narrow interfaces so storage, rewards
// and speech stay injectable.
package quiz

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"

	"vietger/internal/domain"
	"vietger/internal/platform/speech"
	"vietger/internal/store"
)

// Engine errors
var (
	// ErrNoWords is returned when session start resolves an empty pool or a
	// non-positive requested size. The engine stays in Setup.
	ErrNoWords = errors.New("no words available for session")

	// ErrNoActiveSession is returned when an in-quiz operation is invoked
	// outside the InQuiz stage.
	ErrNoActiveSession = errors.New("no active quiz session")

	// ErrWordNotInSession is returned when a word ID does not belong to the
	// current session pool.
	ErrWordNotInSession = errors.New("word is not part of the current session")
)

// Default speech language tags, overridable via WithLanguages.
const (
	defaultSourceLanguage = "de-DE"
	defaultTargetLanguage = "vi-VN"
)

// WordProvider supplies the word pool for a deck.
type WordProvider interface {
	Words(deckID string) []*domain.Word
}

// Rewarder is invoked exactly once per session when it completes.
type Rewarder interface {
	CompleteSession(ctx context.Context, correctWords, totalWords int) (*domain.SessionRewards, error)
}

// Engine drives one quiz session through its stages. All exported methods
// are safe for concurrent use; mutations are atomic state transitions.
type Engine struct {
	words    WordProvider
	learned  store.LearnedStore
	rewarder Rewarder
	speaker  speech.Speaker
	logger   *slog.Logger

	sourceLanguage string
	targetLanguage string

	mu          sync.Mutex
	stage       domain.Stage
	session     *domain.Session
	revealed    bool
	lastCorrect *bool
	rewards     *domain.SessionRewards
	onChange    []func()
}

// NewEngine creates an engine in the Setup stage. Speaker may be nil to
// disable pronunciation. If logger is nil, a default logger will be used.
func NewEngine(
	words WordProvider,
	learned store.LearnedStore,
	rewarder Rewarder,
	speaker speech.Speaker,
	logger *slog.Logger,
) *Engine {
	if words == nil {
		panic("word provider cannot be nil")
	}
	if learned == nil {
		panic("learned store cannot be nil")
	}
	if rewarder == nil {
		panic("rewarder cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		words:          words,
		learned:        learned,
		rewarder:       rewarder,
		speaker:        speaker,
		logger:         logger.With(slog.String("component", "quiz_engine")),
		sourceLanguage: defaultSourceLanguage,
		targetLanguage: defaultTargetLanguage,
		stage:          domain.StageSetup,
	}
}

// WithLanguages overrides the speech language tags.
func (e *Engine) WithLanguages(source, target string) *Engine {
	e.sourceLanguage = source
	e.targetLanguage = target
	return e
}

// OnChange registers a callback invoked after every state transition.
// Callbacks run outside the engine lock and may read State.
func (e *Engine) OnChange(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = append(e.onChange, fn)
}

// Start begins a session over the deck named in config. The pool is the
// deck's unlearned words, falling back to the full deck when everything is
// learned, shuffled and truncated to config.Size unless UseAllWords.
// Returns ErrNoWords (stage stays Setup) when the pool is empty or the
// requested size is not positive.
func (e *Engine) Start(ctx context.Context, config domain.QuizConfig) error {
	if !config.Direction.IsValid() {
		return domain.ErrInvalidDirection
	}

	pool := e.buildPool(ctx, config.Deck)
	if len(pool) == 0 {
		return ErrNoWords
	}
	shuffle(pool)
	if !config.UseAllWords {
		if config.Size <= 0 {
			return ErrNoWords
		}
		if config.Size < len(pool) {
			pool = pool[:config.Size]
		}
	}

	e.begin(config, pool)
	e.logger.Info("quiz session started",
		slog.String("deck", config.Deck),
		slog.String("direction", string(config.Direction)),
		slog.Int("pool_size", len(pool)))
	return nil
}

// StartReview begins a session over exactly the supplied words, shuffled.
// Typically seeded with the prior session's mistakes.
func (e *Engine) StartReview(_ context.Context, config domain.QuizConfig, words []*domain.Word) error {
	if !config.Direction.IsValid() {
		return domain.ErrInvalidDirection
	}
	if len(words) == 0 {
		return ErrNoWords
	}

	pool := make([]*domain.Word, len(words))
	copy(pool, words)
	shuffle(pool)

	e.begin(config, pool)
	e.logger.Info("review session started",
		slog.String("deck", config.Deck),
		slog.Int("pool_size", len(pool)))
	return nil
}

// Evaluate runs the answer matcher against the current word. A correct
// answer records the word, reveals the answer and persists it as learned;
// an incorrect answer changes nothing beyond the reported result.
// Re-evaluating the same word is idempotent.
func (e *Engine) Evaluate(ctx context.Context, answer string) (bool, error) {
	e.mu.Lock()
	current := e.currentLocked()
	if current == nil {
		e.mu.Unlock()
		return false, ErrNoActiveSession
	}

	correct := IsCorrect(answer, current, e.session.Config.Direction)
	lc := correct
	e.lastCorrect = &lc
	if correct {
		e.session.CorrectIDs[current.ID] = struct{}{}
		e.revealed = true
	}
	deck := e.session.Config.Deck
	e.mu.Unlock()

	if correct {
		e.persistLearned(ctx, deck, current.ID)
	}
	e.notify()
	return correct, nil
}

// Reveal uncovers the answer for the current word without evaluating.
func (e *Engine) Reveal() error {
	e.mu.Lock()
	if e.currentLocked() == nil {
		e.mu.Unlock()
		return ErrNoActiveSession
	}
	e.revealed = true
	e.mu.Unlock()

	e.notify()
	return nil
}

// MarkLearned records a pool word as correct and persists it as learned
// without running the matcher. This is the "I already know this" affordance;
// the word need not have been seen yet.
func (e *Engine) MarkLearned(ctx context.Context, wordID string) error {
	e.mu.Lock()
	if e.stage != domain.StageInQuiz {
		e.mu.Unlock()
		return ErrNoActiveSession
	}

	var found bool
	for _, w := range e.session.Words {
		if w.ID == wordID {
			found = true
			break
		}
	}
	if !found {
		e.mu.Unlock()
		return ErrWordNotInSession
	}

	e.session.CorrectIDs[wordID] = struct{}{}
	deck := e.session.Config.Deck
	e.mu.Unlock()

	e.persistLearned(ctx, deck, wordID)
	e.notify()
	return nil
}

// Advance moves to the next word, or completes the session when the current
// word is the last one.
func (e *Engine) Advance(ctx context.Context) error {
	e.mu.Lock()
	if e.stage != domain.StageInQuiz {
		e.mu.Unlock()
		return ErrNoActiveSession
	}

	if e.session.CurrentIndex+1 < len(e.session.Words) {
		e.session.CurrentIndex++
		e.session.SeenIDs[e.session.Words[e.session.CurrentIndex].ID] = struct{}{}
		e.revealed = false
		e.lastCorrect = nil
		e.mu.Unlock()
	} else {
		e.finishLocked(ctx)
		e.mu.Unlock()
	}

	e.notify()
	return nil
}

// GoBack moves to the previous word. Saturating: a no-op at index zero.
func (e *Engine) GoBack() error {
	e.mu.Lock()
	if e.stage != domain.StageInQuiz {
		e.mu.Unlock()
		return ErrNoActiveSession
	}

	if e.session.CurrentIndex > 0 {
		e.session.CurrentIndex--
		e.revealed = false
		e.lastCorrect = nil
	}
	e.mu.Unlock()

	e.notify()
	return nil
}

// Complete ends the session early, awarding rewards for whatever was
// answered so far, and moves to Summary.
func (e *Engine) Complete(ctx context.Context) error {
	e.mu.Lock()
	if e.stage != domain.StageInQuiz {
		e.mu.Unlock()
		return ErrNoActiveSession
	}
	e.finishLocked(ctx)
	e.mu.Unlock()

	e.notify()
	return nil
}

// Reset abandons any in-progress session and returns to Setup.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.stage = domain.StageSetup
	e.session = nil
	e.revealed = false
	e.lastCorrect = nil
	e.rewards = nil
	e.mu.Unlock()

	e.notify()
}

// Speak pronounces the current word's prompt or answer side. Best-effort:
// speech failures are logged and never affect session state.
func (e *Engine) Speak(ctx context.Context, promptSide bool) error {
	e.mu.Lock()
	current := e.currentLocked()
	if current == nil {
		e.mu.Unlock()
		return ErrNoActiveSession
	}
	direction := e.session.Config.Direction
	e.mu.Unlock()

	if e.speaker == nil {
		return nil
	}

	sourceSide := direction.IsSourceToTarget() == promptSide
	text := current.Target.Canonical
	language := e.targetLanguage
	if sourceSide {
		text = current.Source.Canonical
		language = e.sourceLanguage
	}

	if err := e.speaker.Speak(ctx, text, language); err != nil {
		e.logger.Warn("speech failed",
			slog.String("error", err.Error()),
			slog.String("text", text))
	}
	return nil
}

// Snapshot is a consistent read of the engine state.
type Snapshot struct {
	Stage        domain.Stage
	Config       *domain.QuizConfig
	CurrentIndex int
	TotalWords   int
	Current      *domain.Word
	Revealed     bool
	LastCorrect  *bool
	Progress     float64
	Accuracy     float64
	CorrectCount int
	SeenCount    int
	Rewards      *domain.SessionRewards
	Mistakes     []*domain.Word
}

// State returns a snapshot of the current engine state. Mistakes lists the
// pool words not answered correctly, for seeding a review round.
func (e *Engine) State() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{Stage: e.stage}
	if e.session == nil {
		return snap
	}

	config := e.session.Config
	snap.Config = &config
	snap.CurrentIndex = e.session.CurrentIndex
	snap.TotalWords = len(e.session.Words)
	snap.Current = e.session.Current()
	snap.Revealed = e.revealed
	snap.LastCorrect = e.lastCorrect
	snap.Progress = e.session.Progress()
	snap.Accuracy = e.session.Accuracy()
	snap.CorrectCount = len(e.session.CorrectIDs)
	snap.SeenCount = len(e.session.SeenIDs)
	snap.Rewards = e.rewards
	for _, w := range e.session.Words {
		if _, ok := e.session.CorrectIDs[w.ID]; !ok {
			snap.Mistakes = append(snap.Mistakes, w)
		}
	}
	return snap
}

// buildPool resolves the session pool: the deck's unlearned words, or the
// full deck when the unlearned set is empty. A failing learned-store read is
// treated as an empty learned set.
func (e *Engine) buildPool(ctx context.Context, deckID string) []*domain.Word {
	all := e.words.Words(deckID)

	learned, err := e.learned.GetLearned(ctx, deckID)
	if err != nil {
		e.logger.Warn("failed to load learned set, using full deck",
			slog.String("error", err.Error()),
			slog.String("deck", deckID))
		learned = nil
	}

	unlearned := make([]*domain.Word, 0, len(all))
	for _, w := range all {
		if _, ok := learned[w.ID]; !ok {
			unlearned = append(unlearned, w)
		}
	}
	if len(unlearned) == 0 {
		unlearned = append(unlearned, all...)
	}
	return unlearned
}

// begin installs a fresh session over the pool and enters InQuiz.
func (e *Engine) begin(config domain.QuizConfig, pool []*domain.Word) {
	e.mu.Lock()
	e.session = domain.NewSession(config, pool)
	e.session.SeenIDs[pool[0].ID] = struct{}{}
	e.stage = domain.StageInQuiz
	e.revealed = false
	e.lastCorrect = nil
	e.rewards = nil
	e.mu.Unlock()

	e.notify()
}

// finishLocked transitions to Summary, invoking the rewarder at most once
// per session. Caller holds the lock.
func (e *Engine) finishLocked(ctx context.Context) {
	if e.rewards == nil {
		rewards, err := e.rewarder.CompleteSession(
			ctx,
			len(e.session.CorrectIDs),
			len(e.session.Words),
		)
		if err != nil {
			e.logger.Warn("failed to compute session rewards",
				slog.String("error", err.Error()))
		} else {
			e.rewards = rewards
		}
	}
	e.stage = domain.StageSummary
}

// persistLearned is a best-effort write; in-memory session state stays
// authoritative when it fails.
func (e *Engine) persistLearned(ctx context.Context, deckID, wordID string) {
	if err := e.learned.SetLearned(ctx, deckID, wordID, true); err != nil {
		e.logger.Warn("failed to persist learned word",
			slog.String("error", err.Error()),
			slog.String("deck", deckID),
			slog.String("word_id", wordID))
	}
}

// currentLocked returns the current word when in quiz, nil otherwise.
// Caller holds the lock.
func (e *Engine) currentLocked() *domain.Word {
	if e.stage != domain.StageInQuiz || e.session == nil {
		return nil
	}
	return e.session.Current()
}

func (e *Engine) notify() {
	e.mu.Lock()
	callbacks := make([]func(), len(e.onChange))
	copy(callbacks, e.onChange)
	e.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

func shuffle(words []*domain.Word) {
	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}
