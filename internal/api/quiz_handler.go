package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vietger/internal/api/shared"
	"vietger/internal/catalog"
	"vietger/internal/domain"
	"vietger/internal/platform/speech"
	"vietger/internal/quiz"
	"vietger/internal/store"
)

// QuizHandler exposes the session engine over HTTP. Each started session
// gets its own engine, tracked in the registry under a generated ID.
type QuizHandler struct {
	catalog  *catalog.Catalog
	learned  store.LearnedStore
	rewarder quiz.Rewarder
	speaker  speech.Speaker
	registry *quiz.Registry
	logger   *slog.Logger

	sourceLanguage string
	targetLanguage string
}

// NewQuizHandler creates a new quiz handler.
// If logger is nil, a default logger will be used.
func NewQuizHandler(
	cat *catalog.Catalog,
	learned store.LearnedStore,
	rewarder quiz.Rewarder,
	speaker speech.Speaker,
	registry *quiz.Registry,
	sourceLanguage, targetLanguage string,
	logger *slog.Logger,
) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		catalog:        cat,
		learned:        learned,
		rewarder:       rewarder,
		speaker:        speaker,
		registry:       registry,
		logger:         logger.With(slog.String("component", "quiz_handler")),
		sourceLanguage: sourceLanguage,
		targetLanguage: targetLanguage,
	}
}

// StartSession handles POST /sessions.
// Responds 409 when the deck resolves to an empty pool.
func (h *QuizHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if h.catalog.Deck(req.Deck) == nil {
		respondWithMappedError(w, r, catalog.ErrDeckNotFound)
		return
	}

	config := domain.QuizConfig{
		Deck:        req.Deck,
		Direction:   domain.Direction(req.Direction),
		Size:        req.Size,
		UseAllWords: req.UseAllWords,
	}

	engine := quiz.NewEngine(h.catalog, h.learned, h.rewarder, h.speaker, h.logger)
	if h.sourceLanguage != "" && h.targetLanguage != "" {
		engine.WithLanguages(h.sourceLanguage, h.targetLanguage)
	}
	if err := engine.Start(r.Context(), config); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	sessionID := h.registry.Add(engine)
	shared.RespondWithJSON(w, r, http.StatusCreated, newSessionResponse(sessionID, engine.State()))
}

// ReviewSession handles POST /sessions/{sessionID}/review.
// It restarts the session over the words missed in the previous round.
func (h *QuizHandler) ReviewSession(w http.ResponseWriter, r *http.Request) {
	sessionID, engine, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	var req ReviewSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	snap := engine.State()
	if snap.Stage != domain.StageSummary || snap.Config == nil {
		respondWithMappedError(w, r, quiz.ErrNoActiveSession)
		return
	}

	config := *snap.Config
	config.Size = len(snap.Mistakes)
	config.UseAllWords = true
	if req.Direction != "" {
		config.Direction = domain.Direction(req.Direction)
	}

	if err := engine.StartReview(r.Context(), config, snap.Mistakes); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newSessionResponse(sessionID, engine.State()))
}

// GetSession handles GET /sessions/{sessionID}.
func (h *QuizHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, engine, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newSessionResponse(sessionID, engine.State()))
}

// Answer handles POST /sessions/{sessionID}/answer.
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sessionID, engine, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	correct, err := engine.Evaluate(r.Context(), req.Answer)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, AnswerResponse{
		Correct: correct,
		Session: newSessionResponse(sessionID, engine.State()),
	})
}

// Reveal handles POST /sessions/{sessionID}/reveal.
func (h *QuizHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(e *quiz.Engine) error { return e.Reveal() })
}

// Advance handles POST /sessions/{sessionID}/advance.
func (h *QuizHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(e *quiz.Engine) error { return e.Advance(r.Context()) })
}

// GoBack handles POST /sessions/{sessionID}/back.
func (h *QuizHandler) GoBack(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(e *quiz.Engine) error { return e.GoBack() })
}

// Complete handles POST /sessions/{sessionID}/complete, the early-exit path.
func (h *QuizHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(e *quiz.Engine) error { return e.Complete(r.Context()) })
}

// MarkLearned handles POST /sessions/{sessionID}/learned.
func (h *QuizHandler) MarkLearned(w http.ResponseWriter, r *http.Request) {
	sessionID, engine, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	var req MarkLearnedRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := engine.MarkLearned(r.Context(), req.WordID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newSessionResponse(sessionID, engine.State()))
}

// Speak handles POST /sessions/{sessionID}/speak. Best-effort.
func (h *QuizHandler) Speak(w http.ResponseWriter, r *http.Request) {
	_, engine, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	var req SpeakRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := engine.Speak(r.Context(), req.PromptSide); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSession handles DELETE /sessions/{sessionID}. The session is reset
// and forgotten.
func (h *QuizHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if engine, ok := h.registry.Get(sessionID); ok {
		engine.Reset()
		h.registry.Remove(sessionID)
	}
	w.WriteHeader(http.StatusNoContent)
}

// transition runs a navigation operation and responds with the new state.
func (h *QuizHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(*quiz.Engine) error,
) {
	sessionID, engine, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}
	if err := op(engine); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newSessionResponse(sessionID, engine.State()))
}

// sessionFromPath resolves the engine for the sessionID path parameter,
// writing a 404 when it is unknown.
func (h *QuizHandler) sessionFromPath(
	w http.ResponseWriter,
	r *http.Request,
) (string, *quiz.Engine, bool) {
	sessionID := chi.URLParam(r, "sessionID")
	engine, ok := h.registry.Get(sessionID)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Session not found")
		return "", nil, false
	}
	return sessionID, engine, true
}
