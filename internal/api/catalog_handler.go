package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vietger/internal/api/shared"
	"vietger/internal/catalog"
	"vietger/internal/platform/logger"
	"vietger/internal/store"
)

// CatalogHandler exposes deck contents and the per-deck learned sets.
type CatalogHandler struct {
	catalog *catalog.Catalog
	learned store.LearnedStore
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler.
// If logger is nil, a default logger will be used.
func NewCatalogHandler(
	cat *catalog.Catalog,
	learned store.LearnedStore,
	logger *slog.Logger,
) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{
		catalog: cat,
		learned: learned,
		logger:  logger.With(slog.String("component", "catalog_handler")),
	}
}

// ListDecks handles GET /decks.
func (h *CatalogHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks := make([]DeckResponse, 0)
	for _, id := range h.catalog.DeckIDs() {
		decks = append(decks, DeckResponse{
			ID:        id,
			WordCount: len(h.catalog.Words(id)),
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, decks)
}

// ListWords handles GET /decks/{deckID}/words, flagging each word with its
// persisted learned state.
func (h *CatalogHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	if h.catalog.Deck(deckID) == nil {
		respondWithMappedError(w, r, catalog.ErrDeckNotFound)
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	learnedSet, err := h.learned.GetLearned(r.Context(), deckID)
	if err != nil {
		log.Warn("failed to load learned set",
			slog.String("error", err.Error()),
			slog.String("deck", deckID))
		learnedSet = nil
	}

	words := make([]WordResponse, 0)
	for _, word := range h.catalog.Words(deckID) {
		_, isLearned := learnedSet[word.ID]
		words = append(words, WordResponse{
			ID:       word.ID,
			Source:   word.Source,
			Target:   word.Target,
			Category: word.Category,
			Learned:  isLearned,
			Example:  word.Example,
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, words)
}

// GetSentence handles GET /decks/{deckID}/words/{wordID}/sentence.
// A word without an example sentence responds found=false, not an error.
func (h *CatalogHandler) GetSentence(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	wordID := chi.URLParam(r, "wordID")

	word, err := h.catalog.WordByID(deckID, wordID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	sentence, found := h.catalog.Resolve(deckID, word)
	shared.RespondWithJSON(w, r, http.StatusOK, SentenceResponse{
		Found:    found,
		Sentence: sentence,
	})
}

// SetLearned handles PUT /decks/{deckID}/words/{wordID}/learned.
func (h *CatalogHandler) SetLearned(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	wordID := chi.URLParam(r, "wordID")

	if _, err := h.catalog.WordByID(deckID, wordID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	var req SetLearnedRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.learned.SetLearned(r.Context(), deckID, wordID, req.Learned); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetLearned handles DELETE /decks/{deckID}/learned.
func (h *CatalogHandler) ResetLearned(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	if h.catalog.Deck(deckID) == nil {
		respondWithMappedError(w, r, catalog.ErrDeckNotFound)
		return
	}

	if err := h.learned.ResetLearned(r.Context(), deckID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
