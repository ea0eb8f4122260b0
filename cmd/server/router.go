package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"vietger/internal/api"
	apiMiddleware "vietger/internal/api/middleware"
	"vietger/internal/catalog"
	"vietger/internal/config"
	"vietger/internal/gamification"
	"vietger/internal/platform/speech"
	"vietger/internal/quiz"
	"vietger/internal/store"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func setupRouter(
	cfg *config.Config,
	logger *slog.Logger,
	cat *catalog.Catalog,
	learned store.LearnedStore,
	rewarder *gamification.Service,
	speaker speech.Speaker,
	registry *quiz.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	catalogHandler := api.NewCatalogHandler(cat, learned, logger)
	quizHandler := api.NewQuizHandler(
		cat,
		learned,
		rewarder,
		speaker,
		registry,
		cfg.Speech.SourceLanguage,
		cfg.Speech.TargetLanguage,
		logger,
	)
	statsHandler := api.NewStatsHandler(rewarder, logger)

	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/decks", catalogHandler.ListDecks)
		r.Get("/decks/{deckID}/words", catalogHandler.ListWords)
		r.Get("/decks/{deckID}/words/{wordID}/sentence", catalogHandler.GetSentence)
		r.Put("/decks/{deckID}/words/{wordID}/learned", catalogHandler.SetLearned)
		r.Delete("/decks/{deckID}/learned", catalogHandler.ResetLearned)

		// Quiz session endpoints
		r.Post("/sessions", quizHandler.StartSession)
		r.Get("/sessions/{sessionID}", quizHandler.GetSession)
		r.Post("/sessions/{sessionID}/review", quizHandler.ReviewSession)
		r.Post("/sessions/{sessionID}/answer", quizHandler.Answer)
		r.Post("/sessions/{sessionID}/reveal", quizHandler.Reveal)
		r.Post("/sessions/{sessionID}/advance", quizHandler.Advance)
		r.Post("/sessions/{sessionID}/back", quizHandler.GoBack)
		r.Post("/sessions/{sessionID}/complete", quizHandler.Complete)
		r.Post("/sessions/{sessionID}/learned", quizHandler.MarkLearned)
		r.Post("/sessions/{sessionID}/speak", quizHandler.Speak)
		r.Delete("/sessions/{sessionID}", quizHandler.DeleteSession)

		// Gamification endpoints
		r.Get("/stats", statsHandler.GetStats)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
