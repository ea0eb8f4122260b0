package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"vietger/internal/api/shared"
	"vietger/internal/domain"
)

// StatsProvider reads the persisted gamification state.
type StatsProvider interface {
	State(ctx context.Context) (*domain.GamificationState, error)
}

// StatsHandler exposes the gamification summary.
type StatsHandler struct {
	stats  StatsProvider
	logger *slog.Logger
}

// NewStatsHandler creates a new stats handler.
// If logger is nil, a default logger will be used.
func NewStatsHandler(stats StatsProvider, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		stats:  stats,
		logger: logger.With(slog.String("component", "stats_handler")),
	}
}

// GetStats handles GET /stats.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	state, err := h.stats.State(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	resp := StatsResponse{
		CurrentStreak: state.CurrentStreak,
		LongestStreak: state.LongestStreak,
		TotalXP:       state.TotalXP,
	}
	if state.LastSessionDate != nil {
		formatted := state.LastSessionDate.UTC().Format(time.RFC3339)
		resp.LastSessionDate = &formatted
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
