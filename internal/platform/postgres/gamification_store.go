package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"vietger/internal/domain"
	"vietger/internal/platform/logger"
	"vietger/internal/store"
)

// gamificationStateID is the primary key of the single gamification state
// row. The table never holds more than one row.
const gamificationStateID = 1

// PostgresGamificationStore implements the store.GamificationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresGamificationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGamificationStore creates a new PostgreSQL implementation of the
// GamificationStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresGamificationStore(db store.DBTX, logger *slog.Logger) *PostgresGamificationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresGamificationStore{
		db:     db,
		logger: logger.With(slog.String("component", "gamification_store")),
	}
}

// Ensure PostgresGamificationStore implements store.GamificationStore interface
var _ store.GamificationStore = (*PostgresGamificationStore)(nil)

// Get implements store.GamificationStore.Get
// A missing row is not an error; it yields a zero-valued state.
func (s *PostgresGamificationStore) Get(ctx context.Context) (*domain.GamificationState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT current_streak, longest_streak, total_xp, last_session_date
		FROM gamification_state
		WHERE id = $1
	`
	var (
		state       domain.GamificationState
		lastSession sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, query, gamificationStateID).Scan(
		&state.CurrentStreak,
		&state.LongestStreak,
		&state.TotalXP,
		&lastSession,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no gamification state persisted yet, returning zero state")
		return &domain.GamificationState{}, nil
	}
	if err != nil {
		log.Error("failed to load gamification state", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if lastSession.Valid {
		t := lastSession.Time.UTC()
		state.LastSessionDate = &t
	}
	return &state, nil
}

// Save implements store.GamificationStore.Save
// It validates the state and upserts the single row.
func (s *PostgresGamificationStore) Save(
	ctx context.Context,
	state *domain.GamificationState,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := state.Validate(); err != nil {
		log.Warn("gamification state validation failed during save",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO gamification_state (id, current_streak, longest_streak, total_xp, last_session_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			total_xp = EXCLUDED.total_xp,
			last_session_date = EXCLUDED.last_session_date
	`
	var lastSession sql.NullTime
	if state.LastSessionDate != nil {
		lastSession = sql.NullTime{Time: state.LastSessionDate.UTC(), Valid: true}
	}

	_, err := s.db.ExecContext(
		ctx,
		query,
		gamificationStateID,
		state.CurrentStreak,
		state.LongestStreak,
		state.TotalXP,
		lastSession,
	)
	if err != nil {
		log.Error("failed to save gamification state", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Debug("gamification state saved",
		slog.Int("current_streak", state.CurrentStreak),
		slog.Int("total_xp", state.TotalXP))
	return nil
}
