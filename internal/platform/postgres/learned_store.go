package postgres

import (
	"context"
	"log/slog"

	"vietger/internal/platform/logger"
	"vietger/internal/store"
)

// PostgresLearnedStore implements the store.LearnedStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLearnedStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLearnedStore creates a new PostgreSQL implementation of the LearnedStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresLearnedStore(db store.DBTX, logger *slog.Logger) *PostgresLearnedStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLearnedStore{
		db:     db,
		logger: logger.With(slog.String("component", "learned_store")),
	}
}

// Ensure PostgresLearnedStore implements store.LearnedStore interface
var _ store.LearnedStore = (*PostgresLearnedStore)(nil)

// IsLearned implements store.LearnedStore.IsLearned
func (s *PostgresLearnedStore) IsLearned(ctx context.Context, deckID, wordID string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM learned_words WHERE deck_id = $1 AND word_id = $2
		)
	`
	var learned bool
	if err := s.db.QueryRowContext(ctx, query, deckID, wordID).Scan(&learned); err != nil {
		log.Error("failed to check learned word",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID),
			slog.String("word_id", wordID))
		return false, MapError(err)
	}
	return learned, nil
}

// SetLearned implements store.LearnedStore.SetLearned
// Marking an already-learned word (or clearing an unknown one) is a no-op,
// so the write is idempotent for callers that retry.
func (s *PostgresLearnedStore) SetLearned(
	ctx context.Context,
	deckID, wordID string,
	learned bool,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var query string
	if learned {
		query = `
			INSERT INTO learned_words (deck_id, word_id)
			VALUES ($1, $2)
			ON CONFLICT (deck_id, word_id) DO NOTHING
		`
	} else {
		query = `
			DELETE FROM learned_words WHERE deck_id = $1 AND word_id = $2
		`
	}

	if _, err := s.db.ExecContext(ctx, query, deckID, wordID); err != nil {
		log.Error("failed to update learned word",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID),
			slog.String("word_id", wordID),
			slog.Bool("learned", learned))
		return MapError(err)
	}

	log.Debug("learned word updated",
		slog.String("deck_id", deckID),
		slog.String("word_id", wordID),
		slog.Bool("learned", learned))
	return nil
}

// GetLearned implements store.LearnedStore.GetLearned
func (s *PostgresLearnedStore) GetLearned(
	ctx context.Context,
	deckID string,
) (map[string]struct{}, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT word_id FROM learned_words WHERE deck_id = $1
	`
	rows, err := s.db.QueryContext(ctx, query, deckID)
	if err != nil {
		log.Error("failed to query learned words",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	learned := make(map[string]struct{})
	for rows.Next() {
		var wordID string
		if err := rows.Scan(&wordID); err != nil {
			log.Error("failed to scan learned word row",
				slog.String("error", err.Error()),
				slog.String("deck_id", deckID))
			return nil, MapError(err)
		}
		learned[wordID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return learned, nil
}

// ResetLearned implements store.LearnedStore.ResetLearned
func (s *PostgresLearnedStore) ResetLearned(ctx context.Context, deckID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM learned_words WHERE deck_id = $1
	`
	result, err := s.db.ExecContext(ctx, query, deckID)
	if err != nil {
		log.Error("failed to reset learned words",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID))
		return MapError(err)
	}

	if removed, err := result.RowsAffected(); err == nil {
		log.Info("learned words reset",
			slog.String("deck_id", deckID),
			slog.Int64("removed", removed))
	}
	return nil
}
