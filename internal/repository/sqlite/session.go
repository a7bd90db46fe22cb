package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tigerrentals-client/internal/logger"
	"tigerrentals-client/internal/repository"
)

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Save(ctx context.Context, s *repository.StoredSession) error {
	if s.SavedAt.IsZero() {
		s.SavedAt = time.Now()
	}
	query := `INSERT INTO sessions (id, token, user_id, email, saved_at) VALUES (1, ?, ?, ?, ?)
	          ON CONFLICT(id) DO UPDATE SET token = excluded.token, user_id = excluded.user_id, email = excluded.email, saved_at = excluded.saved_at`
	logger.StorageCall("save_session", query, "user_id", s.UserID)
	res, err := r.db.ExecContext(ctx, query, s.Token, s.UserID, s.Email, s.SavedAt.Unix())
	var rows int64
	if err == nil {
		rows, _ = res.RowsAffected()
	}
	logger.StorageResult("save_session", rows, err)
	return err
}

func (r *sessionRepository) Load(ctx context.Context) (*repository.StoredSession, error) {
	query := `SELECT token, user_id, email, saved_at FROM sessions WHERE id = 1`
	logger.StorageCall("load_session", query)

	var (
		s       repository.StoredSession
		savedAt int64
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&s.Token, &s.UserID, &s.Email, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		logger.StorageResult("load_session", 0, nil)
		return nil, nil
	}
	if err != nil {
		logger.StorageResult("load_session", 0, err)
		return nil, err
	}
	s.SavedAt = time.Unix(savedAt, 0)
	logger.StorageResult("load_session", 1, nil)
	return &s, nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	query := `DELETE FROM sessions`
	logger.StorageCall("clear_session", query)
	res, err := r.db.ExecContext(ctx, query)
	var rows int64
	if err == nil {
		rows, _ = res.RowsAffected()
	}
	logger.StorageResult("clear_session", rows, err)
	return err
}
