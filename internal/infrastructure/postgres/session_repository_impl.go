package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/community-blog-api/internal/domain/entity"
	"github.com/oksasatya/community-blog-api/internal/domain/repository"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, s *entity.Session) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sessions (user_id, token, active)
		VALUES ($1, $2, true)
		RETURNING id, active, created_at
	`, s.UserID, s.Token)

	return row.Scan(&s.ID, &s.Active, &s.CreatedAt)
}

func (r *SessionRepository) DeleteActiveByUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM sessions
		WHERE user_id = $1 AND active = true
	`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
