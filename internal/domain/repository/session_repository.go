package repository

import (
	"context"

	"github.com/oksasatya/community-blog-api/internal/domain/entity"
)

// SessionRepository tracks issued sign-in tokens for logout bookkeeping.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
	// DeleteActiveByUser removes every active session row for the user and
	// returns the number of rows removed. Removing zero rows is not an error.
	DeleteActiveByUser(ctx context.Context, userID int64) (int64, error)
}
