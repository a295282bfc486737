package repository

import (
	"context"

	"github.com/oksasatya/community-blog-api/internal/domain/entity"
)

// CommentFilter is the optional criteria for generic comment listings.
type CommentFilter struct {
	PostID   *int64
	AuthorID *int64
	Skip     int
	// Take limits the page size; zero means no limit.
	Take int
	// NewestFirst orders by creation time descending when set.
	NewestFirst bool
}

// CommentRepository defines comment persistence; every read joins the
// author projection {id, name}.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id int64) (*entity.Comment, error)
	List(ctx context.Context, f CommentFilter) ([]entity.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]entity.Comment, error)
	UpdateContent(ctx context.Context, id int64, content string) (*entity.Comment, error)
	// Delete removes the comment and returns the deleted row.
	Delete(ctx context.Context, id int64) (*entity.Comment, error)
}
