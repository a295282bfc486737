package repository

import (
	"context"

	"github.com/oksasatya/community-blog-api/internal/domain/entity"
)

// PostFilter is the conjunctive filter for listing posts. Nil fields are
// ignored; SearchTerm matches title or content case-insensitively.
type PostFilter struct {
	Category   *entity.Category
	AuthorID   *int64
	SearchTerm string
	Skip       int
	Take       int
}

// PostPatch carries the optional fields of a partial post update.
type PostPatch struct {
	Title    *string
	Content  *string
	Category *entity.Category
}

// PostRepository defines post persistence with author and comment projections.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	// GetByID loads a post with its author, comments (newest first, each
	// with author projection) and comment count.
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	// GetAuthorID resolves just the owning author of a post.
	GetAuthorID(ctx context.Context, id int64) (int64, error)
	// List returns one page plus the total count matching the filter,
	// newest first. The count ignores Skip/Take.
	List(ctx context.Context, f PostFilter) ([]entity.Post, int64, error)
	ListByCategory(ctx context.Context, c entity.Category) ([]entity.Post, error)
	Update(ctx context.Context, id int64, patch PostPatch) error
	Delete(ctx context.Context, id int64) error
	CategoryStats(ctx context.Context) ([]entity.CategoryStat, error)
}
