package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/community-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/community-blog-api/internal/domain/repository"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentService is thin CRUD over the comment repository. Comment mutation
// deliberately carries no ownership check: any authenticated caller may
// update or delete any comment.
type CommentService struct {
	Comments repo.CommentRepository
	Logger   *logrus.Logger
}

func NewCommentService(comments repo.CommentRepository, logger *logrus.Logger) *CommentService {
	return &CommentService{Comments: comments, Logger: logger}
}

type CreateCommentInput struct {
	Content  string
	PostID   int64
	AuthorID int64
}

func (s *CommentService) ByPostID(ctx context.Context, postID int64) ([]entity.Comment, error) {
	return s.Comments.ListByPost(ctx, postID)
}

func (s *CommentService) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	c, err := s.Comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CommentService) List(ctx context.Context, f repo.CommentFilter) ([]entity.Comment, error) {
	return s.Comments.List(ctx, f)
}

// Create links the comment to an existing post and author by id. The ids
// are not pre-checked; a dangling reference is a storage failure.
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*entity.Comment, error) {
	c := &entity.Comment{
		Content:  in.Content,
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
	}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, id int64, content string) (*entity.Comment, error) {
	c, err := s.Comments.UpdateContent(ctx, id, content)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Remove(ctx context.Context, id int64) (*entity.Comment, error) {
	c, err := s.Comments.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return c, nil
}
