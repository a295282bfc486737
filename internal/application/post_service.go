package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/community-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/community-blog-api/internal/domain/repository"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("caller does not own this post")
)

const (
	defaultTake = 10
)

// PostService applies ownership rules and builds list filters over the
// post repository.
type PostService struct {
	Posts  repo.PostRepository
	Logger *logrus.Logger
}

func NewPostService(posts repo.PostRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Logger: logger}
}

type CreatePostInput struct {
	Title    string
	Content  string
	Category entity.Category
}

// ListParams mirrors PostFilter with pagination defaults applied by FindAll.
type ListParams struct {
	Category   *entity.Category
	AuthorID   *int64
	SearchTerm string
	Skip       int
	Take       int
}

type ListMetadata struct {
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Take  int   `json:"take"`
}

type ListResult struct {
	Posts    []entity.Post `json:"posts"`
	Metadata ListMetadata  `json:"metadata"`
}

func (s *PostService) Create(ctx context.Context, authorID int64, in CreatePostInput) (*entity.Post, error) {
	p := &entity.Post{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		AuthorID: authorID,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// FindAll returns one page matching the filter plus the total count so
// callers can compute page numbers.
func (s *PostService) FindAll(ctx context.Context, params ListParams) (*ListResult, error) {
	if params.Take <= 0 {
		params.Take = defaultTake
	}
	if params.Skip < 0 {
		params.Skip = 0
	}

	posts, total, err := s.Posts.List(ctx, repo.PostFilter{
		Category:   params.Category,
		AuthorID:   params.AuthorID,
		SearchTerm: params.SearchTerm,
		Skip:       params.Skip,
		Take:       params.Take,
	})
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Posts:    posts,
		Metadata: ListMetadata{Total: total, Skip: params.Skip, Take: params.Take},
	}, nil
}

func (s *PostService) FindOne(ctx context.Context, id int64) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

type UpdatePostInput struct {
	Title    *string
	Content  *string
	Category *entity.Category
}

// Update applies only the provided fields after checking ownership against
// a fresh read of the post's author. The read-then-write window is accepted;
// concurrent writers resolve last-write-wins.
func (s *PostService) Update(ctx context.Context, id, callerID int64, in UpdatePostInput) (*entity.Post, error) {
	if err := s.authorize(ctx, id, callerID); err != nil {
		return nil, err
	}

	err := s.Posts.Update(ctx, id, repo.PostPatch{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return s.FindOne(ctx, id)
}

func (s *PostService) Remove(ctx context.Context, id, callerID int64) error {
	if err := s.authorize(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.Posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

func (s *PostService) ByCategory(ctx context.Context, c entity.Category) ([]entity.Post, error) {
	return s.Posts.ListByCategory(ctx, c)
}

func (s *PostService) CategoryStats(ctx context.Context) ([]entity.CategoryStat, error) {
	return s.Posts.CategoryStats(ctx)
}

func (s *PostService) authorize(ctx context.Context, id, callerID int64) error {
	authorID, err := s.Posts.GetAuthorID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if authorID != callerID {
		return ErrNotPostOwner
	}
	return nil
}
