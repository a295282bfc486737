package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/community-blog-api/internal/domain/entity"
	"github.com/oksasatya/community-blog-api/internal/domain/repository"
)

const postColumns = `
	p.id, p.title, p.content, p.category, p.author_id, p.created_at, p.updated_at,
	u.username,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count`

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, category, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Content, p.Category, p.AuthorID)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}

	// Join the author projection for the response.
	row = r.pool.QueryRow(ctx, `SELECT username FROM users WHERE id = $1`, p.AuthorID)
	if err := row.Scan(&p.Author.Username); err != nil {
		return err
	}
	p.Author.ID = p.AuthorID
	p.Comments = []entity.Comment{}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}
	row := r.pool.QueryRow(ctx, `
		SELECT`+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, id)

	if err := scanPost(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	comments, err := r.loadComments(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Comments = comments
	return p, nil
}

func (r *PostRepository) GetAuthorID(ctx context.Context, id int64) (int64, error) {
	var authorID int64
	row := r.pool.QueryRow(ctx, `SELECT author_id FROM posts WHERE id = $1`, id)
	if err := row.Scan(&authorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		return 0, err
	}
	return authorID, nil
}

// buildFilter translates a PostFilter into WHERE conditions and args.
func buildFilter(f repository.PostFilter) (string, []any) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if f.Category != nil {
		args = append(args, *f.Category)
		conds = append(conds, fmt.Sprintf("p.category = $%d", len(args)))
	}
	if f.AuthorID != nil {
		args = append(args, *f.AuthorID)
		conds = append(conds, fmt.Sprintf("p.author_id = $%d", len(args)))
	}
	if f.SearchTerm != "" {
		args = append(args, "%"+f.SearchTerm+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", n, n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostRepository) List(ctx context.Context, f repository.PostFilter) ([]entity.Post, int64, error) {
	where, args := buildFilter(f)

	// Total matches the filter independently of pagination.
	var total int64
	row := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts p`+where, args...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	pageArgs := append(args, f.Skip, f.Take)
	q := `
		SELECT` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id` + where + `
		ORDER BY p.created_at DESC
		OFFSET $` + fmt.Sprint(len(args)+1) + ` LIMIT $` + fmt.Sprint(len(args)+2)

	rows, err := r.pool.Query(ctx, q, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepository) ListByCategory(ctx context.Context, c entity.Category) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.category = $1
		ORDER BY p.created_at DESC
	`, c)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *PostRepository) Update(ctx context.Context, id int64, patch repository.PostPatch) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Content != nil {
		args = append(args, *patch.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}
	if patch.Category != nil {
		args = append(args, *patch.Category)
		sets = append(sets, fmt.Sprintf("category = $%d", len(args)))
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	q := fmt.Sprintf("UPDATE posts SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) CategoryStats(ctx context.Context) ([]entity.CategoryStat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, COUNT(*)
		FROM posts
		GROUP BY category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]entity.CategoryStat, 0, 7)
	for rows.Next() {
		var s entity.CategoryStat
		if err := rows.Scan(&s.Category, &s.PostCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *PostRepository) loadComments(ctx context.Context, postID int64) ([]entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.content, c.post_id, c.author_id, c.created_at, c.updated_at, u.name
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]entity.Comment, 0)
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.PostID, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt, &c.Author.Name); err != nil {
			return nil, err
		}
		c.Author.ID = c.AuthorID
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func scanPost(row pgx.Row, p *entity.Post) error {
	if err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.Category, &p.AuthorID,
		&p.CreatedAt, &p.UpdatedAt, &p.Author.Username, &p.CommentCount,
	); err != nil {
		return err
	}
	p.Author.ID = p.AuthorID
	return nil
}

func collectPosts(rows pgx.Rows) ([]entity.Post, error) {
	posts := make([]entity.Post, 0)
	for rows.Next() {
		var p entity.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

var _ repository.PostRepository = (*PostRepository)(nil)
