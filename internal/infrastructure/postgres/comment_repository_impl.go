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

const commentColumns = `
	c.id, c.content, c.post_id, c.author_id, c.created_at, c.updated_at, u.name`

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	// postID/authorID are not pre-checked; a dangling reference surfaces
	// as a foreign key violation from the database.
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (content, post_id, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.Content, c.PostID, c.AuthorID)

	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("comment references missing row: %w", err)
		}
		return err
	}

	row = r.pool.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, c.AuthorID)
	if err := row.Scan(&c.Author.Name); err != nil {
		return err
	}
	c.Author.ID = c.AuthorID
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*entity.Comment, error) {
	c := &entity.Comment{}
	row := r.pool.QueryRow(ctx, `
		SELECT`+commentColumns+`
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`, id)

	if err := scanComment(row, c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) List(ctx context.Context, f repository.CommentFilter) ([]entity.Comment, error) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if f.PostID != nil {
		args = append(args, *f.PostID)
		conds = append(conds, fmt.Sprintf("c.post_id = $%d", len(args)))
	}
	if f.AuthorID != nil {
		args = append(args, *f.AuthorID)
		conds = append(conds, fmt.Sprintf("c.author_id = $%d", len(args)))
	}

	q := `
		SELECT` + commentColumns + `
		FROM comments c
		JOIN users u ON u.id = c.author_id`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	if f.NewestFirst {
		q += " ORDER BY c.created_at DESC"
	} else {
		q += " ORDER BY c.id"
	}
	if f.Skip > 0 {
		args = append(args, f.Skip)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	if f.Take > 0 {
		args = append(args, f.Take)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectComments(rows)
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]entity.Comment, error) {
	pid := postID
	return r.List(ctx, repository.CommentFilter{PostID: &pid, NewestFirst: true})
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id int64, content string) (*entity.Comment, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE comments SET content = $1, updated_at = now() WHERE id = $2
	`, content, id)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) (*entity.Comment, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return c, nil
}

func scanComment(row pgx.Row, c *entity.Comment) error {
	if err := row.Scan(
		&c.ID, &c.Content, &c.PostID, &c.AuthorID,
		&c.CreatedAt, &c.UpdatedAt, &c.Author.Name,
	); err != nil {
		return err
	}
	c.Author.ID = c.AuthorID
	return nil
}

func collectComments(rows pgx.Rows) ([]entity.Comment, error) {
	comments := make([]entity.Comment, 0)
	for rows.Next() {
		var c entity.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
