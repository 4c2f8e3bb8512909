package post

import (
	"context"
	"database/sql"
	"errors"

	"graphql-service/internal/db"
	"graphql-service/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	Create(ctx context.Context, input CreatePostInput) (*Post, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*Post, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListPosts"),
	)

	const q = `
		SELECT id, title, content, author_id
		FROM posts
		ORDER BY created_at ASC, id ASC
	`

	posts, err := r.query(ctx, q)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

func (r *repository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*Post, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListPostsByAuthor"),
		zap.String("author_id", authorID.String()),
	)

	const q = `
		SELECT id, title, content, author_id
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at ASC, id ASC
	`

	posts, err := r.query(ctx, q, authorID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetPost"),
		zap.String("post_id", id.String()),
	)

	const q = `
		SELECT id, title, content, author_id
		FROM posts
		WHERE id = $1
	`

	var p Post
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("post not found")
		return nil, ErrPostNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, input CreatePostInput) (*Post, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreatePost"),
		zap.String("author_id", input.AuthorID.String()),
	)

	const q = `
		INSERT INTO posts (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, author_id
	`

	var p Post
	err := r.db.QueryRowContext(ctx, q, input.Title, input.Content, input.AuthorID).
		Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID)
	if db.IsForeignKeyViolation(err) {
		log.Info("author does not exist")
		return nil, ErrAuthorNotFound
	}
	if err != nil {
		log.Error("failed to insert post", zap.Error(err))
		return nil, err
	}

	log.Info("post created", zap.String("post_id", p.ID.String()))
	return &p, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*Post, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdatePost"),
		zap.String("post_id", id.String()),
	)

	const q = `
		UPDATE posts
		SET title = COALESCE($2, title),
			content = COALESCE($3, content)
		WHERE id = $1
		RETURNING id, title, content, author_id
	`

	var p Post
	err := r.db.QueryRowContext(ctx, q, id, input.Title, input.Content).
		Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("post not found")
		return nil, ErrPostNotFound
	}
	if err != nil {
		log.Error("failed to update post", zap.Error(err))
		return nil, err
	}

	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeletePost"),
		zap.String("post_id", id.String()),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete post", zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		log.Info("post not found")
		return ErrPostNotFound
	}

	return nil
}

func (r *repository) query(ctx context.Context, q string, args ...interface{}) ([]*Post, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*Post, 0)
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}

	return posts, rows.Err()
}
