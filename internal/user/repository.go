package user

import (
	"context"
	"database/sql"
	"errors"

	"graphql-service/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, input CreateUserInput) (*User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListSubscribers(ctx context.Context, authorID uuid.UUID) ([]*User, error)
	ListSubscriptions(ctx context.Context, subscriberID uuid.UUID) ([]*User, error)
	Subscribe(ctx context.Context, subscriberID, authorID uuid.UUID) error
	Unsubscribe(ctx context.Context, subscriberID, authorID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListUsers"),
	)

	const q = `
		SELECT id, name, balance
		FROM users
		ORDER BY created_at ASC, id ASC
	`

	users, err := r.query(ctx, q)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetUser"),
		zap.String("user_id", id.String()),
	)

	const q = `
		SELECT id, name, balance
		FROM users
		WHERE id = $1
	`

	var u User
	err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &u.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("user not found")
		return nil, ErrUserNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}

	return &u, nil
}

func (r *repository) Create(ctx context.Context, input CreateUserInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateUser"),
	)

	const q = `
		INSERT INTO users (name, balance)
		VALUES ($1, $2)
		RETURNING id, name, balance
	`

	var u User
	err := r.db.QueryRowContext(ctx, q, input.Name, input.Balance).Scan(&u.ID, &u.Name, &u.Balance)
	if err != nil {
		log.Error("failed to insert user", zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.String("user_id", u.ID.String()))
	return &u, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateUser"),
		zap.String("user_id", id.String()),
	)

	// COALESCE keeps the stored value for fields the caller left nil.
	const q = `
		UPDATE users
		SET name = COALESCE($2, name),
			balance = COALESCE($3, balance)
		WHERE id = $1
		RETURNING id, name, balance
	`

	var u User
	err := r.db.QueryRowContext(ctx, q, id, input.Name, input.Balance).Scan(&u.ID, &u.Name, &u.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("user not found")
		return nil, ErrUserNotFound
	}
	if err != nil {
		log.Error("failed to update user", zap.Error(err))
		return nil, err
	}

	return &u, nil
}

// Delete removes the user; profile, posts and subscriptions cascade.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeleteUser"),
		zap.String("user_id", id.String()),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user", zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		log.Info("user not found")
		return ErrUserNotFound
	}

	return nil
}

func (r *repository) query(ctx context.Context, q string, args ...interface{}) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Balance); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}

	return users, rows.Err()
}
