package user

import (
	"context"

	"graphql-service/internal/db"
	"graphql-service/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const authorFK = "fk_subscribers_on_authors_author"

// ListSubscribers returns the users subscribed to authorID.
func (r *repository) ListSubscribers(ctx context.Context, authorID uuid.UUID) ([]*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListSubscribers"),
		zap.String("author_id", authorID.String()),
	)

	const q = `
		SELECT u.id, u.name, u.balance
		FROM users u
		INNER JOIN subscribers_on_authors s ON s.subscriber_id = u.id
		WHERE s.author_id = $1
		ORDER BY u.created_at ASC, u.id ASC
	`

	users, err := r.query(ctx, q, authorID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// ListSubscriptions returns the authors subscriberID is subscribed to.
func (r *repository) ListSubscriptions(ctx context.Context, subscriberID uuid.UUID) ([]*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListSubscriptions"),
		zap.String("subscriber_id", subscriberID.String()),
	)

	const q = `
		SELECT u.id, u.name, u.balance
		FROM users u
		INNER JOIN subscribers_on_authors s ON s.author_id = u.id
		WHERE s.subscriber_id = $1
		ORDER BY u.created_at ASC, u.id ASC
	`

	users, err := r.query(ctx, q, subscriberID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (r *repository) Subscribe(ctx context.Context, subscriberID, authorID uuid.UUID) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Subscribe"),
		zap.String("subscriber_id", subscriberID.String()),
		zap.String("author_id", authorID.String()),
	)

	const q = `
		INSERT INTO subscribers_on_authors (subscriber_id, author_id)
		VALUES ($1, $2)
	`

	_, err := r.db.ExecContext(ctx, q, subscriberID, authorID)
	switch {
	case err == nil:
		return nil
	case db.IsUniqueViolation(err):
		log.Info("subscription already exists")
		return ErrAlreadySubscribed
	case db.IsForeignKeyViolation(err):
		log.Info("subscription references a missing user", zap.String("constraint", db.Constraint(err)))
		if db.Constraint(err) == authorFK {
			return ErrAuthorNotFound
		}
		return ErrUserNotFound
	default:
		log.Error("failed to insert subscription", zap.Error(err))
		return err
	}
}

func (r *repository) Unsubscribe(ctx context.Context, subscriberID, authorID uuid.UUID) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Unsubscribe"),
		zap.String("subscriber_id", subscriberID.String()),
		zap.String("author_id", authorID.String()),
	)

	const q = `
		DELETE FROM subscribers_on_authors
		WHERE subscriber_id = $1 AND author_id = $2
	`

	res, err := r.db.ExecContext(ctx, q, subscriberID, authorID)
	if err != nil {
		log.Error("failed to delete subscription", zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		log.Info("subscription not found")
		return ErrSubscriptionNotFound
	}

	return nil
}
