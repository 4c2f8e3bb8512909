package user

import (
	"context"

	"graphql-service/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, input CreateUserInput) (*User, error)
	Change(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Subscribers lists the users subscribed to the given author.
	Subscribers(ctx context.Context, authorID uuid.UUID) ([]*User, error)
	// SubscribedTo lists the authors the given user is subscribed to.
	SubscribedTo(ctx context.Context, subscriberID uuid.UUID) ([]*User, error)
	SubscribeTo(ctx context.Context, userID, authorID uuid.UUID) (*User, error)
	UnsubscribeFrom(ctx context.Context, userID, authorID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateUser"),
	)

	u, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return u, nil
}

func (s *service) Change(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ChangeUser"),
		zap.String("user_id", id.String()),
	)

	u, err := s.repo.Update(ctx, id, input)
	if err != nil {
		log.Warn("failed to change user", zap.Error(err))
		return nil, err
	}

	return u, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.FromCtx(ctx).Warn("failed to delete user",
			zap.String("layer", "service"),
			zap.String("user_id", id.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) Subscribers(ctx context.Context, authorID uuid.UUID) ([]*User, error) {
	return s.repo.ListSubscribers(ctx, authorID)
}

func (s *service) SubscribedTo(ctx context.Context, subscriberID uuid.UUID) ([]*User, error) {
	return s.repo.ListSubscriptions(ctx, subscriberID)
}

// SubscribeTo records the subscription and returns the subscriber.
func (s *service) SubscribeTo(ctx context.Context, userID, authorID uuid.UUID) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubscribeTo"),
		zap.String("user_id", userID.String()),
		zap.String("author_id", authorID.String()),
	)

	if err := s.repo.Subscribe(ctx, userID, authorID); err != nil {
		log.Warn("subscribe failed", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		log.Error("failed to load subscriber", zap.Error(err))
		return nil, err
	}

	log.Info("subscribed")
	return u, nil
}

func (s *service) UnsubscribeFrom(ctx context.Context, userID, authorID uuid.UUID) error {
	if err := s.repo.Unsubscribe(ctx, userID, authorID); err != nil {
		logger.FromCtx(ctx).Warn("unsubscribe failed",
			zap.String("layer", "service"),
			zap.String("user_id", userID.String()),
			zap.String("author_id", authorID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}
