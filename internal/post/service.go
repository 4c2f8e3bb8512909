package post

import (
	"context"

	"graphql-service/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*Post, error)
	Get(ctx context.Context, id uuid.UUID) (*Post, error)
	Create(ctx context.Context, input CreatePostInput) (*Post, error)
	Change(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Post, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*Post, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input CreatePostInput) (*Post, error) {
	p, err := s.repo.Create(ctx, input)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to create post",
			zap.String("layer", "service"),
			zap.String("author_id", input.AuthorID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return p, nil
}

func (s *service) Change(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*Post, error) {
	p, err := s.repo.Update(ctx, id, input)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to change post",
			zap.String("layer", "service"),
			zap.String("post_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
