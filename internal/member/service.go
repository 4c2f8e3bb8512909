package member

import (
	"context"

	"graphql-service/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*MemberType, error)
	Get(ctx context.Context, id ID) (*MemberType, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*MemberType, error) {
	return s.repo.List(ctx)
}

// Get rejects ids outside the known tiers before touching the database.
func (s *service) Get(ctx context.Context, id ID) (*MemberType, error) {
	if !id.Valid() {
		logger.FromCtx(ctx).Warn("invalid member type id",
			zap.String("layer", "service"),
			zap.String("member_type_id", string(id)),
		)
		return nil, ErrInvalidMemberType
	}
	return s.repo.GetByID(ctx, id)
}
