package profile

import (
	"context"

	"graphql-service/internal/logger"
	"graphql-service/internal/member"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Create(ctx context.Context, input CreateProfileInput) (*Profile, error)
	Change(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Profile, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByUser(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Create(ctx context.Context, input CreateProfileInput) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProfile"),
		zap.String("user_id", input.UserID.String()),
	)

	if !input.MemberTypeID.Valid() {
		log.Warn("invalid member type", zap.String("member_type_id", string(input.MemberTypeID)))
		return nil, member.ErrInvalidMemberType
	}

	p, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Warn("failed to create profile", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (s *service) Change(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ChangeProfile"),
		zap.String("profile_id", id.String()),
	)

	if input.MemberTypeID != nil && !input.MemberTypeID.Valid() {
		log.Warn("invalid member type", zap.String("member_type_id", string(*input.MemberTypeID)))
		return nil, member.ErrInvalidMemberType
	}

	p, err := s.repo.Update(ctx, id, input)
	if err != nil {
		log.Warn("failed to change profile", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.FromCtx(ctx).Warn("failed to delete profile",
			zap.String("layer", "service"),
			zap.String("profile_id", id.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}
