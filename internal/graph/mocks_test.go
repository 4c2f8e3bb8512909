package graph

import (
	"context"

	"graphql-service/internal/member"
	"graphql-service/internal/post"
	"graphql-service/internal/profile"
	"graphql-service/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) List(ctx context.Context) ([]*member.MemberType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*member.MemberType), args.Error(1)
}

func (m *MockMemberService) Get(ctx context.Context, id member.ID) (*member.MemberType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.MemberType), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) posts(args mock.Arguments) ([]*post.Post, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*post.Post), args.Error(1)
}

func (m *MockPostService) post(args mock.Arguments) (*post.Post, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*post.Post), args.Error(1)
}

func (m *MockPostService) List(ctx context.Context) ([]*post.Post, error) {
	return m.posts(m.Called(ctx))
}

func (m *MockPostService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*post.Post, error) {
	return m.posts(m.Called(ctx, authorID))
}

func (m *MockPostService) Get(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return m.post(m.Called(ctx, id))
}

func (m *MockPostService) Create(ctx context.Context, input post.CreatePostInput) (*post.Post, error) {
	return m.post(m.Called(ctx, input))
}

func (m *MockPostService) Change(ctx context.Context, id uuid.UUID, input post.UpdatePostInput) (*post.Post, error) {
	return m.post(m.Called(ctx, id, input))
}

func (m *MockPostService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) profile(args mock.Arguments) (*profile.Profile, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileService) List(ctx context.Context) ([]*profile.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profile.Profile), args.Error(1)
}

func (m *MockProfileService) Get(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	return m.profile(m.Called(ctx, id))
}

func (m *MockProfileService) GetByUser(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	return m.profile(m.Called(ctx, userID))
}

func (m *MockProfileService) Create(ctx context.Context, input profile.CreateProfileInput) (*profile.Profile, error) {
	return m.profile(m.Called(ctx, input))
}

func (m *MockProfileService) Change(ctx context.Context, id uuid.UUID, input profile.UpdateProfileInput) (*profile.Profile, error) {
	return m.profile(m.Called(ctx, id, input))
}

func (m *MockProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) users(args mock.Arguments) ([]*user.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockUserService) user(args mock.Arguments) (*user.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]*user.User, error) {
	return m.users(m.Called(ctx))
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserService) Create(ctx context.Context, input user.CreateUserInput) (*user.User, error) {
	return m.user(m.Called(ctx, input))
}

func (m *MockUserService) Change(ctx context.Context, id uuid.UUID, input user.UpdateUserInput) (*user.User, error) {
	return m.user(m.Called(ctx, id, input))
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserService) Subscribers(ctx context.Context, authorID uuid.UUID) ([]*user.User, error) {
	return m.users(m.Called(ctx, authorID))
}

func (m *MockUserService) SubscribedTo(ctx context.Context, subscriberID uuid.UUID) ([]*user.User, error) {
	return m.users(m.Called(ctx, subscriberID))
}

func (m *MockUserService) SubscribeTo(ctx context.Context, userID, authorID uuid.UUID) (*user.User, error) {
	return m.user(m.Called(ctx, userID, authorID))
}

func (m *MockUserService) UnsubscribeFrom(ctx context.Context, userID, authorID uuid.UUID) error {
	return m.Called(ctx, userID, authorID).Error(0)
}

// --- Helpers ---

type mocks struct {
	member  *MockMemberService
	post    *MockPostService
	profile *MockProfileService
	user    *MockUserService
}

func newResolver() (*Resolver, *mocks) {
	m := &mocks{
		member:  new(MockMemberService),
		post:    new(MockPostService),
		profile: new(MockProfileService),
		user:    new(MockUserService),
	}
	return &Resolver{
		MemberSvc:  m.member,
		PostSvc:    m.post,
		ProfileSvc: m.profile,
		UserSvc:    m.user,
	}, m
}
