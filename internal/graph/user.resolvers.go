package graph

import (
	"context"
	"errors"

	"graphql-service/internal/logger"
	"graphql-service/internal/profile"
	"graphql-service/internal/user"

	"go.uber.org/zap"
)

type userResolver struct {
	root *Resolver
	u    *user.User
}

func (r *userResolver) ID() UUID {
	return toUUID(r.u.ID)
}

func (r *userResolver) Name() string {
	return r.u.Name
}

func (r *userResolver) Balance() float64 {
	return r.u.Balance
}

// Profile is null for users that never created one.
func (r *userResolver) Profile(ctx context.Context) (*profileResolver, error) {
	p, err := r.root.ProfileSvc.GetByUser(ctx, r.u.ID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profileResolver{root: r.root, p: p}, nil
}

func (r *userResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	list, err := r.root.PostSvc.ListByAuthor(ctx, r.u.ID)
	if err != nil {
		return nil, err
	}
	return postResolvers(list), nil
}

func (r *userResolver) UserSubscribedTo(ctx context.Context) ([]*userResolver, error) {
	list, err := r.root.UserSvc.SubscribedTo(ctx, r.u.ID)
	if err != nil {
		return nil, err
	}
	return r.root.userResolvers(list), nil
}

func (r *userResolver) SubscribedToUser(ctx context.Context) ([]*userResolver, error) {
	list, err := r.root.UserSvc.Subscribers(ctx, r.u.ID)
	if err != nil {
		return nil, err
	}
	return r.root.userResolvers(list), nil
}

func (r *Resolver) userResolvers(list []*user.User) []*userResolver {
	res := make([]*userResolver, 0, len(list))
	for _, u := range list {
		res = append(res, &userResolver{root: r, u: u})
	}
	return res
}

type createUserInput struct {
	Name    string
	Balance float64
}

type changeUserInput struct {
	Name    *string
	Balance *float64
}

func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	list, err := r.UserSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.userResolvers(list), nil
}

func (r *Resolver) User(ctx context.Context, args struct{ ID UUID }) (*userResolver, error) {
	u, err := r.UserSvc.Get(ctx, args.ID.UUID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &userResolver{root: r, u: u}, nil
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Dto createUserInput }) (*userResolver, error) {
	u, err := r.UserSvc.Create(ctx, user.CreateUserInput{
		Name:    args.Dto.Name,
		Balance: args.Dto.Balance,
	})
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("user created", zap.String("user_id", u.ID.String()))
	return &userResolver{root: r, u: u}, nil
}

func (r *Resolver) ChangeUser(ctx context.Context, args struct {
	ID  UUID
	Dto changeUserInput
}) (*userResolver, error) {
	u, err := r.UserSvc.Change(ctx, args.ID.UUID, user.UpdateUserInput{
		Name:    args.Dto.Name,
		Balance: args.Dto.Balance,
	})
	if err != nil {
		return nil, err
	}
	return &userResolver{root: r, u: u}, nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID UUID }) (UUID, error) {
	if err := r.UserSvc.Delete(ctx, args.ID.UUID); err != nil {
		return UUID{}, err
	}
	return args.ID, nil
}

type subscriptionArgs struct {
	UserID   UUID
	AuthorID UUID
}

func (r *Resolver) SubscribeTo(ctx context.Context, args subscriptionArgs) (*userResolver, error) {
	u, err := r.UserSvc.SubscribeTo(ctx, args.UserID.UUID, args.AuthorID.UUID)
	if err != nil {
		return nil, err
	}
	return &userResolver{root: r, u: u}, nil
}

// UnsubscribeFrom returns the id of the author the user stopped following.
func (r *Resolver) UnsubscribeFrom(ctx context.Context, args subscriptionArgs) (UUID, error) {
	if err := r.UserSvc.UnsubscribeFrom(ctx, args.UserID.UUID, args.AuthorID.UUID); err != nil {
		return UUID{}, err
	}
	return args.AuthorID, nil
}
