package graph

import (
	"context"
	"errors"

	"graphql-service/internal/member"
	"graphql-service/internal/profile"
)

type profileResolver struct {
	root *Resolver
	p    *profile.Profile
}

func (r *profileResolver) ID() UUID {
	return toUUID(r.p.ID)
}

func (r *profileResolver) IsMale() bool {
	return r.p.IsMale
}

func (r *profileResolver) YearOfBirth() int32 {
	return r.p.YearOfBirth
}

func (r *profileResolver) UserID() UUID {
	return toUUID(r.p.UserID)
}

func (r *profileResolver) MemberTypeID() string {
	return string(r.p.MemberTypeID)
}

func (r *profileResolver) MemberType(ctx context.Context) (*memberTypeResolver, error) {
	return r.root.memberType(ctx, r.p.MemberTypeID)
}

type createProfileInput struct {
	IsMale       bool
	YearOfBirth  int32
	UserID       UUID
	MemberTypeID string
}

type changeProfileInput struct {
	IsMale       *bool
	YearOfBirth  *int32
	MemberTypeID *string
}

func (r *Resolver) Profiles(ctx context.Context) ([]*profileResolver, error) {
	list, err := r.ProfileSvc.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*profileResolver, 0, len(list))
	for _, p := range list {
		res = append(res, &profileResolver{root: r, p: p})
	}
	return res, nil
}

func (r *Resolver) Profile(ctx context.Context, args struct{ ID UUID }) (*profileResolver, error) {
	p, err := r.ProfileSvc.Get(ctx, args.ID.UUID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profileResolver{root: r, p: p}, nil
}

func (r *Resolver) CreateProfile(ctx context.Context, args struct{ Dto createProfileInput }) (*profileResolver, error) {
	p, err := r.ProfileSvc.Create(ctx, profile.CreateProfileInput{
		IsMale:       args.Dto.IsMale,
		YearOfBirth:  args.Dto.YearOfBirth,
		UserID:       args.Dto.UserID.UUID,
		MemberTypeID: member.ID(args.Dto.MemberTypeID),
	})
	if err != nil {
		return nil, err
	}
	return &profileResolver{root: r, p: p}, nil
}

func (r *Resolver) ChangeProfile(ctx context.Context, args struct {
	ID  UUID
	Dto changeProfileInput
}) (*profileResolver, error) {
	input := profile.UpdateProfileInput{
		IsMale:      args.Dto.IsMale,
		YearOfBirth: args.Dto.YearOfBirth,
	}
	if args.Dto.MemberTypeID != nil {
		id := member.ID(*args.Dto.MemberTypeID)
		input.MemberTypeID = &id
	}

	p, err := r.ProfileSvc.Change(ctx, args.ID.UUID, input)
	if err != nil {
		return nil, err
	}
	return &profileResolver{root: r, p: p}, nil
}

func (r *Resolver) DeleteProfile(ctx context.Context, args struct{ ID UUID }) (UUID, error) {
	if err := r.ProfileSvc.Delete(ctx, args.ID.UUID); err != nil {
		return UUID{}, err
	}
	return args.ID, nil
}
