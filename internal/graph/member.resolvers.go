package graph

import (
	"context"
	"errors"

	"graphql-service/internal/member"
)

type memberTypeResolver struct {
	m *member.MemberType
}

func (r *memberTypeResolver) ID() string {
	return string(r.m.ID)
}

func (r *memberTypeResolver) Discount() float64 {
	return r.m.Discount
}

func (r *memberTypeResolver) PostsLimitPerMonth() int32 {
	return r.m.PostsLimitPerMonth
}

func (r *Resolver) MemberTypes(ctx context.Context) ([]*memberTypeResolver, error) {
	list, err := r.MemberSvc.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*memberTypeResolver, 0, len(list))
	for _, m := range list {
		res = append(res, &memberTypeResolver{m: m})
	}
	return res, nil
}

func (r *Resolver) MemberType(ctx context.Context, args struct{ ID string }) (*memberTypeResolver, error) {
	return r.memberType(ctx, member.ID(args.ID))
}

// memberType resolves a tier by id; a missing tier is null rather than an error.
func (r *Resolver) memberType(ctx context.Context, id member.ID) (*memberTypeResolver, error) {
	m, err := r.MemberSvc.Get(ctx, id)
	if errors.Is(err, member.ErrMemberTypeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &memberTypeResolver{m: m}, nil
}
