package graph

import (
	"context"
	"errors"

	"graphql-service/internal/logger"
	"graphql-service/internal/post"

	"go.uber.org/zap"
)

type postResolver struct {
	p *post.Post
}

func (r *postResolver) ID() UUID        { return toUUID(r.p.ID) }
func (r *postResolver) Title() string   { return r.p.Title }
func (r *postResolver) Content() string { return r.p.Content }
func (r *postResolver) AuthorID() UUID  { return toUUID(r.p.AuthorID) }

func postResolvers(list []*post.Post) []*postResolver {
	res := make([]*postResolver, 0, len(list))
	for _, p := range list {
		res = append(res, &postResolver{p: p})
	}
	return res
}

type createPostInput struct {
	Title    string
	Content  string
	AuthorID UUID
}

type changePostInput struct {
	Title   *string
	Content *string
}

func (r *Resolver) Posts(ctx context.Context) ([]*postResolver, error) {
	list, err := r.PostSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	return postResolvers(list), nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ ID UUID }) (*postResolver, error) {
	p, err := r.PostSvc.Get(ctx, args.ID.UUID)
	if errors.Is(err, post.ErrPostNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &postResolver{p: p}, nil
}

func (r *Resolver) CreatePost(ctx context.Context, args struct{ Dto createPostInput }) (*postResolver, error) {
	p, err := r.PostSvc.Create(ctx, post.CreatePostInput{
		Title:    args.Dto.Title,
		Content:  args.Dto.Content,
		AuthorID: args.Dto.AuthorID.UUID,
	})
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("post created", zap.String("post_id", p.ID.String()))
	return &postResolver{p: p}, nil
}

func (r *Resolver) ChangePost(ctx context.Context, args struct {
	ID  UUID
	Dto changePostInput
}) (*postResolver, error) {
	p, err := r.PostSvc.Change(ctx, args.ID.UUID, post.UpdatePostInput{
		Title:   args.Dto.Title,
		Content: args.Dto.Content,
	})
	if err != nil {
		return nil, err
	}
	return &postResolver{p: p}, nil
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID UUID }) (UUID, error) {
	if err := r.PostSvc.Delete(ctx, args.ID.UUID); err != nil {
		return UUID{}, err
	}
	return args.ID, nil
}
