package graph

import (
	"context"
	_ "embed"

	"graphql-service/internal/logger"
	"graphql-service/internal/member"
	"graphql-service/internal/post"
	"graphql-service/internal/profile"
	"graphql-service/internal/user"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

//go:embed schema.graphql
var schemaSDL string

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	MemberSvc  member.Service
	PostSvc    post.Service
	ProfileSvc profile.Service
	UserSvc    user.Service
}

func NewSchema(r *Resolver, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	opts = append([]graphql.SchemaOpt{graphql.Logger(panicLogger{})}, opts...)
	return graphql.ParseSchema(schemaSDL, r, opts...)
}

// MustSchema is NewSchema for callers that cannot recover from a bad schema.
func MustSchema(r *Resolver, opts ...graphql.SchemaOpt) *graphql.Schema {
	s, err := NewSchema(r, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	logger.FromCtx(ctx).Error("panic while resolving graphql field",
		zap.Any("panic", value),
		zap.Stack("stack"),
	)
}
