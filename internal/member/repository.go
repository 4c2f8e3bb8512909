package member

import (
	"context"
	"database/sql"
	"errors"

	"graphql-service/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*MemberType, error)
	GetByID(ctx context.Context, id ID) (*MemberType, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*MemberType, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListMemberTypes"),
	)

	const q = `
		SELECT id, discount, posts_limit_per_month
		FROM member_types
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	res := make([]*MemberType, 0)
	for rows.Next() {
		var m MemberType
		if err := rows.Scan(&m.ID, &m.Discount, &m.PostsLimitPerMonth); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, &m)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *repository) GetByID(ctx context.Context, id ID) (*MemberType, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetMemberType"),
		zap.String("member_type_id", string(id)),
	)

	const q = `
		SELECT id, discount, posts_limit_per_month
		FROM member_types
		WHERE id = $1
	`

	var m MemberType
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Discount, &m.PostsLimitPerMonth)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("member type not found")
		return nil, ErrMemberTypeNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}

	return &m, nil
}
