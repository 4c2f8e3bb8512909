package profile

import (
	"context"
	"database/sql"
	"errors"

	"graphql-service/internal/db"
	"graphql-service/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const memberTypeFK = "fk_profiles_member_type"

type Repository interface {
	List(ctx context.Context) ([]*Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Create(ctx context.Context, input CreateProfileInput) (*Profile, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row scanner) (*Profile, error) {
	var p Profile
	if err := row.Scan(&p.ID, &p.IsMale, &p.YearOfBirth, &p.UserID, &p.MemberTypeID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListProfiles"),
	)

	const q = `
		SELECT id, is_male, year_of_birth, user_id, member_type_id
		FROM profiles
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	res := make([]*Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	const q = `
		SELECT id, is_male, year_of_birth, user_id, member_type_id
		FROM profiles
		WHERE id = $1
	`
	return r.getOne(ctx, "GetProfile", q, id)
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	const q = `
		SELECT id, is_male, year_of_birth, user_id, member_type_id
		FROM profiles
		WHERE user_id = $1
	`
	return r.getOne(ctx, "GetProfileByUser", q, userID)
}

func (r *repository) getOne(ctx context.Context, method, q string, id uuid.UUID) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", method),
		zap.String("id", id.String()),
	)

	p, err := scanProfile(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("profile not found")
		return nil, ErrProfileNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (r *repository) Create(ctx context.Context, input CreateProfileInput) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProfile"),
		zap.String("user_id", input.UserID.String()),
	)

	const q = `
		INSERT INTO profiles (is_male, year_of_birth, user_id, member_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_male, year_of_birth, user_id, member_type_id
	`

	p, err := scanProfile(r.db.QueryRowContext(ctx, q,
		input.IsMale, input.YearOfBirth, input.UserID, input.MemberTypeID,
	))
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			log.Info("profile rejected by constraint", zap.Error(mapped))
			return nil, mapped
		}
		log.Error("failed to create profile", zap.Error(err))
		return nil, err
	}

	log.Info("profile created successfully", zap.String("profile_id", p.ID.String()))
	return p, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProfile"),
		zap.String("profile_id", id.String()),
	)

	// Using COALESCE to keep existing values if input is nil
	const q = `
		UPDATE profiles
		SET is_male = COALESCE($2, is_male),
			year_of_birth = COALESCE($3, year_of_birth),
			member_type_id = COALESCE($4, member_type_id)
		WHERE id = $1
		RETURNING id, is_male, year_of_birth, user_id, member_type_id
	`

	p, err := scanProfile(r.db.QueryRowContext(ctx, q,
		id, input.IsMale, input.YearOfBirth, input.MemberTypeID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("profile not found")
		return nil, ErrProfileNotFound
	}
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		log.Error("failed to update profile", zap.Error(err))
		return nil, err
	}

	log.Info("profile updated successfully")
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeleteProfile"),
		zap.String("profile_id", id.String()),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete profile", zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		log.Info("profile not found")
		return ErrProfileNotFound
	}

	return nil
}

func mapConstraintError(err error) error {
	switch {
	case db.IsUniqueViolation(err):
		return ErrProfileAlreadyExists
	case db.IsForeignKeyViolation(err):
		if db.Constraint(err) == memberTypeFK {
			return ErrMemberTypeNotFound
		}
		return ErrUserNotFound
	}
	return nil
}
