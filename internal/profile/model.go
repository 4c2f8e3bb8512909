package profile

import (
	"graphql-service/internal/member"

	"github.com/google/uuid"
)

type Profile struct {
	ID           uuid.UUID
	IsMale       bool
	YearOfBirth  int32
	UserID       uuid.UUID
	MemberTypeID member.ID
}

type CreateProfileInput struct {
	IsMale       bool
	YearOfBirth  int32
	UserID       uuid.UUID
	MemberTypeID member.ID
}

// UpdateProfileInput carries a partial update; nil fields are left unchanged.
// The owning user cannot be changed.
type UpdateProfileInput struct {
	IsMale       *bool
	YearOfBirth  *int32
	MemberTypeID *member.ID
}
