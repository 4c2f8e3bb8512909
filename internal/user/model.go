package user

import "github.com/google/uuid"

type User struct {
	ID      uuid.UUID
	Name    string
	Balance float64
}

type CreateUserInput struct {
	Name    string
	Balance float64
}

// UpdateUserInput carries a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Name    *string
	Balance *float64
}
