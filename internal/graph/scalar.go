package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID is the GraphQL UUID scalar. Only the canonical
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form is accepted.
type UUID struct {
	uuid.UUID
}

func (UUID) ImplementsGraphQLType(name string) bool {
	return name == "UUID"
}

func (u *UUID) UnmarshalGraphQL(input interface{}) error {
	s, ok := input.(string)
	if !ok {
		return fmt.Errorf("UUID must be a string, got %T", input)
	}
	if len(s) != 36 {
		return fmt.Errorf("invalid UUID %q", s)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid UUID %q", s)
	}
	u.UUID = id
	return nil
}

func toUUID(id uuid.UUID) UUID {
	return UUID{UUID: id}
}
