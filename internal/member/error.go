package member

import "errors"

var (
	ErrMemberTypeNotFound = errors.New("member type not found")
	ErrInvalidMemberType  = errors.New("invalid member type id")
)
