package profile

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("user already has a profile")
	ErrUserNotFound         = errors.New("user not found")
	ErrMemberTypeNotFound   = errors.New("member type not found")
)
