package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrAuthorNotFound       = errors.New("author not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadySubscribed    = errors.New("user is already subscribed to author")
)
