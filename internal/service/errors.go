package service

import (
	"errors"
	"fmt"
)

// Auth errors. Login failures collapse onto ErrWrongCredentials regardless
// of whether the username exists, so the API can't be used to enumerate
// accounts.
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrWrongCredentials   = errors.New("wrong credentials")
	ErrUsernameTaken      = errors.New("this username is already occupied")
	ErrUsernameTooShort   = errors.New("username must be at least 4 characters long")
)

// Domain errors.
var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrCantDoThis       = errors.New("you don't have permission to do this")
	ErrTextTooLong      = errors.New("text length must be between 1 and 256 characters")
)

// NotFoundError reports a missing entity by kind and identifier.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}
