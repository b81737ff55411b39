package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrInvalidInput      = errors.New("invalid input")
)
