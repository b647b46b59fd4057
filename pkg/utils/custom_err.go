package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAdminCode   = errors.New("invalid admin code")

	ErrSoldierNotFound      = errors.New("soldier not found")
	ErrSoldierAlreadyExists = errors.New("soldier already exists")
	ErrEventNotFound        = errors.New("event not found")
	ErrSessionNotFound      = errors.New("edit session not found or expired")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalError   = errors.New("internal error")
	ErrDatabaseError   = errors.New("database error")
)
