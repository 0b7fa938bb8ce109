package domain

import "errors"

// Auth errors
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("token is not valid")
)

// Employee errors
var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeEmailExists = errors.New("email already exists")
	ErrUnsupportedImage    = errors.New("only jpg and png files allowed")
)
