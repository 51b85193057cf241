package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that username or email is already taken
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrSessionNotFound indicates that interview session was not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrResumeNotFound indicates that resume was not found
	ErrResumeNotFound = errors.New("resume not found")
)
