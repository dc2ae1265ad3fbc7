package model

import "errors"

var (
	// ErrRepositoryNotFound indicates that the named repository is not tracked.
	ErrRepositoryNotFound = errors.New("repository not found")
)
