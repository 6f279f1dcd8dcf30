package domain

import "errors"

var (
	ErrExperimentNotFound = errors.New("experiment not found")
	ErrUserNotFound       = errors.New("user not found")
)
