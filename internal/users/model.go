package users

import "errors"

var ErrUserExists = errors.New("user already exists")

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CreateRequest is a validated create-user request. An empty ID is
// generated by the repository.
type CreateRequest struct {
	ID    string
	Email string
}
