package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a user. An empty ID gets a generated one.
func (r *Repo) Create(ctx context.Context, req CreateRequest) (*User, error) {
	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	const q = `
insert into users (id, email)
values ($1, $2)
returning id::text, coalesce(email, '');
`
	var u User
	if err := r.db.QueryRowContext(ctx, q, id, req.Email).Scan(&u.ID, &u.Email); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}
