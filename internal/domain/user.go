package domain

import "context"

// User is one account row as the table sees it. Rows are read-only once loaded.
type User struct {
	ID       int64  `json:"id" validate:"gt=0"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// UserSource loads the full record set. Implementations may hit a database,
// a remote endpoint, or return fixed data.
type UserSource interface {
	ListUsers(ctx context.Context) ([]User, error)
}

// SourceFunc adapts a plain function to UserSource.
type SourceFunc func(ctx context.Context) ([]User, error)

func (f SourceFunc) ListUsers(ctx context.Context) ([]User, error) { return f(ctx) }
