package user

import (
	"context"
	"errors"
)

// ErrDuplicateEmail is wrapped by repositories when the email unique
// constraint rejects a write. The wrapping error carries the storage message.
var ErrDuplicateEmail = errors.New("duplicate email")

// Repository reads and writes active users only. A nil result with a nil
// error means no active row matched.
type Repository interface {
	CreateUser(ctx context.Context, u User) (*User, error)
	FetchUserByID(ctx context.Context, id UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, id UUID, f Fields) (*UUID, error)
	DeleteUser(ctx context.Context, id UUID) (*UUID, error)
}

// UnitOfWork runs fn against a repository bound to a single transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}
