package ports

import (
	"context"

	"user-account-api/internal/domain/user"
)

type Auth interface {
	Authenticate(ctx context.Context, email, password string) (*user.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ResolveBearer(ctx context.Context, token string) (*user.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
