package ports

import (
	"context"

	"user-account-api/internal/domain/user"
)

type UserService interface {
	CreateUser(ctx context.Context, p user.CreateParams) (*user.User, error)
	GetUser(ctx context.Context, id user.UUID) (*user.User, error)
	UpdateUser(ctx context.Context, id user.UUID, f user.Fields) (user.UUID, error)
	DeleteUser(ctx context.Context, id user.UUID) (user.UUID, error)
}
