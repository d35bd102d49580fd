package services

import (
	"context"
	"errors"
	"time"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/jwt"
)

// loginExtra is attached to every access token next to the subject.
var loginExtra = map[string]any{"other_custom_data": []int{1, 2, 3, 4}}

type AuthService struct {
	uow        user.UnitOfWork
	hasher     ports.PasswordHasher
	jwtService *jwt.Service
	tokenTTL   time.Duration
}

func NewAuthService(
	uow user.UnitOfWork,
	hasher ports.PasswordHasher,
	jwtService *jwt.Service,
	tokenTTL time.Duration,
) ports.Auth {
	return &AuthService{
		uow:        uow,
		hasher:     hasher,
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
	}
}

func (as *AuthService) findByEmail(ctx context.Context, email string) (*user.User, error) {
	var u *user.User
	err := as.uow.WithinTx(ctx, func(ctx context.Context, repo user.Repository) error {
		var err error
		u, err = repo.FetchUserByEmail(ctx, email)
		return err
	})
	return u, err
}

// Authenticate returns nil for both an unknown email and a wrong password.
func (as *AuthService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	u, err := as.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.HashedPassword == user.UnusableHash || !as.hasher.Verify(password, u.HashedPassword) {
		return nil, nil
	}

	return u, nil
}

func (as *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := as.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.Issue(u.Email, loginExtra, as.tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

// ResolveBearer maps a token back to an active user. A valid token whose
// subject was soft-deleted since issue is rejected.
func (as *AuthService) ResolveBearer(ctx context.Context, token string) (*user.User, error) {
	claims, err := as.jwtService.Decode(token)
	if err != nil {
		if errors.Is(err, jwt.ErrInvalidToken) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if claims.Subject == "" {
		return nil, ErrUnauthorized
	}

	u, err := as.findByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnauthorized
	}

	return u, nil
}
