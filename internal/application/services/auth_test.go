package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/jwt"
)

func newAuthService(t *testing.T) (*AuthService, *fakeUoW, *jwt.Service) {
	t.Helper()
	j, err := jwt.New("test-secret", "HS256")
	require.NoError(t, err)

	uow := &fakeUoW{repo: newMemRepo()}
	uow.repo.seed(domain.User{
		ID:             uuid.New(),
		FirstName:      "Ivan",
		LastName:       "Petrov",
		Email:          "user@example.com",
		HashedPassword: "hashed:VeryStrongPassw0rd!",
		IsActive:       true,
	})
	uow.repo.seed(domain.User{
		ID:             uuid.New(),
		FirstName:      "Gone",
		LastName:       "User",
		Email:          "gone@example.com",
		HashedPassword: "hashed:VeryStrongPassw0rd!",
		IsActive:       false,
	})
	uow.repo.seed(domain.User{
		ID:             uuid.New(),
		FirstName:      "No",
		LastName:       "Password",
		Email:          "nopass@example.com",
		HashedPassword: domain.UnusableHash,
		IsActive:       true,
	})

	return NewAuthService(uow, plainHasher{}, j, 30*time.Minute).(*AuthService), uow, j
}

func TestAuthService_Authenticate(t *testing.T) {
	as, _, _ := newAuthService(t)
	ctx := context.Background()

	u, err := as.Authenticate(ctx, "user@example.com", "VeryStrongPassw0rd!")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "user@example.com", u.Email)

	for _, tc := range []struct{ email, password string }{
		{"user@example.com", "wrong"},
		{"nobody@example.com", "VeryStrongPassw0rd!"},
		{"gone@example.com", "VeryStrongPassw0rd!"},
		{"nopass@example.com", ""},
		{"nopass@example.com", domain.UnusableHash},
	} {
		u, err = as.Authenticate(ctx, tc.email, tc.password)
		require.NoError(t, err)
		assert.Nil(t, u, tc.email)
	}
}

func TestAuthService_Login(t *testing.T) {
	as, _, j := newAuthService(t)
	ctx := context.Background()

	token, err := as.Login(ctx, "user@example.com", "VeryStrongPassw0rd!")
	require.NoError(t, err)

	claims, err := j.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, []any{float64(1), float64(2), float64(3), float64(4)}, claims.Extra["other_custom_data"])
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt, 5*time.Second)

	_, wrongPassErr := as.Login(ctx, "user@example.com", "wrong")
	_, unknownErr := as.Login(ctx, "nobody@example.com", "VeryStrongPassw0rd!")
	require.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
}

func TestAuthService_Login_StorageError(t *testing.T) {
	as, uow, _ := newAuthService(t)
	uow.repo.fail = errors.New("db down")

	_, err := as.Login(context.Background(), "user@example.com", "VeryStrongPassw0rd!")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ResolveBearer(t *testing.T) {
	as, uow, j := newAuthService(t)
	ctx := context.Background()

	issue := func(sub string, ttl time.Duration) string {
		tok, err := j.Issue(sub, nil, ttl)
		require.NoError(t, err)
		return tok
	}
	other, err := jwt.New("other-secret", "HS256")
	require.NoError(t, err)
	forged, err := other.Issue("user@example.com", nil, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "valid", token: issue("user@example.com", time.Hour)},
		{name: "expired", token: issue("user@example.com", -time.Minute), wantErr: ErrUnauthorized},
		{name: "bad signature", token: forged, wantErr: ErrUnauthorized},
		{name: "garbage", token: "not-a-jwt", wantErr: ErrUnauthorized},
		{name: "empty subject", token: issue("", time.Hour), wantErr: ErrUnauthorized},
		{name: "unknown subject", token: issue("nobody@example.com", time.Hour), wantErr: ErrUnauthorized},
		{name: "soft-deleted subject", token: issue("gone@example.com", time.Hour), wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := as.ResolveBearer(ctx, tt.token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user@example.com", u.Email)
		})
	}

	t.Run("deleted after issue", func(t *testing.T) {
		tok := issue("user@example.com", time.Hour)
		for _, u := range uow.repo.rows {
			if u.Email == "user@example.com" {
				u.IsActive = false
			}
		}

		_, err := as.ResolveBearer(ctx, tok)
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}
