package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-account-api/internal/application/services"
	"user-account-api/internal/domain/user"
)

type fakeAuth struct {
	resolve func(ctx context.Context, token string) (*user.User, error)
}

func (f *fakeAuth) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	return nil, errors.New("not used")
}
func (f *fakeAuth) Login(ctx context.Context, email, password string) (string, error) {
	return "", errors.New("not used")
}
func (f *fakeAuth) ResolveBearer(ctx context.Context, token string) (*user.User, error) {
	return f.resolve(ctx, token)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	current := &user.User{ID: uuid.New(), Email: "user@example.com", IsActive: true}

	auth := &fakeAuth{resolve: func(ctx context.Context, token string) (*user.User, error) {
		switch token {
		case "good":
			return current, nil
		case "boom":
			return nil, errors.New("db down")
		default:
			return nil, services.ErrUnauthorized
		}
	}}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantErr    string
	}{
		{"missing header", "", http.StatusUnauthorized, "Not authenticated"},
		{"wrong scheme", "Token good", http.StatusUnauthorized, "Not authenticated"},
		{"no token", "Bearer ", http.StatusUnauthorized, "Not authenticated"},
		{"rejected token", "Bearer bad", http.StatusUnauthorized, "Could not validate credentials"},
		{"storage error", "Bearer boom", http.StatusInternalServerError, "failed to resolve user"},
		{"ok", "Bearer good", http.StatusOK, ""},
		{"scheme is case-insensitive", "bearer good", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/protected", AuthMiddleware(auth, zap.NewNop()), func(c *gin.Context) {
				u, ok := CurrentUser(c)
				require.True(t, ok)
				c.JSON(http.StatusOK, gin.H{"email": u.Email})
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
			} else {
				assert.Equal(t, "user@example.com", resp["email"])
			}
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
