package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/application/services"
	"user-account-api/internal/domain/user"
)

const CtxCurrentUser = "currentUser"

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// AuthMiddleware resolves the bearer token to an active user and stores it
// under CtxCurrentUser.
func AuthMiddleware(authService ports.Auth, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Not authenticated")
			return
		}

		scheme, tokenStr, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || tokenStr == "" {
			unauthorized(c, "Not authenticated")
			return
		}

		u, err := authService.ResolveBearer(c.Request.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				unauthorized(c, "Could not validate credentials")
				return
			}
			logger.Error("ResolveBearer() error", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to resolve user"},
			)
			return
		}

		c.Set(CtxCurrentUser, u)

		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(CtxCurrentUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok && u != nil
}
