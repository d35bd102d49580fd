package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/services"
	"user-account-api/internal/domain/user"
	"user-account-api/internal/interface/api/rest/validator"
)

const (
	msgInvalidBody   = "invalid request body"
	msgInvalidUserID = "user_id must be a valid UUID"
)

func invalidBody(c *gin.Context, details map[string]string) {
	body := gin.H{"error": msgInvalidBody}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(http.StatusUnprocessableEntity, body)
}

// bindFailed answers a body that could not be decoded.
func bindFailed(c *gin.Context, err error) {
	invalidBody(c, validator.BindErrors(err))
}

func userIDParam(c *gin.Context) (user.UUID, bool) {
	ok, id := validator.IsUUID(c.Query("user_id"))
	if !ok {
		c.JSON(
			http.StatusUnprocessableEntity,
			gin.H{"error": msgInvalidUserID},
		)
		return user.UUID{}, false
	}
	return id, true
}

// serviceError maps lifecycle errors to responses. Duplicate emails answer
// 503 with the storage message, as existing clients expect.
func serviceError(c *gin.Context, logger *zap.Logger, op string, id *user.UUID, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		body := gin.H{"error": vErr.Message}
		if len(vErr.Fields) > 0 {
			body["details"] = vErr.Fields
		}
		c.JSON(http.StatusUnprocessableEntity, body)
	case errors.Is(err, services.ErrNotFound):
		msg := "user not found"
		if id != nil {
			msg = fmt.Sprintf("User with id %s not found.", id)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
	case errors.Is(err, user.ErrDuplicateEmail):
		logger.Error(op+" error", zap.Error(err))
		c.JSON(
			http.StatusServiceUnavailable,
			gin.H{"error": "Database error: " + err.Error()},
		)
	default:
		logger.Error(op+" error", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "internal server error"},
		)
	}
}
