package user

import (
	"github.com/google/uuid"
)

type (
	User struct {
		ID        uuid.UUID `json:"id"`
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
		Email     string    `json:"email"`
		IsActive  bool      `json:"is_active"`
	}
	IDResponse struct {
		ID uuid.UUID `json:"id"`
	}
)
