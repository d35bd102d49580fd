package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID             uuid.UUID
		FirstName      string
		LastName       string
		Email          string
		HashedPassword string
		IsActive       bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)
