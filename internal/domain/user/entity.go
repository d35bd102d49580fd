package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		ID             UUID
		FirstName      string
		LastName       string
		Email          string
		HashedPassword string
		IsActive       bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// CreateParams is the validated input of a registration, before hashing.
	// A nil Password registers an account that cannot log in.
	CreateParams struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Email     string  `json:"email"`
		Password  *string `json:"password"`
	}

	// Fields is a partial update; nil members are left untouched.
	Fields struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
	}
)

// UnusableHash is stored for accounts created without a password. No
// hasher output can equal it.
const UnusableHash = "!"

func (f Fields) IsEmpty() bool {
	return f.FirstName == nil && f.LastName == nil && f.Email == nil
}
