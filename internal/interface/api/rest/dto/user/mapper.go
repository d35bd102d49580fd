package user

import (
	"user-account-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		ID:        uDomain.ID,
		FirstName: uDomain.FirstName,
		LastName:  uDomain.LastName,
		Email:     uDomain.Email,
		IsActive:  uDomain.IsActive,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToCreateParams expects a request already checked for missing fields.
func ToCreateParams(r CreateRequest) user.CreateParams {
	return user.CreateParams{
		FirstName: deref(r.FirstName),
		LastName:  deref(r.LastName),
		Email:     deref(r.Email),
		Password:  r.Password,
	}
}

func ToFields(r UpdateRequest) user.Fields {
	return user.Fields{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}
