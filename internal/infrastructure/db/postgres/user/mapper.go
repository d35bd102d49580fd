package user

import (
	domain "user-account-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	return &domain.User{
		ID:             model.ID,
		FirstName:      model.FirstName,
		LastName:       model.LastName,
		Email:          model.Email,
		HashedPassword: model.HashedPassword,
		IsActive:       model.IsActive,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
