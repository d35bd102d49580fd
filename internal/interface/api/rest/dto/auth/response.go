package auth

import (
	"user-account-api/internal/interface/api/rest/dto/user"
)

type (
	TokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	CurrentUserResponse struct {
		Success     bool      `json:"Success"`
		CurrentUser user.User `json:"current_user"`
	}
)
