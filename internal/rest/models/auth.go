package models

import (
	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   Token        `json:"token"`
	User    *models.User `json:"user"`
}

type Profile struct {
	User *models.User `json:"user"`
}
