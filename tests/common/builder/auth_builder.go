//go:build unit || e2e

package builder

import (
	"gin-shareit/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "alice@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() request.LoginRequest {
	return request.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) WithCredentials(email, password string) *AuthBuilder {
	a.Email = email
	a.Password = password
	return a
}
