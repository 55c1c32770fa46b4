package handler

import "github.com/dashportal/auth-service/internal/core/domain"

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authResponse is the envelope returned on successful registration and login.
// domain.User marshals without its password hash.
type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}
