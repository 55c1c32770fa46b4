package domain

import (
	"errors"
	"time"
)

// Roles form a flat, closed enumeration. There is no hierarchy: admin does
// not implicitly satisfy a user-only check.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidToken = errors.New("invalid token")

// ValidRole reports whether s is a member of the role enumeration.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin
}

// User models a credential record.
//
// PasswordHash is only ever produced by a password.Hasher and never appears
// in an outbound response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
