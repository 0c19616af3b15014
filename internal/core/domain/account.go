package domain

import (
	"errors"
	"time"
)

// Role values stored on the accounts collection. Roles are a closed set;
// there is no inheritance between them, only the discriminator field.
const (
	RolePrincipal = "Principal"
	RoleTeacher   = "Teacher"
	RoleStudent   = "Student"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RolePrincipal, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNoStudents         = errors.New("no students found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
)

// Account models a person in the school system: principal, teacher or
// student, discriminated by Role. The password hash never leaves the server.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
