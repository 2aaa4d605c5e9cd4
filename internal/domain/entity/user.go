package entity

import (
	"fmt"
	"time"
)

// Role rol de un usuario. El conjunto es cerrado.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole convierte un string en Role. Vacío equivale a RoleUser.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser, "":
		return RoleUser, nil
	default:
		return "", fmt.Errorf("rol desconocido %q", s)
	}
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
