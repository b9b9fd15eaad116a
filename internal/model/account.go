package model

import (
	"strings"
	"time"
)

// AccountID uniquely identifies an account across the system
type AccountID string

// Role classifies what an account is allowed to do
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleBroker Role = "broker"
	RoleClient Role = "client"
)

// ParseRole validates a role string against the closed role set.
// An empty string defaults to RoleClient.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleClient, nil
	case RoleAdmin, RoleBroker, RoleClient:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}

// Account represents a registered user.
// PasswordHash stays inside the storage and service layers; the API only
// ever serializes the public projection.
type Account struct {
	ID           AccountID
	Name         string
	Email        string
	PasswordHash string // bcrypt hash
	Phone        string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lowercases and trims an email address.
// Email uniqueness is case-insensitive, so every comparison and every
// index key goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
