package models

import (
	"time"
)

// Role identifies what kind of account a user holds.
type Role string

const (
	RoleBuyer Role = "buyer"
	RoleAgent Role = "agent"
)

// Valid reports whether the role is one of the known account kinds.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleAgent
}

// UserProfile is the profile document stored alongside an identity provider
// account. It is created on sign-up and fetched on session restore; the engine
// never mutates it locally.
type UserProfile struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}
