// Package models holds the persistent entities of the identity service.
package models

import "time"

// Role is a tag from the fixed role enumeration.
type Role = string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the central identity record. Username and email are stored
// normalized (lower-cased, trimmed) and are unique across all records,
// active or not. PasswordHash holds the derived credential in the
// "hex(salt):hex(key)" form and must never leave the service layer.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Roles        []Role
	FirstName    string
	LastName     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy of the user with the stored credential removed.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.PasswordHash = ""
	c.Roles = append([]Role(nil), u.Roles...)
	return &c
}
