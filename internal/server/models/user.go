// Package models holds the persistent and transient data types shared by
// repositories, services and the HTTP layer.
package models

import "time"

// User is the durable identity record. PasswordHash never leaves the
// service; handlers return PublicUser instead.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the caller-visible projection of a User.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips the password hash from a User.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// AuthResult is the value returned by every successful auth operation.
// It is never persisted.
type AuthResult struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}
