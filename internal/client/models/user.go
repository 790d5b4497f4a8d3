// Package models defines the client-side data types of Creative Suite.
package models

// Credential is a stored username/password pair. It is persisted as JSON
// without the username, which is part of the storage key.
type Credential struct {
	Username string `json:"-"`
	Password string `json:"password"`
}

// Session names the currently authenticated user. At most one exists.
type Session struct {
	Username string `json:"username"`
}
