// Package common defines sentinel errors and small byte helpers shared by the
// Creative Suite client packages. Callers should use errors.Is to match the
// error values.
package common

import "errors"

var (
	// Credential errors.
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUsername    = errors.New("invalid username")

	// Session errors.
	ErrCorruptSessionRecord = errors.New("corrupt session record")

	// Assistant errors.
	ErrCollaboratorFailure = errors.New("collaborator failure")
)
