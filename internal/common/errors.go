// Package common defines the sentinel errors shared by the account and task
// managers and the layers above them. Callers should use errors.Is to match
// these values; their text is what the CLI shows to the user.
package common

import "errors"

var (
	// Account errors.
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrEmailNotFound   = errors.New("email not found")
	ErrInvalidPassword = errors.New("incorrect password")

	// List errors.
	ErrEmptyName     = errors.New("list name is required")
	ErrListNotFound  = errors.New("list not found")
	ErrProtectedList = errors.New("default lists cannot be removed")

	// Task errors.
	ErrEmptyTitle      = errors.New("task title is required")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
)

// IsDomain reports whether err is one of the user-facing sentinel errors above,
// as opposed to a storage or decoding failure.
func IsDomain(err error) bool {
	for _, e := range domainErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

var domainErrors = []error{
	ErrDuplicateEmail, ErrEmailNotFound, ErrInvalidPassword,
	ErrEmptyName, ErrListNotFound, ErrProtectedList,
	ErrEmptyTitle, ErrTaskNotFound, ErrInvalidPriority,
}
