// Package common defines shared constants and sentinel errors used across
// the back-office services. Callers should use errors.Is to match these
// values; every error maps to a single user-presentable validation outcome.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration / credential validation errors.
	ErrInvalidEmail     = errors.New("invalid email")
	ErrWeakPassword     = errors.New("password too short")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrDuplicateEmail   = errors.New("email already registered")

	// Login errors.
	ErrEmptyInput    = errors.New("empty credentials")
	ErrDeactivated   = errors.New("account deactivated")
	ErrWrongPassword = errors.New("wrong password")

	// Credential-reset / identity-edit errors.
	ErrNoSelection = errors.New("no identity selected")
	ErrEmptyName   = errors.New("name is required")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
)
