package domain

import "errors"

var (
	// ErrCompanyNotFound is returned when no company exists for the given id.
	ErrCompanyNotFound = errors.New("no company with the given id")

	// ErrSiteNotFound is returned when no site exists for the given id.
	ErrSiteNotFound = errors.New("no site with the given id")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The message is deliberately generic.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
