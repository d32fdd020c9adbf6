package models

import "errors"

var (

	// auth-specific errors
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email, password, or account not verified")
	ErrNoPendingVerification = errors.New("no unverified email found")
	ErrAccountNotFound       = errors.New("account not found")

	// generic entity errors
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// account-specific errors
	ErrSelfDeletionForbidden = errors.New("cannot delete own account")
)
