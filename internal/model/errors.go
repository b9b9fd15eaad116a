package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUnknownRole     = errors.New("unknown role")

	// Credential errors
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrCurrentPasswordRequired = errors.New("current password is required to change the password")

	// Token errors
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenInvalid   = errors.New("invalid token")

	// Listing errors
	ErrListingNotFound      = errors.New("listing not found")
	ErrUnknownListingKind   = errors.New("unknown listing kind")
	ErrUnknownListingStatus = errors.New("unknown listing status")

	// Geocoding errors
	ErrAddressNotFound = errors.New("address not found")
)
