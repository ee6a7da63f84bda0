package services

import "errors"

// Domain errors. Handlers map these to HTTP status codes; anything else
// coming out of a service is treated as an internal failure.
var (
	// ErrUsernameTaken is returned by registration when the username is
	// already in use.
	ErrUsernameTaken = errors.New("user already exists")

	// ErrInvalidCredentials is returned by login for both an unknown
	// username and a failed password check, with no distinction between
	// the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSellerNotFound is returned when a seller id does not resolve to
	// a stored seller.
	ErrSellerNotFound = errors.New("seller not found")

	// ErrInvalidToken is returned when a token fails signature or expiry
	// checks.
	ErrInvalidToken = errors.New("invalid token")
)
