package domain

import (
	"errors"
	"fmt"
)

// Validation
var ErrValidation = errors.New("invalid input")

// Authentication
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidAPIKey      = errors.New("invalid email or api key")
	ErrDecryption         = errors.New("decryption failed")
)

// Lookup
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrOriginNotFound = errors.New("origin not found")
)

// Conflicts on unique fields. Specific conflicts wrap ErrConflict.
var (
	ErrConflict     = errors.New("conflict")
	ErrEmailTaken   = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrOriginExists = fmt.Errorf("%w: origin already exists for this user", ErrConflict)
)

// ErrDependency marks failures of the document store or another backing
// service. Callers may retry.
var ErrDependency = errors.New("dependency unavailable")

var ErrRateLimited = errors.New("too many requests")
