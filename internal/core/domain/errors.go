// internal/core/domain/errors.go
package domain

import "errors"

// Sentinel error kinds. Every failure returned by the ledger or directory
// wraps exactly one of these so callers can discriminate with errors.Is.
// All are recoverable by the caller; none are fatal to the process.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("item not found")
	ErrDuplicateItem     = errors.New("item already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAuthFailure       = errors.New("invalid credentials")
)
