// Package common defines shared sentinel errors used across the service
// layers of CampusMarket. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrStorage  = errors.New("storage error")

	// Credential store errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAnswerMismatch     = errors.New("security answer does not match")
	ErrConfirmMismatch    = errors.New("password confirmation does not match")

	// Ownership errors (listing/request mutation by a non-owner).
	ErrNotOwner = errors.New("not the owner")

	// Listing errors.
	ErrInvalidPrice = errors.New("price must not be negative")
	ErrInvalidState = errors.New("unknown listing state")

	// Messaging errors.
	ErrEmptyMessage = errors.New("message body is empty")

	// Follow graph errors.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// Reputation ledger errors.
	ErrDuplicateReview = errors.New("review already submitted")
	ErrSelfReview      = errors.New("cannot review yourself")
	ErrInvalidStars    = errors.New("stars must be between 1 and 5")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)

// WrapStorage tags an unexpected collaborator failure so callers can match
// it with errors.Is(err, ErrStorage) while the cause stays in the message.
func WrapStorage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
