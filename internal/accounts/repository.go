package accounts

import (
	"context"
)

type Repository interface {
	// Create inserts a new account. A second insert with the same email
	// returns common.ErrDuplicateEmail.
	Create(ctx context.Context, account *Account) error

	// GetByEmail returns common.ErrNotFound for unknown emails.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// UpdateProfile changes the mutable profile fields only.
	UpdateProfile(ctx context.Context, email, name, contact, program string) error

	// UpdatePasswordHash replaces the stored credential digest.
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
}
