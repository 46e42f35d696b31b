package listings

import "context"

type Repository interface {
	// Create inserts the listing and fills in ID and CreatedAt.
	Create(ctx context.Context, listing *Listing) error

	// Get returns common.ErrNotFound for unknown ids.
	Get(ctx context.Context, id int64) (*Listing, error)

	// Update edits name, description, and price in one guarded statement;
	// zero affected rows (wrong owner or vanished listing) yields
	// common.ErrNotOwner.
	Update(ctx context.Context, id int64, ownerEmail, name, description string, price int64) error

	// SetState flips the lifecycle state under the same owner guard.
	SetState(ctx context.Context, id int64, ownerEmail string, state State) error

	// Delete removes the listing under the same owner guard.
	Delete(ctx context.Context, id int64, ownerEmail string) error

	// ListAvailable returns available listings joined with owner display
	// info, newest first.
	ListAvailable(ctx context.Context) ([]*CatalogItem, error)

	// ListByOwner returns the owner's listings in every state, newest first.
	ListByOwner(ctx context.Context, ownerEmail string) ([]*Listing, error)
}
