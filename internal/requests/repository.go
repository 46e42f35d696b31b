package requests

import "context"

type Repository interface {
	// Create inserts the request and fills in ID and CreatedAt.
	Create(ctx context.Context, request *Request) error

	// Update edits title, budget, and description under the requester
	// guard; zero affected rows yields common.ErrNotOwner.
	Update(ctx context.Context, id int64, requesterEmail, title string, budget int64, description string) error

	// Delete removes the request under the same guard.
	Delete(ctx context.Context, id int64, requesterEmail string) error

	// ListAll returns every request joined with requester display info,
	// newest first.
	ListAll(ctx context.Context) ([]*BoardItem, error)

	// ListByRequester returns one account's requests, newest first.
	ListByRequester(ctx context.Context, requesterEmail string) ([]*Request, error)
}
