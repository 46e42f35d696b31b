package follows

import (
	"context"

	"github.com/udalba/campusmarket/internal/accounts"
)

type Repository interface {
	// Create inserts the edge; a duplicate pair is a silent no-op
	// (ON CONFLICT DO NOTHING on the pair primary key).
	Create(ctx context.Context, followerEmail, followedEmail string) error

	// Delete removes the edge; deleting an absent edge is a no-op.
	Delete(ctx context.Context, followerEmail, followedEmail string) error

	Exists(ctx context.Context, followerEmail, followedEmail string) (bool, error)

	CountFollowers(ctx context.Context, email string) (int64, error)
	CountFollowing(ctx context.Context, email string) (int64, error)

	// ListFollowers returns the profiles following email, newest edge first.
	ListFollowers(ctx context.Context, email string) ([]*accounts.Profile, error)

	// ListFollowing returns the profiles email follows, newest edge first.
	ListFollowing(ctx context.Context, email string) ([]*accounts.Profile, error)
}
