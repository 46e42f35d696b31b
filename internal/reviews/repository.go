package reviews

import "context"

type Repository interface {
	// Insert stores the review. It returns false without an error when the
	// (rater, rated) pair already has a review.
	Insert(ctx context.Context, review *Review) (bool, error)

	// Aggregate returns the star average and review count for an account.
	// A never-rated account yields (0, 0).
	Aggregate(ctx context.Context, ratedEmail string) (avg float64, count int64, err error)

	// ListFor returns the reviews left for an account, newest first.
	ListFor(ctx context.Context, ratedEmail string) ([]*Review, error)
}
