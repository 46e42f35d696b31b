package reviews

import (
	"context"
	"math"

	"github.com/udalba/campusmarket/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit records a rating of 1 to 5 stars with an optional comment.
// Rating yourself and rating the same seller twice are both rejected.
func (s *Service) Submit(ctx context.Context, raterEmail, ratedEmail string, stars int, comment string) (*Review, error) {
	if raterEmail == ratedEmail {
		return nil, common.ErrSelfReview
	}
	if stars < 1 || stars > 5 {
		return nil, common.ErrInvalidStars
	}

	review := &Review{
		RaterEmail: raterEmail,
		RatedEmail: ratedEmail,
		Stars:      stars,
		Comment:    comment,
	}

	inserted, err := s.repo.Insert(ctx, review)
	if err != nil {
		return nil, common.WrapStorage(err)
	}
	if !inserted {
		return nil, common.ErrDuplicateReview
	}

	return review, nil
}

// Reputation computes the account's standing. The average is rounded to one
// decimal place so 5 and 3 stars report 4.0, and 4 and 5 report 4.5.
func (s *Service) Reputation(ctx context.Context, email string) (*Reputation, error) {
	avg, count, err := s.repo.Aggregate(ctx, email)
	if err != nil {
		return nil, common.WrapStorage(err)
	}

	rep := &Reputation{Email: email, Count: count}
	if count > 0 {
		rep.Average = math.Round(avg*10) / 10
	}

	return rep, nil
}

// ListFor returns the reviews left for an account, newest first.
func (s *Service) ListFor(ctx context.Context, email string) ([]*Review, error) {
	reviews, err := s.repo.ListFor(ctx, email)
	if err != nil {
		return nil, common.WrapStorage(err)
	}
	return reviews, nil
}
