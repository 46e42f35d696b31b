package follows

import (
	"context"

	"github.com/udalba/campusmarket/internal/accounts"
	"github.com/udalba/campusmarket/internal/common"
)

// Service is the follow graph. Following yourself is rejected; following
// someone twice is a no-op rather than an error, and unfollowing an account
// you never followed is likewise harmless.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Follow(ctx context.Context, followerEmail, followedEmail string) error {
	if followerEmail == followedEmail {
		return common.ErrSelfFollow
	}

	if err := s.repo.Create(ctx, followerEmail, followedEmail); err != nil {
		return common.WrapStorage(err)
	}

	return nil
}

func (s *Service) Unfollow(ctx context.Context, followerEmail, followedEmail string) error {
	if err := s.repo.Delete(ctx, followerEmail, followedEmail); err != nil {
		return common.WrapStorage(err)
	}
	return nil
}

func (s *Service) IsFollowing(ctx context.Context, followerEmail, followedEmail string) (bool, error) {
	following, err := s.repo.Exists(ctx, followerEmail, followedEmail)
	if err != nil {
		return false, common.WrapStorage(err)
	}
	return following, nil
}

func (s *Service) FollowerCount(ctx context.Context, email string) (int64, error) {
	count, err := s.repo.CountFollowers(ctx, email)
	if err != nil {
		return 0, common.WrapStorage(err)
	}
	return count, nil
}

func (s *Service) FollowingCount(ctx context.Context, email string) (int64, error) {
	count, err := s.repo.CountFollowing(ctx, email)
	if err != nil {
		return 0, common.WrapStorage(err)
	}
	return count, nil
}

func (s *Service) ListFollowers(ctx context.Context, email string) ([]*accounts.Profile, error) {
	profiles, err := s.repo.ListFollowers(ctx, email)
	if err != nil {
		return nil, common.WrapStorage(err)
	}
	return profiles, nil
}

func (s *Service) ListFollowing(ctx context.Context, email string) ([]*accounts.Profile, error) {
	profiles, err := s.repo.ListFollowing(ctx, email)
	if err != nil {
		return nil, common.WrapStorage(err)
	}
	return profiles, nil
}
