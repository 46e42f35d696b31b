package requests

import (
	"context"
	"errors"

	"github.com/udalba/campusmarket/internal/common"
)

// Service is the wanted board. Ownership rules mirror the listing registry:
// only the requester may edit or delete a posting.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Post publishes a wanted posting with the creation date stamped by the store.
func (s *Service) Post(ctx context.Context, requesterEmail, title string, budget int64, description string) (int64, error) {
	if budget < 0 {
		return 0, common.ErrInvalidPrice
	}

	request := &Request{
		Title:          title,
		Budget:         budget,
		Description:    description,
		RequesterEmail: requesterEmail,
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return 0, common.WrapStorage(err)
	}

	return request.ID, nil
}

// Edit changes title, budget, and description. Requester-only.
func (s *Service) Edit(ctx context.Context, id int64, requesterEmail, title string, budget int64, description string) error {
	if budget < 0 {
		return common.ErrInvalidPrice
	}

	if err := s.repo.Update(ctx, id, requesterEmail, title, budget, description); err != nil {
		if errors.Is(err, common.ErrNotOwner) {
			return common.ErrNotOwner
		}
		return common.WrapStorage(err)
	}
	return nil
}

// Delete removes the posting. Requester-only.
func (s *Service) Delete(ctx context.Context, id int64, requesterEmail string) error {
	if err := s.repo.Delete(ctx, id, requesterEmail); err != nil {
		if errors.Is(err, common.ErrNotOwner) {
			return common.ErrNotOwner
		}
		return common.WrapStorage(err)
	}
	return nil
}

// ListAll returns the public board, newest first, with requester display info.
func (s *Service) ListAll(ctx context.Context) ([]*BoardItem, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, common.WrapStorage(err)
	}
	return items, nil
}

// ListByRequester returns one account's postings, newest first.
func (s *Service) ListByRequester(ctx context.Context, requesterEmail string) ([]*Request, error) {
	result, err := s.repo.ListByRequester(ctx, requesterEmail)
	if err != nil {
		return nil, common.WrapStorage(err)
	}
	return result, nil
}
