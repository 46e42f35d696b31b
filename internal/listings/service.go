package listings

import (
	"context"
	"errors"

	"github.com/udalba/campusmarket/internal/common"
	"github.com/udalba/campusmarket/internal/photos"
)

// Service is the listing registry. Photos are passed through unchanged:
// inline in the row by default, or handed to the object store when one is
// configured (photoStore != nil).
type Service struct {
	repo       Repository
	photoStore photos.Store
}

func NewService(repo Repository, photoStore photos.Store) *Service {
	return &Service{repo: repo, photoStore: photoStore}
}

// Publish creates the listing in state Available with the creation date
// stamped by the store. The photo and the owner are immutable afterwards.
func (s *Service) Publish(ctx context.Context, ownerEmail, name, description string, price int64, photo []byte) (int64, error) {
	if price < 0 {
		return 0, common.ErrInvalidPrice
	}

	listing := &Listing{
		Name:        name,
		Description: description,
		Price:       price,
		State:       StateAvailable,
		OwnerEmail:  ownerEmail,
	}

	if photo != nil {
		if s.photoStore != nil {
			key, err := s.photoStore.Put(ctx, photo)
			if err != nil {
				return 0, common.WrapStorage(err)
			}
			listing.PhotoKey = &key
		} else {
			listing.Photo = photo
		}
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return 0, common.WrapStorage(err)
	}

	return listing.ID, nil
}

// Edit changes name, description, and price. Only the owner may edit;
// anyone else gets common.ErrNotOwner and the record stays unmodified.
func (s *Service) Edit(ctx context.Context, id int64, ownerEmail, name, description string, price int64) error {
	if price < 0 {
		return common.ErrInvalidPrice
	}
	return s.guarded(s.repo.Update(ctx, id, ownerEmail, name, description, price))
}

// SetState pauses or reactivates a listing.
func (s *Service) SetState(ctx context.Context, id int64, ownerEmail string, state State) error {
	if state != StateAvailable && state != StatePaused {
		return common.ErrInvalidState
	}
	return s.guarded(s.repo.SetState(ctx, id, ownerEmail, state))
}

// Delete removes the listing. Owner-only, like Edit.
func (s *Service) Delete(ctx context.Context, id int64, ownerEmail string) error {
	return s.guarded(s.repo.Delete(ctx, id, ownerEmail))
}

func (s *Service) guarded(err error) error {
	if err != nil {
		if errors.Is(err, common.ErrNotOwner) {
			return common.ErrNotOwner
		}
		return common.WrapStorage(err)
	}
	return nil
}

// ListAvailable returns the catalog: available listings joined with the
// owner's display name and contact handle, newest first. Paused listings
// are invisible here. Object-storage photos get a presigned URL.
func (s *Service) ListAvailable(ctx context.Context) ([]*CatalogItem, error) {
	items, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, common.WrapStorage(err)
	}

	if s.photoStore != nil {
		for _, item := range items {
			if item.PhotoKey == nil {
				continue
			}
			url, err := s.photoStore.URL(ctx, *item.PhotoKey)
			if err != nil {
				return nil, common.WrapStorage(err)
			}
			item.PhotoURL = url
		}
	}

	return items, nil
}

// ListByOwner returns the owner's listings in every state, newest first.
func (s *Service) ListByOwner(ctx context.Context, ownerEmail string) ([]*Listing, error) {
	result, err := s.repo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, common.WrapStorage(err)
	}
	return result, nil
}

// Get loads one listing, e.g. for the detail view that starts a
// conversation with the owner.
func (s *Service) Get(ctx context.Context, id int64) (*Listing, error) {
	listing, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapStorage(err)
	}
	return listing, nil
}
