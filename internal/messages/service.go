package messages

import (
	"context"

	"github.com/udalba/campusmarket/internal/common"
)

// Service is the messaging channel. Conversations are derived from the
// message table; there is no separate conversation entity, no threading, and
// no delivery guarantee beyond "stored then readable". Recipient existence
// is guaranteed by the caller (a message is sent from a listing, request, or
// profile view, so the counterpart is already on screen).
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Send stores a message, always unread, timestamped by the store.
func (s *Service) Send(ctx context.Context, senderEmail, recipientEmail, body string) (int64, error) {
	if body == "" {
		return 0, common.ErrEmptyMessage
	}

	message := &Message{
		SenderEmail:    senderEmail,
		RecipientEmail: recipientEmail,
		Body:           body,
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return 0, common.WrapStorage(err)
	}

	return message.ID, nil
}

// ListConversations returns the accounts that have exchanged at least one
// message with email, most recent exchange first.
func (s *Service) ListConversations(ctx context.Context, email string) ([]string, error) {
	counterparts, err := s.repo.ListCounterparts(ctx, email)
	if err != nil {
		return nil, common.WrapStorage(err)
	}
	return counterparts, nil
}

// GetThread returns the full bidirectional history with counterpartEmail in
// send order. Reading a thread does not mark anything; use OpenThread.
func (s *Service) GetThread(ctx context.Context, email, counterpartEmail string) ([]*Message, error) {
	thread, err := s.repo.GetThread(ctx, email, counterpartEmail)
	if err != nil {
		return nil, common.WrapStorage(err)
	}
	return thread, nil
}

// OpenThread marks every unread message from counterpartEmail to email as
// read, in one atomic statement. This is the only path that flips the flag;
// the transition is terminal. Returns how many messages were flipped.
func (s *Service) OpenThread(ctx context.Context, email, counterpartEmail string) (int64, error) {
	marked, err := s.repo.MarkThreadRead(ctx, email, counterpartEmail)
	if err != nil {
		return 0, common.WrapStorage(err)
	}
	return marked, nil
}

// CountUnread returns the notification-badge count for email.
func (s *Service) CountUnread(ctx context.Context, email string) (int64, error) {
	count, err := s.repo.CountUnread(ctx, email)
	if err != nil {
		return 0, common.WrapStorage(err)
	}
	return count, nil
}
