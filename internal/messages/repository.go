package messages

import "context"

type Repository interface {
	// Create inserts the message unread and fills in ID and SentAt.
	Create(ctx context.Context, message *Message) error

	// ListCounterparts returns the distinct accounts that have exchanged at
	// least one message (either direction) with email, most recent exchange
	// first.
	ListCounterparts(ctx context.Context, email string) ([]string, error)

	// GetThread returns both directions of the conversation between the two
	// accounts, ascending by id.
	GetThread(ctx context.Context, email, counterpartEmail string) ([]*Message, error)

	// MarkThreadRead flips every unread message from counterpartEmail to
	// email in one statement and reports how many were flipped.
	MarkThreadRead(ctx context.Context, email, counterpartEmail string) (int64, error)

	// CountUnread counts unread messages addressed to email.
	CountUnread(ctx context.Context, email string) (int64, error)
}
