package messages

import "time"

// Message is one directed message between two accounts. Messages are
// immutable once created; the read flag is the only mutable bit and it
// moves unread→read exactly once, when the recipient opens the thread.
type Message struct {
	ID             int64
	SenderEmail    string
	RecipientEmail string
	Body           string
	Read           bool
	SentAt         time.Time
}
