package requests

import "time"

// Request is a "wanted" posting: an account looking to rent something at an
// offered budget. No lifecycle state beyond existence.
type Request struct {
	ID             int64
	Title          string
	Budget         int64
	Description    string
	RequesterEmail string
	CreatedAt      time.Time
}

// BoardItem is a request joined with the requester's display info for the
// public board.
type BoardItem struct {
	Request
	RequesterName    string
	RequesterContact string
}
