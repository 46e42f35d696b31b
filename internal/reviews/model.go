package reviews

import "time"

// Review is one rating left by a buyer for a seller. A rater may review a
// given seller at most once; reviews are never edited after the fact.
type Review struct {
	ID         int64
	RaterEmail string
	RatedEmail string
	Stars      int
	Comment    string
	CreatedAt  time.Time
}

// Reputation is the aggregate standing of an account. Average is rounded to
// one decimal place; a zero Count means the account has never been rated and
// Average carries no meaning.
type Reputation struct {
	Email   string  `json:"email"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
