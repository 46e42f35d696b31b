package accounts

import "time"

// Account is a registered student. The institutional email is the identity;
// accounts are never hard-deleted.
type Account struct {
	Email            string
	Name             string
	PasswordHash     string
	Contact          string
	Program          string
	SecurityQuestion *string
	AnswerHash       *string
	CreatedAt        time.Time
}

// Profile is the public slice of an account shown next to listings,
// requests, and follower lists.
type Profile struct {
	Email   string
	Name    string
	Contact string
	Program string
}
