package follows

import "time"

// Edge is a directed follow relationship. The (follower, followed) pair is
// the primary key, so a duplicate follow cannot create a second edge.
type Edge struct {
	FollowerEmail string
	FollowedEmail string
	CreatedAt     time.Time
}
