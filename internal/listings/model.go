package listings

import "time"

// State is the listing lifecycle state. Paused listings stay owned and
// editable but disappear from the catalog.
type State string

const (
	StateAvailable State = "available"
	StatePaused    State = "paused"
)

// Listing is a rentable item published by an account. Photo holds the inline
// blob when the db photo backend is active; PhotoKey points into object
// storage when the s3 backend is active. The photo and the owner are
// immutable after publish.
type Listing struct {
	ID          int64
	Name        string
	Description string
	Price       int64
	State       State
	OwnerEmail  string
	Photo       []byte
	PhotoKey    *string
	CreatedAt   time.Time
}

// CatalogItem is a listing joined with the owner's display info for the
// catalog view. PhotoURL is only set for object-storage photos.
type CatalogItem struct {
	Listing
	OwnerName    string
	OwnerContact string
	PhotoURL     string
}
