package db

import (
	"context"
	"database/sql"

	"github.com/udalba/campusmarket/internal/accounts"
	"github.com/udalba/campusmarket/internal/follows"
	"github.com/udalba/campusmarket/internal/listings"
	"github.com/udalba/campusmarket/internal/messages"
	"github.com/udalba/campusmarket/internal/requests"
	"github.com/udalba/campusmarket/internal/reviews"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Accounts() accounts.Repository
	Listings() listings.Repository
	Requests() requests.Repository
	Messages() messages.Repository
	Follows() follows.Repository
	Reviews() reviews.Repository
}
