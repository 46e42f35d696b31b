package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/udalba/campusmarket/internal/accounts"
	"github.com/udalba/campusmarket/internal/follows"
	"github.com/udalba/campusmarket/internal/listings"
	"github.com/udalba/campusmarket/internal/messages"
	"github.com/udalba/campusmarket/internal/migrations"
	"github.com/udalba/campusmarket/internal/requests"
	"github.com/udalba/campusmarket/internal/reviews"
)

type PostgresRepositoryManager struct {
	db       *sql.DB
	accounts accounts.Repository
	listings listings.Repository
	requests requests.Repository
	messages messages.Repository
	follows  follows.Repository
	reviews  reviews.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *PostgresRepositoryManager) Listings() listings.Repository {
	return m.listings
}

func (m *PostgresRepositoryManager) Requests() requests.Repository {
	return m.requests
}

func (m *PostgresRepositoryManager) Messages() messages.Repository {
	return m.messages
}

func (m *PostgresRepositoryManager) Follows() follows.Repository {
	return m.follows
}

func (m *PostgresRepositoryManager) Reviews() reviews.Repository {
	return m.reviews
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:       db,
		accounts: accounts.NewPostgresRepository(db),
		listings: listings.NewPostgresRepository(db),
		requests: requests.NewPostgresRepository(db),
		messages: messages.NewPostgresRepository(db),
		follows:  follows.NewPostgresRepository(db),
		reviews:  reviews.NewPostgresRepository(db),
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
