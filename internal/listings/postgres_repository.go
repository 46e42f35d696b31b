package listings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/udalba/campusmarket/internal/common"
	"github.com/udalba/campusmarket/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, listing *Listing) error {
	query :=
		`INSERT INTO listings (name, description, price, state, owner_email, photo, photo_key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		listing.Name, listing.Description, listing.Price, listing.State,
		listing.OwnerEmail, listing.Photo, listing.PhotoKey).Scan(&listing.ID, &listing.CreatedAt)

	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Listing, error) {
	query :=
		`SELECT id, name, description, price, state, owner_email, photo, photo_key, created_at
		 FROM listings
		 WHERE id = $1
		 `

	listing := &Listing{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&listing.ID, &listing.Name, &listing.Description, &listing.Price, &listing.State,
		&listing.OwnerEmail, &listing.Photo, &listing.PhotoKey, &listing.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return listing, nil
}

// ownerGuarded runs a mutating statement whose WHERE clause includes the
// owner check and maps zero affected rows to common.ErrNotOwner.
func (r *PostgresRepository) ownerGuarded(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrNotOwner
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, ownerEmail, name, description string, price int64) error {
	query :=
		`UPDATE listings
		 SET name = $3, description = $4, price = $5
		 WHERE id = $1 AND owner_email = $2
		 `
	return r.ownerGuarded(ctx, query, id, ownerEmail, name, description, price)
}

func (r *PostgresRepository) SetState(ctx context.Context, id int64, ownerEmail string, state State) error {
	query :=
		`UPDATE listings
		 SET state = $3
		 WHERE id = $1 AND owner_email = $2
		 `
	return r.ownerGuarded(ctx, query, id, ownerEmail, state)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64, ownerEmail string) error {
	query :=
		`DELETE FROM listings
		 WHERE id = $1 AND owner_email = $2
		 `
	return r.ownerGuarded(ctx, query, id, ownerEmail)
}

func (r *PostgresRepository) ListAvailable(ctx context.Context) ([]*CatalogItem, error) {
	query :=
		`SELECT l.id, l.name, l.description, l.price, l.state, l.owner_email, l.photo, l.photo_key, l.created_at,
		        a.name, a.contact
		 FROM listings l
		 JOIN accounts a ON l.owner_email = a.email
		 WHERE l.state = $1
		 ORDER BY l.created_at DESC, l.id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, StateAvailable)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var items []*CatalogItem
	for rows.Next() {
		item := &CatalogItem{}
		err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price, &item.State,
			&item.OwnerEmail, &item.Photo, &item.PhotoKey, &item.CreatedAt,
			&item.OwnerName, &item.OwnerContact)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*Listing, error) {
	query :=
		`SELECT id, name, description, price, state, owner_email, photo, photo_key, created_at
		 FROM listings
		 WHERE owner_email = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Listing
	for rows.Next() {
		listing := &Listing{}
		err := rows.Scan(
			&listing.ID, &listing.Name, &listing.Description, &listing.Price, &listing.State,
			&listing.OwnerEmail, &listing.Photo, &listing.PhotoKey, &listing.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
