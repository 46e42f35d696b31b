package requests

import (
	"context"
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

func (r *PostgresRepository) Create(ctx context.Context, request *Request) error {
	query :=
		`INSERT INTO requests (title, budget, description, requester_email)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		request.Title, request.Budget, request.Description, request.RequesterEmail).
		Scan(&request.ID, &request.CreatedAt)

	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, requesterEmail, title string, budget int64, description string) error {
	query :=
		`UPDATE requests
		 SET title = $3, budget = $4, description = $5
		 WHERE id = $1 AND requester_email = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, requesterEmail, title, budget, description)
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

func (r *PostgresRepository) Delete(ctx context.Context, id int64, requesterEmail string) error {
	query :=
		`DELETE FROM requests
		 WHERE id = $1 AND requester_email = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, requesterEmail)
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

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*BoardItem, error) {
	query :=
		`SELECT r.id, r.title, r.budget, r.description, r.requester_email, r.created_at,
		        a.name, a.contact
		 FROM requests r
		 JOIN accounts a ON r.requester_email = a.email
		 ORDER BY r.created_at DESC, r.id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var items []*BoardItem
	for rows.Next() {
		item := &BoardItem{}
		err := rows.Scan(
			&item.ID, &item.Title, &item.Budget, &item.Description,
			&item.RequesterEmail, &item.CreatedAt,
			&item.RequesterName, &item.RequesterContact)
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

func (r *PostgresRepository) ListByRequester(ctx context.Context, requesterEmail string) ([]*Request, error) {
	query :=
		`SELECT id, title, budget, description, requester_email, created_at
		 FROM requests
		 WHERE requester_email = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, requesterEmail)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Request
	for rows.Next() {
		request := &Request{}
		err := rows.Scan(
			&request.ID, &request.Title, &request.Budget, &request.Description,
			&request.RequesterEmail, &request.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
