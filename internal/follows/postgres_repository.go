package follows

import (
	"context"
	"fmt"

	"github.com/udalba/campusmarket/internal/accounts"
	"github.com/udalba/campusmarket/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, followerEmail, followedEmail string) error {
	query :=
		`INSERT INTO follows (follower_email, followed_email)
		 VALUES ($1, $2)
		 ON CONFLICT (follower_email, followed_email) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, followerEmail, followedEmail); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, followerEmail, followedEmail string) error {
	query :=
		`DELETE FROM follows
		 WHERE follower_email = $1 AND followed_email = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, followerEmail, followedEmail); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, followerEmail, followedEmail string) (bool, error) {
	query :=
		`SELECT COUNT(*) FROM follows
		 WHERE follower_email = $1 AND followed_email = $2
		 `

	var count int64
	if err := r.db.QueryRowContext(ctx, query, followerEmail, followedEmail).Scan(&count); err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}

	return count > 0, nil
}

func (r *PostgresRepository) CountFollowers(ctx context.Context, email string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follows WHERE followed_email = $1`, email)
}

func (r *PostgresRepository) CountFollowing(ctx context.Context, email string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follows WHERE follower_email = $1`, email)
}

func (r *PostgresRepository) count(ctx context.Context, query, email string) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&count); err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) ListFollowers(ctx context.Context, email string) ([]*accounts.Profile, error) {
	query :=
		`SELECT a.email, a.name, a.contact, a.program
		 FROM follows f
		 JOIN accounts a ON f.follower_email = a.email
		 WHERE f.followed_email = $1
		 ORDER BY f.created_at DESC
		 `
	return r.listProfiles(ctx, query, email)
}

func (r *PostgresRepository) ListFollowing(ctx context.Context, email string) ([]*accounts.Profile, error) {
	query :=
		`SELECT a.email, a.name, a.contact, a.program
		 FROM follows f
		 JOIN accounts a ON f.followed_email = a.email
		 WHERE f.follower_email = $1
		 ORDER BY f.created_at DESC
		 `
	return r.listProfiles(ctx, query, email)
}

func (r *PostgresRepository) listProfiles(ctx context.Context, query, email string) ([]*accounts.Profile, error) {
	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var profiles []*accounts.Profile
	for rows.Next() {
		profile := &accounts.Profile{}
		if err := rows.Scan(&profile.Email, &profile.Name, &profile.Contact, &profile.Program); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return profiles, nil
}
