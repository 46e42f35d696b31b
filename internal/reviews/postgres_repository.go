package reviews

import (
	"context"
	"fmt"

	"github.com/udalba/campusmarket/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, review *Review) (bool, error) {
	// the UNIQUE (rater_email, rated_email) constraint decides duplicates,
	// so two concurrent submissions cannot both land
	query :=
		`INSERT INTO reviews (rater_email, rated_email, stars, comment)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (rater_email, rated_email) DO NOTHING
		 `

	result, err := r.db.ExecContext(ctx, query, review.RaterEmail, review.RatedEmail, review.Stars, review.Comment)
	if err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error checking affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *PostgresRepository) Aggregate(ctx context.Context, ratedEmail string) (float64, int64, error) {
	query :=
		`SELECT COALESCE(AVG(stars), 0), COUNT(*)
		 FROM reviews
		 WHERE rated_email = $1
		 `

	var avg float64
	var count int64
	if err := r.db.QueryRowContext(ctx, query, ratedEmail).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("error performing sql request: %w", err)
	}

	return avg, count, nil
}

func (r *PostgresRepository) ListFor(ctx context.Context, ratedEmail string) ([]*Review, error) {
	query :=
		`SELECT id, rater_email, rated_email, stars, comment, created_at
		 FROM reviews
		 WHERE rated_email = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ratedEmail)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		review := &Review{}
		err := rows.Scan(&review.ID, &review.RaterEmail, &review.RatedEmail,
			&review.Stars, &review.Comment, &review.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reviews, nil
}
