package messages

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

func (r *PostgresRepository) Create(ctx context.Context, message *Message) error {
	query :=
		`INSERT INTO messages (sender_email, recipient_email, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, sent_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		message.SenderEmail, message.RecipientEmail, message.Body).
		Scan(&message.ID, &message.SentAt)

	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListCounterparts(ctx context.Context, email string) ([]string, error) {
	query :=
		`SELECT counterpart FROM (
		     SELECT CASE WHEN sender_email = $1 THEN recipient_email ELSE sender_email END AS counterpart,
		            MAX(id) AS last_id
		     FROM messages
		     WHERE sender_email = $1 OR recipient_email = $1
		     GROUP BY counterpart
		 ) c
		 ORDER BY last_id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var counterparts []string
	for rows.Next() {
		var counterpart string
		if err := rows.Scan(&counterpart); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counterparts = append(counterparts, counterpart)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return counterparts, nil
}

func (r *PostgresRepository) GetThread(ctx context.Context, email, counterpartEmail string) ([]*Message, error) {
	query :=
		`SELECT id, sender_email, recipient_email, body, read, sent_at
		 FROM messages
		 WHERE (sender_email = $1 AND recipient_email = $2)
		    OR (sender_email = $2 AND recipient_email = $1)
		 ORDER BY id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, email, counterpartEmail)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var thread []*Message
	for rows.Next() {
		message := &Message{}
		err := rows.Scan(
			&message.ID, &message.SenderEmail, &message.RecipientEmail,
			&message.Body, &message.Read, &message.SentAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		thread = append(thread, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return thread, nil
}

func (r *PostgresRepository) MarkThreadRead(ctx context.Context, email, counterpartEmail string) (int64, error) {
	query :=
		`UPDATE messages
		 SET read = TRUE
		 WHERE recipient_email = $1 AND sender_email = $2 AND read = FALSE
		 `

	res, err := r.db.ExecContext(ctx, query, email, counterpartEmail)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}

	return affected, nil
}

func (r *PostgresRepository) CountUnread(ctx context.Context, email string) (int64, error) {
	query :=
		`SELECT COUNT(*)
		 FROM messages
		 WHERE recipient_email = $1 AND read = FALSE
		 `

	var count int64
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&count); err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	return count, nil
}
