package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/udalba/campusmarket/internal/common"
	"github.com/udalba/campusmarket/internal/dbx"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *Account) error {
	query :=
		`INSERT INTO accounts (email, name, password_hash, contact, program, security_question, answer_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.Email, account.Name, account.PasswordHash, account.Contact,
		account.Program, account.SecurityQuestion, account.AnswerHash).Scan(&account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	query :=
		`SELECT email, name, password_hash, contact, program, security_question, answer_hash, created_at
		 FROM accounts
		 WHERE email = $1
		 `

	account := &Account{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.Email, &account.Name, &account.PasswordHash, &account.Contact,
		&account.Program, &account.SecurityQuestion, &account.AnswerHash, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, email, name, contact, program string) error {
	query :=
		`UPDATE accounts
		 SET name = $2, contact = $3, program = $4
		 WHERE email = $1
		 `

	res, err := r.db.ExecContext(ctx, query, email, name, contact, program)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	query :=
		`UPDATE accounts
		 SET password_hash = $2
		 WHERE email = $1
		 `

	res, err := r.db.ExecContext(ctx, query, email, passwordHash)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
