package reviews

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestInsert_NewPair(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+reviews.*ON\s+CONFLICT\s+\(rater_email,\s*rated_email\)\s+DO\s+NOTHING`).
		WithArgs("ana@udalba.cl", "leo@udalba.cl", 5, "excelente").
		WillReturnResult(sqlmock.NewResult(0, 1))

	review := &Review{RaterEmail: "ana@udalba.cl", RatedEmail: "leo@udalba.cl", Stars: 5, Comment: "excelente"}
	inserted, err := repo.Insert(context.Background(), review)
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if !inserted {
		t.Fatal("expected review to be inserted")
	}
}

func TestInsert_DuplicatePairNotInserted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+reviews`).
		WithArgs("ana@udalba.cl", "leo@udalba.cl", 1, "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	review := &Review{RaterEmail: "ana@udalba.cl", RatedEmail: "leo@udalba.cl", Stars: 1}
	inserted, err := repo.Insert(context.Background(), review)
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if inserted {
		t.Fatal("expected duplicate pair to be skipped")
	}
}

func TestAggregate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+COALESCE\(AVG\(stars\),\s*0\),\s*COUNT\(\*\)\s+FROM\s+reviews`).
		WithArgs("leo@udalba.cl").
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.0, int64(2)))

	avg, count, err := repo.Aggregate(context.Background(), "leo@udalba.cl")
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if avg != 4.0 || count != 2 {
		t.Fatalf("unexpected aggregate: avg=%v count=%d", avg, count)
	}
}

func TestListFor(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "rater_email", "rated_email", "stars", "comment", "created_at"}).
		AddRow(int64(2), "mara@udalba.cl", "leo@udalba.cl", 3, "llegó tarde", time.Now()).
		AddRow(int64(1), "ana@udalba.cl", "leo@udalba.cl", 5, "excelente", time.Now())
	mock.ExpectQuery(`(?s)SELECT\s+.*FROM\s+reviews\s+WHERE\s+rated_email`).
		WithArgs("leo@udalba.cl").
		WillReturnRows(rows)

	reviews, err := repo.ListFor(context.Background(), "leo@udalba.cl")
	if err != nil {
		t.Fatalf("ListFor error: %v", err)
	}
	if len(reviews) != 2 || reviews[0].Stars != 3 || reviews[1].RaterEmail != "ana@udalba.cl" {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}
}
