package follows

import (
	"context"
	"database/sql"
	"testing"

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

func TestCreate_OnConflictDoNothing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+follows.*ON\s+CONFLICT\s+\(follower_email,\s*followed_email\)\s+DO\s+NOTHING`).
		WithArgs("ana@udalba.cl", "leo@udalba.cl").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), "ana@udalba.cl", "leo@udalba.cl"); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestDelete_Absent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)DELETE\s+FROM\s+follows`).
		WithArgs("ana@udalba.cl", "leo@udalba.cl").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "ana@udalba.cl", "leo@udalba.cl"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+COUNT\(\*\)\s+FROM\s+follows`).
		WithArgs("ana@udalba.cl", "leo@udalba.cl").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	exists, err := repo.Exists(context.Background(), "ana@udalba.cl", "leo@udalba.cl")
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if !exists {
		t.Fatal("expected edge to exist")
	}
}

func TestCountFollowers(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)\s+FROM\s+follows\s+WHERE\s+followed_email`).
		WithArgs("leo@udalba.cl").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountFollowers(context.Background(), "leo@udalba.cl")
	if err != nil {
		t.Fatalf("CountFollowers error: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected 7 followers, got %d", count)
	}
}

func TestListFollowers_JoinsProfiles(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"email", "name", "contact", "program"}).
		AddRow("mara@udalba.cl", "Mara Soto", "+56 9 5555 1111", "Derecho").
		AddRow("ana@udalba.cl", "Ana Rojas", "+56 9 5555 2222", "Ingeniería")
	mock.ExpectQuery(`(?s)SELECT\s+a\.email.*JOIN\s+accounts\s+a\s+ON\s+f\.follower_email`).
		WithArgs("leo@udalba.cl").
		WillReturnRows(rows)

	followers, err := repo.ListFollowers(context.Background(), "leo@udalba.cl")
	if err != nil {
		t.Fatalf("ListFollowers error: %v", err)
	}
	if len(followers) != 2 || followers[0].Name != "Mara Soto" {
		t.Fatalf("unexpected followers: %+v", followers)
	}
}
