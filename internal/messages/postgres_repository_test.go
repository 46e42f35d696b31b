package messages

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

func TestCreate_Unread(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+messages`).
		WithArgs("ana@udalba.cl", "leo@udalba.cl", "hola").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sent_at"}).AddRow(int64(3), now))

	m := &Message{SenderEmail: "ana@udalba.cl", RecipientEmail: "leo@udalba.cl", Body: "hola"}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if m.ID != 3 || m.Read {
		t.Fatalf("unexpected message after create: %+v", m)
	}
}

func TestMarkThreadRead_OnlyCounterpartUnread(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE\s+messages\s+SET\s+read\s*=\s*TRUE\s+WHERE\s+recipient_email\s*=\s*\$1\s+AND\s+sender_email\s*=\s*\$2\s+AND\s+read\s*=\s*FALSE`).
		WithArgs("leo@udalba.cl", "ana@udalba.cl").
		WillReturnResult(sqlmock.NewResult(0, 3))

	marked, err := repo.MarkThreadRead(context.Background(), "leo@udalba.cl", "ana@udalba.cl")
	if err != nil {
		t.Fatalf("MarkThreadRead error: %v", err)
	}
	if marked != 3 {
		t.Fatalf("expected 3 marked, got %d", marked)
	}
}

func TestCountUnread(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+COUNT\(\*\)\s+FROM\s+messages\s+WHERE\s+recipient_email`).
		WithArgs("leo@udalba.cl").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.CountUnread(context.Background(), "leo@udalba.cl")
	if err != nil {
		t.Fatalf("CountUnread error: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 unread, got %d", count)
	}
}

func TestGetThread_BothDirections(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "sender_email", "recipient_email", "body", "read", "sent_at"}).
		AddRow(int64(1), "ana@udalba.cl", "leo@udalba.cl", "¿disponible?", true, time.Now()).
		AddRow(int64(2), "leo@udalba.cl", "ana@udalba.cl", "sí", false, time.Now())
	mock.ExpectQuery(`(?s)SELECT\s+.*FROM\s+messages\s+WHERE\s+\(sender_email`).
		WithArgs("ana@udalba.cl", "leo@udalba.cl").
		WillReturnRows(rows)

	thread, err := repo.GetThread(context.Background(), "ana@udalba.cl", "leo@udalba.cl")
	if err != nil {
		t.Fatalf("GetThread error: %v", err)
	}
	if len(thread) != 2 || thread[0].ID != 1 || thread[1].SenderEmail != "leo@udalba.cl" {
		t.Fatalf("unexpected thread: %+v", thread)
	}
}

func TestListCounterparts(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"counterpart"}).
		AddRow("leo@udalba.cl").
		AddRow("mara@udalba.cl")
	mock.ExpectQuery(`(?s)SELECT\s+counterpart\s+FROM`).
		WithArgs("ana@udalba.cl").
		WillReturnRows(rows)

	counterparts, err := repo.ListCounterparts(context.Background(), "ana@udalba.cl")
	if err != nil {
		t.Fatalf("ListCounterparts error: %v", err)
	}
	if len(counterparts) != 2 || counterparts[0] != "leo@udalba.cl" {
		t.Fatalf("unexpected counterparts: %v", counterparts)
	}
}
