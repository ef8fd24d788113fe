package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE sessions (id TEXT PRIMARY KEY, title TEXT)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countSessions(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx_Commit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(db, func(tx *sql.Tx) error {
		for _, id := range []string{"a", "b", "c"} {
			if _, err := tx.Exec(`INSERT INTO sessions (id, title) VALUES (?, ?)`, id, "chat "+id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if got := countSessions(t, db); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	abort := errors.New("abort")
	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO sessions (id, title) VALUES ('a', 'first')`); err != nil {
			return err
		}
		return abort
	})

	if !errors.Is(err, abort) {
		t.Fatalf("WithTx should return the callback error: got %v", err)
	}
	if got := countSessions(t, db); got != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", got)
	}
}

func TestWithTx_ConstraintViolationRollsBack(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO sessions (id, title) VALUES ('dup', 'one')`); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO sessions (id, title) VALUES ('dup', 'two')`)
		return err
	})

	if err == nil {
		t.Fatal("expected primary key violation")
	}
	if got := countSessions(t, db); got != 0 {
		t.Errorf("count = %d, want 0", got)
	}
}

func TestWithTxContext_CanceledContext(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTxContext(ctx, db, func(*sql.Tx) error {
		called = true
		return nil
	})

	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if called {
		t.Error("callback must not run when begin fails")
	}
}

func TestNullInt64Value(t *testing.T) {
	if got := NullInt64Value(sql.NullInt64{Int64: 42, Valid: true}); got != 42 {
		t.Errorf("valid: got %d, want 42", got)
	}
	if got := NullInt64Value(sql.NullInt64{Int64: 42}); got != 0 {
		t.Errorf("invalid: got %d, want 0", got)
	}
}
