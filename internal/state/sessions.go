package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/parley/internal/db"
)

// SavedSession is a session row.
type SavedSession struct {
	ID           string
	Title        string
	UpdatedAt    time.Time
	MessageCount int
}

// SessionsState is the saved session list.
type SessionsState struct {
	ActiveIndex int
	Sessions    []SavedSession
}

func getSessions(db *sql.DB) (*SessionsState, error) {
	var active int
	err := db.QueryRow(`SELECT active_index FROM session_state WHERE id = 1`).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, title, updated_at, message_count
		FROM sessions
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []SavedSession
	for rows.Next() {
		var s SavedSession
		var updatedAt int64
		var messageCount sql.NullInt64
		if err := rows.Scan(&s.ID, &s.Title, &updatedAt, &messageCount); err != nil {
			return nil, err
		}
		s.UpdatedAt = time.Unix(updatedAt, 0)
		s.MessageCount = int(dbutil.NullInt64Value(messageCount))
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &SessionsState{ActiveIndex: active, Sessions: sessions}, nil
}

func saveSessions(sqlDB *sql.DB, state SessionsState) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM sessions`); err != nil {
			return err
		}

		_, err := tx.Exec(`
			INSERT INTO session_state (id, active_index)
			VALUES (1, ?)
			ON CONFLICT(id) DO UPDATE SET
				active_index = excluded.active_index
		`, state.ActiveIndex)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO sessions (id, position, title, updated_at, message_count)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, s := range state.Sessions {
			if _, err := stmt.Exec(s.ID, i, s.Title, s.UpdatedAt.Unix(), s.MessageCount); err != nil {
				return err
			}
		}
		return nil
	})
}
