package state

import (
	"database/sql"
	"errors"
)

func getSidebarWidth(db *sql.DB) (int, bool, error) {
	var width int
	err := db.QueryRow(`SELECT width FROM sidebar_state WHERE id = 1`).Scan(&width)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return width, true, nil
}

func saveSidebarWidth(db *sql.DB, width int) error {
	_, err := db.Exec(`
		INSERT INTO sidebar_state (id, width)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET
			width = excluded.width
	`, width)
	return err
}
