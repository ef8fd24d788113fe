package state

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "parley"
	dbFileName   = "parley.db"
	saveDebounce = 500 * time.Millisecond
)

// WidthSaveError reports a debounced sidebar width write that failed.
type WidthSaveError struct {
	Width int
	Err   error
}

type Manager struct {
	db        *sql.DB
	logger    *slog.Logger
	widthErrs chan WidthSaveError

	saveMu       sync.Mutex
	saveTimer    *time.Timer
	pendingWidth *int
}

// Open opens the state database in the XDG data directory.
func Open(logger *slog.Logger) (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve state path: %w", err)
	}
	return OpenPath(dbPath, logger)
}

// OpenPath opens the state database at dbPath. ":memory:" is accepted.
func OpenPath(dbPath string, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared and serializes
	// the debounced writer with the update loop.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Manager{
		db:        db,
		logger:    logger.With("component", "state"),
		widthErrs: make(chan WidthSaveError, 1),
	}, nil
}

// Close flushes any pending debounced write and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pendingWidth
	m.pendingWidth = nil
	m.saveMu.Unlock()

	if pending != nil {
		if err := saveSidebarWidth(m.db, *pending); err != nil {
			m.logger.Error("flush sidebar width", "error", err)
		}
	}

	return m.db.Close()
}

// GetSidebarWidth returns the saved sidebar width, or ok=false on first run.
func (m *Manager) GetSidebarWidth() (width int, ok bool, err error) {
	return getSidebarWidth(m.db)
}

// SaveSidebarWidth schedules a write of width. Writes arriving within the
// debounce window replace each other, so a drag persists once.
func (m *Manager) SaveSidebarWidth(width int) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pendingWidth = &width

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pendingWidth
		m.pendingWidth = nil
		m.saveMu.Unlock()

		if pending != nil {
			if err := saveSidebarWidth(m.db, *pending); err != nil {
				m.logger.Error("save sidebar width", "width", *pending, "error", err)
				m.reportWidthError(*pending, err)
			}
		}
	})
}

// WidthSaveErrors delivers failures of debounced width writes. Failures are
// dropped while an earlier one is still unread.
func (m *Manager) WidthSaveErrors() <-chan WidthSaveError {
	return m.widthErrs
}

func (m *Manager) reportWidthError(width int, err error) {
	select {
	case m.widthErrs <- WidthSaveError{Width: width, Err: err}:
	default:
	}
}

// GetSessions returns the saved sessions and active index.
func (m *Manager) GetSessions() (*SessionsState, error) {
	return getSessions(m.db)
}

// SaveSessions replaces the saved sessions.
func (m *Manager) SaveSessions(state SessionsState) error {
	return saveSessions(m.db, state)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
