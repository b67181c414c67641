// Package state persists UI state in a sqlite database under the XDG
// data directory: the last session, per-folder cursor positions, and
// the viewer settings.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "halftone"
	dbFileName   = "halftone.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the database handle. Session saves are debounced since
// the browser fires one on every cursor move.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *SessionState
}

// Open creates or opens the database and brings the schema up to date.
func Open() (*Manager, error) {
	path, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return &Manager{db: conn}, nil
}

// Close flushes any pending session write before closing the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	m.flush()
	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) GetSession() (*SessionState, error) {
	return getSession(m.db)
}

// SaveSession schedules a write of the session state. Repeated calls
// within the debounce window coalesce into a single write of the
// latest state.
func (m *Manager) SaveSession(state SessionState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer == nil {
		m.saveTimer = time.AfterFunc(saveDebounce, m.flush)
		return
	}
	m.saveTimer.Reset(saveDebounce)
}

// flush writes the pending session, if any. Runs on the debounce timer
// and once more from Close.
func (m *Manager) flush() {
	m.saveMu.Lock()
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		_ = saveSession(m.db, *pending)
	}
}
