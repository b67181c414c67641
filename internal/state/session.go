package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/halftone/internal/db"
)

// SessionState is what the app restores on launch: where the user was
// and how the panels were arranged.
type SessionState struct {
	CurrentPath    string
	SelectedName   string
	BrowserVisible bool
}

func getSession(db *sql.DB) (*SessionState, error) {
	row := db.QueryRow(`
		SELECT current_path, selected_name, browser_visible
		FROM session WHERE id = 1
	`)

	var state SessionState
	var selectedName sql.NullString

	err := row.Scan(&state.CurrentPath, &selectedName, &state.BrowserVisible)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.SelectedName = dbutil.NullStringValue(selectedName)

	return &state, nil
}

// saveSession writes the session row and remembers the selection for
// the current folder so revisiting it restores the cursor.
func saveSession(db *sql.DB, state SessionState) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO session (id, current_path, selected_name, browser_visible)
			VALUES (1, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_path = excluded.current_path,
				selected_name = excluded.selected_name,
				browser_visible = excluded.browser_visible
		`, state.CurrentPath, state.SelectedName, state.BrowserVisible)
		if err != nil {
			return err
		}

		if state.CurrentPath == "" || state.SelectedName == "" {
			return nil
		}
		_, err = tx.Exec(`
			INSERT INTO folder_positions (path, selected_name, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET
				selected_name = excluded.selected_name,
				updated_at = excluded.updated_at
		`, state.CurrentPath, state.SelectedName, time.Now().Unix())
		return err
	})
}

// GetFolderSelection returns the file last selected in the given
// folder, or empty if the folder was never visited.
func (m *Manager) GetFolderSelection(path string) (string, error) {
	row := m.db.QueryRow(`SELECT selected_name FROM folder_positions WHERE path = ?`, path)

	var name string
	err := row.Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return name, nil
}
