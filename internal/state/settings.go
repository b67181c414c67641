package state

import (
	"database/sql"
	"errors"
)

// ViewerSettings are the rendering options the user can toggle at
// runtime. They persist across sessions.
type ViewerSettings struct {
	Upscale bool
	Filter  string
	Frame   bool
}

// GetSettings returns the saved viewer settings, or nil if none were
// ever saved.
func (m *Manager) GetSettings() (*ViewerSettings, error) {
	row := m.db.QueryRow(`SELECT upscale, filter, frame FROM viewer_settings WHERE id = 1`)

	var s ViewerSettings
	err := row.Scan(&s.Upscale, &s.Filter, &s.Frame)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved settings is valid on first run
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSettings persists the viewer settings immediately. Toggles are
// rare enough that debouncing isn't worth it.
func (m *Manager) SaveSettings(s ViewerSettings) error {
	_, err := m.db.Exec(`
		INSERT INTO viewer_settings (id, upscale, filter, frame)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			upscale = excluded.upscale,
			filter = excluded.filter,
			frame = excluded.frame
	`, s.Upscale, s.Filter, s.Frame)
	return err
}
