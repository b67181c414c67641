package state

import "database/sql"

// Mock keeps everything in memory. It mirrors the Manager behavior of
// recording a folder selection whenever a session save carries one, so
// tests exercise the same restore path.
type Mock struct {
	session    *SessionState
	settings   *ViewerSettings
	selections map[string]string
	closed     bool
}

func NewMock() *Mock {
	return &Mock{selections: make(map[string]string)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveSession(state SessionState) {
	m.session = &state
	if state.CurrentPath != "" && state.SelectedName != "" {
		m.selections[state.CurrentPath] = state.SelectedName
	}
}

func (m *Mock) GetSession() (*SessionState, error) { return m.session, nil }

func (m *Mock) GetFolderSelection(path string) (string, error) {
	return m.selections[path], nil
}

func (m *Mock) SaveSettings(s ViewerSettings) error {
	m.settings = &s
	return nil
}

func (m *Mock) GetSettings() (*ViewerSettings, error) { return m.settings, nil }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Seeding and inspection for tests.

func (m *Mock) SetSession(state *SessionState) { m.session = state }

func (m *Mock) SetSettings(s *ViewerSettings) { m.settings = s }

func (m *Mock) IsClosed() bool { return m.closed }
