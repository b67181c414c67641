package state

import "database/sql"

// Interface is the persistence surface the app depends on. Manager
// implements it against sqlite; Mock implements it in memory.
type Interface interface {
	DB() *sql.DB
	SaveSession(state SessionState)
	GetSession() (*SessionState, error)
	GetFolderSelection(path string) (string, error)
	SaveSettings(s ViewerSettings) error
	GetSettings() (*ViewerSettings, error)
	Close() error
}

var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)
