package state

import "database/sql"

const currentSchemaVersion = 2

const schema = `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);

	CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		current_path TEXT NOT NULL,
		selected_name TEXT,
		browser_visible INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS folder_positions (
		path TEXT PRIMARY KEY,
		selected_name TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_folder_positions_updated ON folder_positions(updated_at DESC);

	CREATE TABLE IF NOT EXISTS viewer_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		upscale INTEGER NOT NULL DEFAULT 0,
		filter TEXT NOT NULL DEFAULT 'lanczos3',
		frame INTEGER NOT NULL DEFAULT 0
	);
`

func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return err
	}

	if _, err := db.Exec(
		`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`,
		currentSchemaVersion,
	); err != nil {
		return err
	}

	// v1 -> v2: session gained browser_visible. The ALTER fails
	// harmlessly when the column already exists.
	_, _ = db.Exec(`ALTER TABLE session ADD COLUMN browser_visible INTEGER NOT NULL DEFAULT 1`)

	return nil
}
