// Package db has small helpers shared by the sqlite-backed stores.
package db

import "database/sql"

// WithTx runs fn inside a transaction, committing when it returns nil
// and rolling back otherwise.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback() //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// NullStringValue unwraps a NullString, mapping NULL to "".
func NullStringValue(n sql.NullString) string {
	if n.Valid {
		return n.String
	}
	return ""
}
