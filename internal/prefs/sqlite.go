// Package prefs persists small per-user preferences on the device. The
// only one today is the default vehicle; the store keeps a generic
// key/value shape so later preferences do not need a schema change.
package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

const defaultVehicleKey = "default_vehicle_id"

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	user_id INTEGER NOT NULL,
	key     TEXT    NOT NULL,
	value   TEXT    NOT NULL,
	PRIMARY KEY (user_id, key)
);`

// Store is a SQLite-backed preference store scoped to one user.
type Store struct {
	db     *sql.DB
	userID int
}

// Open opens (creating if needed) the preference database at path, scoped
// to the given user.
func Open(path string, userID int) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening preference db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating preference schema: %w", err)
	}
	return &Store{db: db, userID: userID}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Get returns the default vehicle id, with ok=false when none is set.
func (s *Store) Get() (int, bool, error) {
	var value string
	err := s.db.QueryRow(
		`SELECT value FROM preferences WHERE user_id = ? AND key = ?`,
		s.userID, defaultVehicleKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading preference: %w", err)
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt preference value %q: %w", value, err)
	}
	return id, true, nil
}

// Set stores the default vehicle id, replacing any previous value.
func (s *Store) Set(vehicleID int) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (user_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, key) DO UPDATE SET value = excluded.value`,
		s.userID, defaultVehicleKey, strconv.Itoa(vehicleID),
	)
	if err != nil {
		return fmt.Errorf("writing preference: %w", err)
	}
	return nil
}

// Clear removes the default vehicle id. Clearing an unset preference is a
// no-op.
func (s *Store) Clear() error {
	_, err := s.db.Exec(
		`DELETE FROM preferences WHERE user_id = ? AND key = ?`,
		s.userID, defaultVehicleKey,
	)
	if err != nil {
		return fmt.Errorf("clearing preference: %w", err)
	}
	return nil
}
