// Package storage provides SQLite-based persistence for named loadout presets.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a named loadout does not exist.
var ErrNotFound = errors.New("storage: loadout not found")

// Store manages the SQLite database connection for loadout presets.
type Store struct {
	db *sql.DB
}

// Loadout is a saved modifier selection.
type Loadout struct {
	ID        int64
	Name      string
	Modifiers []string // modifier ids, sorted
	Cost      int      // total DP at save time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS loadouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			modifiers TEXT NOT NULL,
			cost INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveLoadout stores ids under name, replacing an existing loadout of the
// same name. The creation time of a replaced loadout is kept.
func (s *Store) SaveLoadout(name string, ids []string, cost int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("storage: loadout name must not be empty")
	}

	_, err := s.db.Exec(
		`INSERT INTO loadouts (name, modifiers, cost) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			modifiers = excluded.modifiers,
			cost = excluded.cost,
			updated_at = CURRENT_TIMESTAMP`,
		name, encodeIDs(ids), cost,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save loadout %q: %w", name, err)
	}
	return nil
}

// Loadout returns the loadout called name, or ErrNotFound.
func (s *Store) Loadout(name string) (Loadout, error) {
	row := s.db.QueryRow(
		`SELECT id, name, modifiers, cost, created_at, updated_at
		 FROM loadouts
		 WHERE name = ?`,
		strings.TrimSpace(name),
	)

	l, err := scanLoadout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Loadout{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Loadout{}, fmt.Errorf("storage: cannot query loadout: %w", err)
	}
	return l, nil
}

// Loadouts returns every saved loadout ordered by name.
func (s *Store) Loadouts() ([]Loadout, error) {
	rows, err := s.db.Query(
		`SELECT id, name, modifiers, cost, created_at, updated_at
		 FROM loadouts
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query loadouts: %w", err)
	}
	defer rows.Close()

	var out []Loadout
	for rows.Next() {
		l, err := scanLoadout(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// DeleteLoadout removes the loadout called name, or returns ErrNotFound.
func (s *Store) DeleteLoadout(name string) error {
	res, err := s.db.Exec("DELETE FROM loadouts WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("storage: cannot delete loadout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLoadout(sc scanner) (Loadout, error) {
	var l Loadout
	var mods string
	var createdAt, updatedAt any
	if err := sc.Scan(&l.ID, &l.Name, &mods, &l.Cost, &createdAt, &updatedAt); err != nil {
		return Loadout{}, err
	}
	l.Modifiers = decodeIDs(mods)
	l.CreatedAt = parseTime(createdAt)
	l.UpdatedAt = parseTime(updatedAt)
	return l, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Modifier ids never contain commas, so a comma list is enough.
func encodeIDs(ids []string) string {
	return strings.Join(ids, ",")
}

func decodeIDs(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
