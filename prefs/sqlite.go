package prefs

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore mirrors the preference table in memory and rewrites it in one
// transaction on Save.
type SQLiteStore struct {
	*MemoryStore
	db *sql.DB
}

const createPrefsTable = `CREATE TABLE IF NOT EXISTS prefs (
	key   TEXT PRIMARY KEY,
	type  INTEGER NOT NULL,
	value TEXT NOT NULL
)`

const createItemsTable = `CREATE TABLE IF NOT EXISTS items (
	key  TEXT PRIMARY KEY,
	data BLOB NOT NULL
)`

// OpenSQLiteStore opens (creating if needed) the database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{createPrefsTable, createItemsTable} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create tables: %w", err)
		}
	}

	s := &SQLiteStore{MemoryStore: NewMemoryStore(), db: db}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) load() error {
	rows, err := s.db.Query(`SELECT key, type, value FROM prefs`)
	if err != nil {
		return fmt.Errorf("query prefs: %w", err)
	}
	defer rows.Close()

	values := make(map[string]Value)
	for rows.Next() {
		var (
			key, text string
			typ       int
		)
		if err := rows.Scan(&key, &typ, &text); err != nil {
			return fmt.Errorf("scan prefs: %w", err)
		}
		v, err := ParseValue(DataType(typ), text)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		values[key] = v
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate prefs: %w", err)
	}
	s.replace(values)
	return nil
}

// Save replaces the table contents with the in-memory preferences.
func (s *SQLiteStore) Save() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM prefs`); err != nil {
		return fmt.Errorf("clear prefs: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO prefs (key, type, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for k, v := range s.snapshot() {
		if _, err := stmt.Exec(k, int(v.Type()), v.Text()); err != nil {
			return fmt.Errorf("insert %q: %w", k, err)
		}
	}
	return tx.Commit()
}

// SaveItem writes an opaque item immediately, making the database an
// ItemStore. Nil data deletes the item.
func (s *SQLiteStore) SaveItem(itemKey string, data []byte) error {
	if data == nil {
		if _, err := s.db.Exec(`DELETE FROM items WHERE key = ?`, itemKey); err != nil {
			return fmt.Errorf("delete item %q: %w", itemKey, err)
		}
		return nil
	}
	_, err := s.db.Exec(`INSERT INTO items (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`, itemKey, data)
	if err != nil {
		return fmt.Errorf("save item %q: %w", itemKey, err)
	}
	return nil
}

// LoadItem returns nil data for a missing item.
func (s *SQLiteStore) LoadItem(itemKey string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM items WHERE key = ?`, itemKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load item %q: %w", itemKey, err)
	}
	return data, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
