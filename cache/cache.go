// Package cache persists fetched metadata tables in a local SQLite
// database, so the resolution pipeline can run offline and repeatedly
// without refetching from the repository.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ericfournier2/encodexplorer/resolve"
	"github.com/ericfournier2/encodexplorer/table"
)

const schema = `
CREATE TABLE IF NOT EXISTS tables (
	name       TEXT PRIMARY KEY,
	fetched_at TEXT NOT NULL,
	payload    BLOB NOT NULL
);`

// ErrNotCached is returned by Load for a table the cache has never
// stored.
var ErrNotCached = errors.New("cache: table not cached")

// DB is an open table cache.
type DB struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, pfx.Err(err)
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Store saves one table under name, replacing any previous copy.
func (d *DB) Store(name string, tbl *table.Table, fetchedAt time.Time) error {
	payload, err := json.Marshal(tbl)
	if err != nil {
		return pfx.Err(err)
	}
	_, err = d.db.Exec(
		`INSERT INTO tables (name, fetched_at, payload) VALUES (?, ?, ?)
		 ON CONFLICT (name) DO UPDATE SET fetched_at = excluded.fetched_at, payload = excluded.payload`,
		name, fetchedAt.UTC().Format(time.RFC3339), payload)
	if err != nil {
		return pfx.Err(err)
	}
	return nil
}

// StoreAll saves every table in src.
func (d *DB) StoreAll(src resolve.Tables, fetchedAt time.Time) error {
	for name, tbl := range src {
		if err := d.Store(name, tbl, fetchedAt); err != nil {
			return err
		}
	}
	return nil
}

// Load returns the named cached table, or ErrNotCached.
func (d *DB) Load(name string) (*table.Table, error) {
	var payload []byte
	err := d.db.Get(&payload, `SELECT payload FROM tables WHERE name = ?`, name)
	if err == sql.ErrNoRows {
		return nil, ErrNotCached
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	tbl := table.New()
	if err := json.Unmarshal(payload, tbl); err != nil {
		return nil, pfx.Err(err)
	}
	return tbl, nil
}

// LoadAll returns every cached table keyed by name.
func (d *DB) LoadAll() (resolve.Tables, error) {
	names, err := d.Names()
	if err != nil {
		return nil, err
	}
	out := make(resolve.Tables, len(names))
	for _, name := range names {
		tbl, err := d.Load(name)
		if err != nil {
			return nil, err
		}
		out[name] = tbl
	}
	return out, nil
}

// Names lists the cached table names in lexical order.
func (d *DB) Names() ([]string, error) {
	var names []string
	if err := d.db.Select(&names, `SELECT name FROM tables ORDER BY name`); err != nil {
		return nil, pfx.Err(err)
	}
	return names, nil
}
