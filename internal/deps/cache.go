package deps

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/funvibe/elmscope/internal/elm"
	"github.com/funvibe/elmscope/internal/exports"
)

// Cache persists parsed package interfaces in a sqlite database, keyed by
// package name and version, so repeated runs skip re-parsing docs.json.
// Payloads are the serialized index, one JSON blob per package. The cache
// is an optimization only; every caller must work without it.
type Cache struct {
	db *sql.DB
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS package_interfaces (
	package TEXT NOT NULL,
	version TEXT NOT NULL,
	payload BLOB NOT NULL,
	PRIMARY KEY (package, version)
);`

// OpenCache opens (creating if needed) a cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening interface cache: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing interface cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Put stores a package's interface index under (pkg, version), replacing
// any previous entry.
func (c *Cache) Put(pkg, version string, idx exports.Index) error {
	payload := make(map[string]exports.TableData, len(idx))
	for _, name := range idx.Modules() {
		if table, ok := idx.Lookup(elm.Name(name)); ok {
			payload[name] = table.Data()
		}
	}
	blob, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding interface payload: %w", err)
	}
	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO package_interfaces (package, version, payload) VALUES (?, ?, ?)`,
		pkg, version, blob,
	)
	if err != nil {
		return fmt.Errorf("caching %s@%s: %w", pkg, version, err)
	}
	return nil
}

// Get loads a package's interface index. The second result is false on a
// cache miss.
func (c *Cache) Get(pkg, version string) (exports.Index, bool, error) {
	var blob []byte
	err := c.db.QueryRow(
		`SELECT payload FROM package_interfaces WHERE package = ? AND version = ?`,
		pkg, version,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache for %s@%s: %w", pkg, version, err)
	}
	var payload map[string]exports.TableData
	if err := json.Unmarshal(blob, &payload); err != nil {
		return nil, false, fmt.Errorf("decoding cache for %s@%s: %w", pkg, version, err)
	}
	idx := exports.NewIndex()
	for name, data := range payload {
		idx.Add(elm.Name(name), exports.FromData(data))
	}
	return idx, true, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}
