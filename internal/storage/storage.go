package storage

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/royalur/royalur-go/internal/lut/format"
)

// LutCache wraps a BadgerDB database that stores the encoded bytes of
// LUT tables, keyed by a fingerprint of their source file. A cache hit
// is still parsed with format.Read, from the cached bytes instead of the
// source file. Adapted from the teacher's
// preferences/stats store: same Open/View/Update transaction shape,
// different payload.
type LutCache struct {
	db *badger.DB
}

// Open opens (creating if necessary) the Badger database at dir.
func Open(dir string) (*LutCache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening LUT cache: %w", err)
	}
	return &LutCache{db: db}, nil
}

// Close closes the underlying database.
func (c *LutCache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// fingerprint identifies a source LUT file by path, size, and
// modification time, so a file that changes on disk invalidates
// whatever was cached for its old path automatically.
func fingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat LUT file for cache fingerprint: %w", err)
	}
	return fmt.Sprintf("%s:%d:%d", path, info.Size(), info.ModTime().UnixNano()), nil
}

// Load returns the cached parsed table for path if present, the second
// return reporting a cache hit. A miss is not an error: the caller
// should fall back to format.Load and Store the result.
func (c *LutCache) Load(path string) (*format.Table, bool, error) {
	key, err := fingerprint(path)
	if err != nil {
		return nil, false, err
	}

	var raw []byte
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("reading LUT cache: %w", err)
	}
	if raw == nil {
		return nil, false, nil
	}

	table, err := format.Read(bytes.NewReader(raw))
	if err != nil {
		return nil, false, fmt.Errorf("parsing cached LUT entry: %w", err)
	}
	return table, true, nil
}

// Store saves table's parsed form under path's fingerprint, so a
// subsequent Load against the same unchanged file is a cache hit.
func (c *LutCache) Store(path string, table *format.Table) error {
	key, err := fingerprint(path)
	if err != nil {
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), table.Bytes())
	})
}

// LoadOrParse returns the cached table for path if present, otherwise
// parses it directly from disk via format.Load and populates the cache
// for next time.
func (c *LutCache) LoadOrParse(path string) (*format.Table, error) {
	if table, hit, err := c.Load(path); err != nil {
		return nil, err
	} else if hit {
		return table, nil
	}

	table, err := format.Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.Store(path, table); err != nil {
		return nil, fmt.Errorf("populating LUT cache: %w", err)
	}
	return table, nil
}
