// Package selstore persists strip selections in sqlite so a strip reopens on the item
// that was active last time.
package selstore

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrEmptyKey is returned for an empty strip key.
var ErrEmptyKey = errors.New("selstore: empty strip key")

const schema = `
create table if not exists selections(
	strip text primary key,
	idx int not null,
	updated_at datetime not null
);`

// Store is a sqlite-backed table of strip key -> last selected index.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("selstore: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("selstore: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the saved index for strip. ok is false when nothing was saved.
func (s *Store) Load(strip string) (idx int, ok bool, err error) {
	if strip == "" {
		return 0, false, ErrEmptyKey
	}
	err = s.db.QueryRow(`select idx from selections where strip = ?`, strip).Scan(&idx)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("selstore: load %q: %w", strip, err)
	}
	return idx, true, nil
}

// Save stores idx as the selection of strip.
func (s *Store) Save(strip string, idx int) error {
	if strip == "" {
		return ErrEmptyKey
	}
	_, err := s.db.Exec(`
		insert into selections(strip, idx, updated_at) values (?, ?, ?)
		on conflict(strip) do update set idx = excluded.idx, updated_at = excluded.updated_at`,
		strip, idx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("selstore: save %q: %w", strip, err)
	}
	return nil
}

// Binding is a strip selection that writes through to the store.
type Binding struct {
	store *Store
	strip string
	value int
}

// Binding returns a write-through binding for strip, starting at the saved index or
// fallback when none was saved.
func (s *Store) Binding(strip string, fallback int) (*Binding, error) {
	idx, ok, err := s.Load(strip)
	if err != nil {
		return nil, err
	}
	if !ok {
		idx = fallback
	}
	return &Binding{store: s, strip: strip, value: idx}, nil
}

func (b *Binding) Get() int { return b.value }

// Set updates the value immediately. A failed write is logged; the in-memory value stays.
func (b *Binding) Set(v int) {
	b.value = v
	if err := b.store.Save(b.strip, v); err != nil {
		log.Printf("selstore.Binding.Set: %v", err)
	}
}
