// Package store implements the session menu store: the single authoritative,
// insertion-ordered collection of menu items. It is backed by a SQLite
// database opened on :memory:, so the collection lives and dies with the
// process; nothing is ever written to disk.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO).

	"github.com/petals-kitchen/menubook/pkg/types"
)

// memoryDSN opens a private in-memory database. The connection pool is capped
// at one connection in Open; a second connection would see a different,
// empty database.
const memoryDSN = ":memory:"

// Store holds the menu items chosen during one session. One instance is
// constructed at the composition root and injected into every consumer;
// no package-level instance exists.
//
// The store has exactly one mode while open: reads and appends. Items are
// never updated or deleted.
type Store struct {
	mu   sync.RWMutex
	open bool
	db   *sql.DB
}

// New creates an unopened Store. Call Open before use.
func New() *Store {
	return &Store{}
}

// Open initializes the in-memory database and the schema.
// Returns ErrAlreadyOpen if called while open.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return fmt.Errorf("open session database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createMenuItems); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	s.db = db
	s.open = true
	return nil
}

// Close releases the database. Idempotent: closing a closed store succeeds.
// After Close, all operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	s.open = false
	return err
}

// Add validates the candidate and appends it to the menu. Validation lives
// here, at the single point of truth: no caller can insert an item with a
// blank name or description, a non-positive price, or an unknown course.
// On success the created item is returned with its freshly assigned ID.
func (s *Store) Add(candidate types.Candidate) (*types.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	candidate = candidate.Normalized()
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	item := &types.MenuItem{
		ItemID:      generateItemID(),
		Name:        candidate.Name,
		Description: candidate.Description,
		Course:      candidate.Course,
		Price:       candidate.Price,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO menu_items (item_id, name, description, course, price, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		item.ItemID, item.Name, item.Description, string(item.Course), item.Price,
		item.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}

	return item, nil
}

// Get retrieves a single item by ID.
// Returns ErrInvalidID for an empty ID and ErrNotFound when no item matches.
func (s *Store) Get(id string) (*types.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow(
		"SELECT item_id, name, description, course, price, created_at FROM menu_items WHERE item_id = ?",
		id,
	)
	item, err := hydrateItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("get menu item %s: %w", id, err)
	}
	return item, nil
}

// generateItemID generates a UUID v7 for menu item IDs. V7 IDs are unique
// and time-ordered, so they can never collide across a session.
func generateItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}
