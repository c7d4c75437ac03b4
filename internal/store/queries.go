// Query operations over the session menu. All of them order by the position
// column, so results always come back in insertion order.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/petals-kitchen/menubook/pkg/types"
)

const selectColumns = "item_id, name, description, course, price, created_at"

// List returns every menu item in insertion order. The items are fresh
// copies; callers cannot mutate the stored collection through them.
func (s *Store) List() ([]*types.MenuItem, error) {
	return s.query("SELECT " + selectColumns + " FROM menu_items ORDER BY position")
}

// ItemsByCourse returns the items whose course equals the argument, keeping
// overall insertion order. A course with no items yields an empty slice, not
// an error.
func (s *Store) ItemsByCourse(course types.Course) ([]*types.MenuItem, error) {
	return s.query(
		"SELECT "+selectColumns+" FROM menu_items WHERE course = ? ORDER BY position",
		string(course),
	)
}

// TotalCount returns the number of items on the menu. It always equals the
// length of List at the same point in time.
func (s *Store) TotalCount() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return 0, types.ErrStoreClosed
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&count); err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return count, nil
}

// query runs a SELECT over menu_items and hydrates every row.
func (s *Store) query(q string, args ...any) ([]*types.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	items := []*types.MenuItem{}
	for rows.Next() {
		item, err := hydrateItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}
	return items, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydrateItem scans one menu_items row into a MenuItem.
func hydrateItem(row rowScanner) (*types.MenuItem, error) {
	var (
		item      types.MenuItem
		course    string
		createdAt string
	)
	if err := row.Scan(&item.ItemID, &item.Name, &item.Description, &course, &item.Price, &createdAt); err != nil {
		return nil, err
	}

	item.Course = types.Course(course)

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	item.CreatedAt = ts

	return &item, nil
}

// Compile-time check that sql.Row still satisfies rowScanner.
var _ rowScanner = (*sql.Row)(nil)
