package types

import (
	"strings"
	"time"
)

// MenuItem is a dish the user has placed on their menu. Items are created by
// the store's Add operation and are immutable afterwards: the ID never
// changes, no update or delete operation exists, and the item disappears only
// when the session ends.
type MenuItem struct {
	ItemID      string    `json:"item_id"`     // UUID v7, assigned on insertion.
	Name        string    `json:"name"`        // Non-empty dish name.
	Description string    `json:"description"` // Non-empty dish description.
	Course      Course    `json:"course"`      // One of the three courses.
	Price       int64     `json:"price"`       // Whole units of the base currency, > 0.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of insertion.
}

// Candidate is the shape handed to the store's Add operation: a dish without
// identity. Catalog entries and form submissions are both candidates.
type Candidate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Course      Course `json:"course"`
	Price       int64  `json:"price"`
}

// Validate checks the two submission rules plus course membership.
// Name and description must be non-empty after trimming (ErrMissingField),
// price must be strictly positive (ErrInvalidPrice), and the course must be
// one of the three recognized values (ErrInvalidCourse).
func (c Candidate) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Description) == "" {
		return ErrMissingField
	}
	if c.Price <= 0 {
		return ErrInvalidPrice
	}
	if !c.Course.Valid() {
		return ErrInvalidCourse
	}
	return nil
}

// Normalized returns a copy of the candidate with name and description
// trimmed of surrounding whitespace.
func (c Candidate) Normalized() Candidate {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	return c
}
