package entities

import (
	"time"
)

// SearchEvent is the durable record of one user submitting one search term.
// Events are append-only: they are written exactly once by the search flow
// and never updated or deleted afterwards.
type SearchEvent struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`
	Term   string `json:"term" db:"term"`
	// Seq is the insertion sequence assigned by the store. It breaks ties
	// between events that share the same timestamp.
	Seq       int64     `json:"-" db:"seq"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
